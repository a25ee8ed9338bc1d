package trace

// TraceLevel controls the verbosity of event tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelEvents captures every dispatch and every pool resize.
	TraceLevelEvents TraceLevel = "events"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:   true,
	TraceLevelEvents: true,
	"":               true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// SimulationTrace collects event records during a dispatcher run.
type SimulationTrace struct {
	Config          TraceConfig
	InitialPoolSize int // pool size before the first tick
	Dispatches      []DispatchRecord
	Scalings        []ScaleRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
// Returns nil when level disables tracing; recorders accept a nil receiver.
func NewSimulationTrace(config TraceConfig) *SimulationTrace {
	if config.Level == TraceLevelNone || config.Level == "" {
		return nil
	}
	return &SimulationTrace{
		Config:     config,
		Dispatches: make([]DispatchRecord, 0),
		Scalings:   make([]ScaleRecord, 0),
	}
}

// RecordDispatch appends a dispatch record. No-op on a nil trace.
func (st *SimulationTrace) RecordDispatch(record DispatchRecord) {
	if st == nil {
		return
	}
	st.Dispatches = append(st.Dispatches, record)
}

// RecordScale appends a pool resize record. No-op on a nil trace.
func (st *SimulationTrace) RecordScale(record ScaleRecord) {
	if st == nil {
		return
	}
	st.Scalings = append(st.Scalings, record)
}

// RecordInitialPool stores the pool size the run starts with. No-op on a nil trace.
func (st *SimulationTrace) RecordInitialPool(size int) {
	if st == nil {
		return
	}
	st.InitialPoolSize = size
}
