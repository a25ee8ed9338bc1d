package sim

// LogSink receives the simulation's event log, one line per call.
// The dispatcher never depends on how many physical outputs sit behind it.
type LogSink interface {
	Write(line string)
}

// MemorySink collects event log lines in memory.
type MemorySink struct {
	Lines []string
}

// Write appends line to the collected lines.
func (s *MemorySink) Write(line string) {
	s.Lines = append(s.Lines, line)
}

type discardSink struct{}

func (discardSink) Write(string) {}
