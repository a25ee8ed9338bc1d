package sim

import (
	"hash/fnv"
	"math/rand"
)

// SimulationKey is the master seed of a run. Equal keys with equal
// configuration produce byte-identical event logs.
type SimulationKey int64

// NewSimulationKey wraps seed as a SimulationKey.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// Random streams consumed by a run. Each one draws from its own *rand.Rand,
// so an extra arrival draw never shifts the request fields generated after it.
const (
	// SubsystemWorkload feeds request addresses, costs and job kinds.
	// It is seeded with the master key itself.
	SubsystemWorkload = "workload"
	// SubsystemArrivals feeds the post-tick arrival coin flip.
	SubsystemArrivals = "arrivals"
)

// PartitionedRNG hands out one independent, lazily created stream per subsystem.
// Not safe for concurrent use.
type PartitionedRNG struct {
	key     SimulationKey
	streams map[string]*rand.Rand
}

// NewPartitionedRNG returns a PartitionedRNG rooted at key.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{key: key, streams: make(map[string]*rand.Rand)}
}

// ForSubsystem returns the stream for name, creating it on first use.
// Repeated calls with the same name share one *rand.Rand.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	rng, ok := p.streams[name]
	if !ok {
		rng = rand.New(rand.NewSource(p.seedFor(name)))
		p.streams[name] = rng
	}
	return rng
}

// Key returns the master key.
func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}

// seedFor derives the seed of a subsystem stream: the key for the workload,
// key XOR fnv1a64(name) for everything else.
func (p *PartitionedRNG) seedFor(name string) int64 {
	if name == SubsystemWorkload {
		return int64(p.key)
	}
	return int64(p.key) ^ fnv1a64(name)
}

func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
