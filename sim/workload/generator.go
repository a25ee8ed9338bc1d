// Package workload generates synthetic request streams for the dispatcher.
package workload

import (
	"fmt"
	"math/rand"

	"github.com/inference-sim/lb-sim/sim"
)

const (
	// MinCost and MaxCost bound the uniformly drawn request cost, in cycles.
	MinCost = 1
	MaxCost = 10
)

// Generator is a seeded sim.RequestSource.
// Deterministic given the same *rand.Rand state.
// Thread-safety: NOT thread-safe.
type Generator struct {
	rng    *rand.Rand
	nextID int64
}

// NewGenerator creates a Generator drawing every field from rng.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		panic("NewGenerator: rng must not be nil")
	}
	return &Generator{rng: rng, nextID: 1}
}

// NewGeneratorFromRNG creates a Generator on the workload subsystem of rng.
func NewGeneratorFromRNG(rng *sim.PartitionedRNG) *Generator {
	return NewGenerator(rng.ForSubsystem(sim.SubsystemWorkload))
}

// Next returns a new request with random addresses, a cost in [MinCost, MaxCost]
// and a uniformly chosen job kind.
func (g *Generator) Next() *sim.Request {
	origin := g.randomIP()
	destination := g.randomIP()
	cost := int64(MinCost + g.rng.Intn(MaxCost-MinCost+1))
	kind := sim.KindProcessing
	if g.rng.Intn(2) == 1 {
		kind = sim.KindStreaming
	}
	req := sim.NewRequest(g.nextID, origin, destination, cost, kind)
	g.nextID++
	return req
}

// randomIP returns a dotted-quad address with each octet uniform in [0, 255].
func (g *Generator) randomIP() string {
	return fmt.Sprintf("%d.%d.%d.%d", g.rng.Intn(256), g.rng.Intn(256), g.rng.Intn(256), g.rng.Intn(256))
}
