package sim

import (
	"math"
	"math/rand"
	"testing"
)

// === SimulationKey Tests ===

func TestSimulationKey_Creation(t *testing.T) {
	tests := []struct {
		name string
		seed int64
	}{
		{"positive seed", 42},
		{"zero seed", 0},
		{"negative seed", -1},
		{"max int64", math.MaxInt64},
		{"min int64", math.MinInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := NewSimulationKey(tt.seed)
			if int64(key) != tt.seed {
				t.Errorf("NewSimulationKey(%d) = %d, want %d", tt.seed, key, tt.seed)
			}
		})
	}
}

// === PartitionedRNG Tests ===

func TestPartitionedRNG_DeterministicDerivation(t *testing.T) {
	// Same key+name produces same sequence
	rng1 := NewPartitionedRNG(NewSimulationKey(42))
	rng2 := NewPartitionedRNG(NewSimulationKey(42))

	for i := 0; i < 3; i++ {
		v1 := rng1.ForSubsystem(SubsystemArrivals).Float64()
		v2 := rng2.ForSubsystem(SubsystemArrivals).Float64()
		if v1 != v2 {
			t.Errorf("Value %d: got %v and %v, want identical", i, v1, v2)
		}
	}
}

func TestPartitionedRNG_SubsystemIsolation(t *testing.T) {
	// Drawing from the workload stream doesn't shift the arrivals stream
	rngA := NewPartitionedRNG(NewSimulationKey(42))
	rngB := NewPartitionedRNG(NewSimulationKey(42))

	for i := 0; i < 10; i++ {
		rngA.ForSubsystem(SubsystemWorkload).Float64()
	}

	if a, b := rngA.ForSubsystem(SubsystemArrivals).Float64(), rngB.ForSubsystem(SubsystemArrivals).Float64(); a != b {
		t.Errorf("arrivals stream affected by workload draws: got %v, want %v", a, b)
	}
}

func TestPartitionedRNG_WorkloadUsesMasterSeed(t *testing.T) {
	rng := NewPartitionedRNG(NewSimulationKey(42))
	direct := rand.New(rand.NewSource(42))

	for i := 0; i < 5; i++ {
		if got, want := rng.ForSubsystem(SubsystemWorkload).Int63(), direct.Int63(); got != want {
			t.Errorf("draw %d: got %d, want %d", i, got, want)
		}
	}
}

func TestPartitionedRNG_CachesInstance(t *testing.T) {
	rng := NewPartitionedRNG(NewSimulationKey(1))
	if rng.ForSubsystem(SubsystemArrivals) != rng.ForSubsystem(SubsystemArrivals) {
		t.Error("ForSubsystem returned different instances for the same name")
	}
}

func TestPartitionedRNG_Key(t *testing.T) {
	key := NewSimulationKey(12345)
	if got := NewPartitionedRNG(key).Key(); got != key {
		t.Errorf("Key() = %d, want %d", got, key)
	}
}

func TestPartitionedRNG_SeedFor_WorkloadUsesKey(t *testing.T) {
	rng := NewPartitionedRNG(NewSimulationKey(77))
	if got := rng.seedFor(SubsystemWorkload); got != 77 {
		t.Errorf("seedFor(workload) = %d, want 77", got)
	}
	if got, want := rng.seedFor(SubsystemArrivals), int64(77)^fnv1a64(SubsystemArrivals); got != want {
		t.Errorf("seedFor(arrivals) = %d, want %d", got, want)
	}
}

func TestFnv1a64_Deterministic(t *testing.T) {
	if fnv1a64("arrivals") != fnv1a64("arrivals") {
		t.Error("fnv1a64 not deterministic")
	}
	if fnv1a64("arrivals") == fnv1a64("workload") {
		t.Error("fnv1a64 collided on distinct subsystem names")
	}
}

func BenchmarkPartitionedRNG_ForSubsystem_CacheHit(b *testing.B) {
	rng := NewPartitionedRNG(NewSimulationKey(42))
	rng.ForSubsystem(SubsystemArrivals)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rng.ForSubsystem(SubsystemArrivals)
	}
}
