package sim

import "fmt"

// DefaultScalingRatio is the number of queued requests each worker is expected to absorb.
const DefaultScalingRatio = 3

// ScalingPolicy computes the desired pool size from the current queue length.
// The Dispatcher clamps any result below 1 up to 1.
type ScalingPolicy interface {
	Target(queueLen, poolSize int) int
	// String names the policy in resize log lines, e.g. "3:1 ratio".
	String() string
}

// RatioPolicy keeps ceil(queueLen / Ratio) workers in the pool.
type RatioPolicy struct {
	Ratio int
}

// Validate reports whether p can compute a target.
func (p RatioPolicy) Validate() error {
	if p.Ratio < 1 {
		return fmt.Errorf("ratio must be >= 1, got %d", p.Ratio)
	}
	return nil
}

// Target implements ScalingPolicy for RatioPolicy.
func (p RatioPolicy) Target(queueLen, _ int) int {
	if p.Ratio < 1 {
		panic(fmt.Sprintf("RatioPolicy.Target: ratio must be >= 1, got %d", p.Ratio))
	}
	return (queueLen + p.Ratio - 1) / p.Ratio
}

func (p RatioPolicy) String() string {
	return fmt.Sprintf("%d:1 ratio", p.Ratio)
}

// DefaultScalingPolicy returns the fixed 3:1 queue-to-worker policy.
func DefaultScalingPolicy() ScalingPolicy {
	return RatioPolicy{Ratio: DefaultScalingRatio}
}

// ScalingFunc adapts a plain function to ScalingPolicy.
type ScalingFunc func(queueLen, poolSize int) int

// Target calls f.
func (f ScalingFunc) Target(queueLen, poolSize int) int {
	return f(queueLen, poolSize)
}

func (f ScalingFunc) String() string {
	return "custom policy"
}
