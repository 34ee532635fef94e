package merge

import "fmt"

// Valid range of a single pitch-preserving atempo stage.
const (
	MinTempoStage = 0.5
	MaxTempoStage = 2.0
)

// SpeedPlan holds the factors for a synchronized speed change. VideoRate
// multiplies presentation timestamps and equals target/total; the tempo
// chain multiplies audio speed and its product equals total/target. The two
// conventions are inverse: setpts wants the timestamp multiplier, atempo
// wants the speed multiplier.
type SpeedPlan struct {
	VideoRate       float64
	AudioTempoChain []float64
}

// IsIdentity reports whether the plan changes nothing and the caller should
// skip the transcode entirely.
func (p SpeedPlan) IsIdentity() bool {
	return p.VideoRate == 1 && len(p.AudioTempoChain) == 1 && p.AudioTempoChain[0] == 1
}

// ComputeSpeedPlan derives the speed factors needed to bring a total
// duration down to a target. Durations compare at full floating precision;
// totals at or under the target yield the identity plan.
func ComputeSpeedPlan(totalSeconds, targetSeconds float64) (SpeedPlan, error) {
	if totalSeconds <= 0 {
		return SpeedPlan{}, fmt.Errorf("total duration must be positive, got %v", totalSeconds)
	}
	if targetSeconds <= 0 {
		return SpeedPlan{}, fmt.Errorf("target duration must be positive, got %v", targetSeconds)
	}
	if totalSeconds <= targetSeconds {
		return SpeedPlan{VideoRate: 1, AudioTempoChain: []float64{1}}, nil
	}
	return SpeedPlan{
		VideoRate:       targetSeconds / totalSeconds,
		AudioTempoChain: TempoChain(totalSeconds / targetSeconds),
	}, nil
}

// TempoChain factors an audio speed multiplier into stages the engine
// accepts. Multipliers above 2.0 become saturating 2.0 stages plus the
// remainder; multipliers below 0.5 become saturating 0.5 stages plus the
// remainder; anything in range is a single stage. The stage product always
// equals the input ratio.
func TempoChain(ratio float64) []float64 {
	var chain []float64
	for ratio > MaxTempoStage {
		chain = append(chain, MaxTempoStage)
		ratio /= MaxTempoStage
	}
	for ratio < MinTempoStage {
		chain = append(chain, MinTempoStage)
		ratio /= MinTempoStage
	}
	return append(chain, ratio)
}
