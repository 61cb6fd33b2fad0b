package domain

import "math"

// SpinPlan is one random draw for the Spinning phase.
type SpinPlan struct {
	FullRotations int     `json:"full_rotations"`
	FinalOffset   float64 `json:"final_offset"`
}

// TotalRotation is the number of degrees the wheel travels for this plan.
func (p SpinPlan) TotalRotation() float64 {
	return float64(p.FullRotations)*FullCircle + p.FinalOffset
}

// DrawSpin draws full rotations uniformly from [minRot, maxRot] and the final
// offset uniformly from [0, 360). The offset alone decides the outcome, so
// its uniformity is what keeps equal-width sections equally likely.
func DrawSpin(rng RNG, minRot, maxRot int) SpinPlan {
	if maxRot < minRot {
		minRot, maxRot = maxRot, minRot
	}
	offset := rng.Float64() * FullCircle
	if offset >= FullCircle || offset < 0 {
		offset = 0
	}
	return SpinPlan{
		FullRotations: minRot + rng.Intn(maxRot-minRot+1),
		FinalOffset:   offset,
	}
}

// EaseOut is a cubic deceleration curve on [0, 1].
func EaseOut(t float64) float64 {
	t = math.Max(0, math.Min(1, t))
	u := 1 - t
	return 1 - u*u*u
}
