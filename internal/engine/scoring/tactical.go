package scoring

import (
	"github.com/KirkDiggler/army-rater/internal/entities/army"
)

// TacticalScore rates objective control and morale stability per model.
// A lower leadership target is better, so it contributes (11 - Ld).
func TacticalScore(u army.Unit) float64 {
	score := float64(u.ObjectiveControl)*ocWeight + float64(ldCeiling-u.Leadership)*ldWeight
	return round1(nonNegative(score))
}
