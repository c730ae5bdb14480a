package system

import (
	"log"
	"math"

	"github.com/milk9111/skyclimb/ecs"
	"github.com/milk9111/skyclimb/ecs/component"
	"github.com/milk9111/skyclimb/prefabs"
)

// ScoreSystem turns new height into points, raises difficulty and tracks
// the run's high score in memory.
type ScoreSystem struct {
	tuning    *prefabs.Tuning
	curve     DifficultyCurve
	announced bool
}

// NewScoreSystem uses curve for difficulty, falling back to the step curve
// whenever it fails. A nil curve means the step curve.
func NewScoreSystem(t *prefabs.Tuning, curve DifficultyCurve) *ScoreSystem {
	return &ScoreSystem{tuning: t, curve: curve}
}

// SetCurve replaces the difficulty curve; nil restores the step curve.
func (s *ScoreSystem) SetCurve(curve DifficultyCurve) {
	s.curve = curve
}

func (s *ScoreSystem) Update(w *ecs.World) {
	e, _, pt, ok := activePlayer(w)
	if !ok {
		return
	}
	score, ok := ecs.Get(w, e, component.ScoreComponent.Kind())
	if !ok {
		return
	}

	switch {
	case math.IsInf(score.MaxHeight, -1):
		score.MaxHeight = pt.Y
	case pt.Y > score.MaxHeight:
		gain := pt.Y - score.MaxHeight
		score.MaxHeight = pt.Y
		score.HeightScore += int(math.Floor(gain * s.tuning.Scoring.HeightMultiplier))
	}

	if gen, ok := generator(w); ok {
		step := StepCurve{Step: s.tuning.Difficulty.Step}
		d, _ := step.Difficulty(score.MaxHeight)
		if s.curve != nil {
			scripted, err := s.curve.Difficulty(score.MaxHeight)
			if err != nil {
				log.Printf("score: %v", err)
			} else {
				d = scripted
			}
		}
		gen.Difficulty = max(gen.Difficulty, d)
	}

	score.Recompute()
	if score.Total <= score.HighScore {
		return
	}
	score.HighScore = score.Total
	if !s.announced {
		s.announced = true
		w.Events().Push(ecs.Event{Type: ecs.EventHighScore, Entity: e, Data: score.Total})
	}
}
