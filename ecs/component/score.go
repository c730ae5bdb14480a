package component

import "math"

type Score struct {
	// MaxHeight starts at -Inf so the first ready tick only records the
	// spawn height without awarding points for it.
	MaxHeight   float64
	HeightScore int
	BonusScore  int
	Total       int
	HighScore   int
	Bananas     int
}

func NewScore(highScore int) *Score {
	return &Score{MaxHeight: math.Inf(-1), HighScore: highScore}
}

var ScoreComponent = NewComponent[Score]("score")

// Recompute derives the total from its parts. Calling it repeatedly without
// new gains leaves the total unchanged.
func (s *Score) Recompute() {
	s.Total = s.HeightScore + s.BonusScore
}
