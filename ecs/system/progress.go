package system

// Progress receives currency as it is collected. *profile.Profile
// implements it; a nil Progress discards it. The high score is not reported
// here: the session records it once when a run ends.
type Progress interface {
	AddBananas(n int)
}
