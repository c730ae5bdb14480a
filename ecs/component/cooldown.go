package component

// HitCooldown makes the player immune to obstacle hits while Seconds > 0.
type HitCooldown struct {
	Seconds float64
}

var HitCooldownComponent = NewComponent[HitCooldown]("hit_cooldown")
