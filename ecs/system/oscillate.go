package system

import (
	"math"

	"github.com/milk9111/skyclimb/ecs/component"
)

// oscillate steps t along the oscillator axis by Speed*factor. Overshooting
// Anchor±Range clamps to the bound and reverses direction, so the offset
// never exceeds Range.
func oscillate(t *component.Transform, o *component.Oscillator, factor float64) {
	pos := &t.X
	if o.Axis == component.AxisZ {
		pos = &t.Z
	}

	*pos += o.Speed * factor
	offset := *pos - o.Anchor
	if math.Abs(offset) > o.Range {
		*pos = o.Anchor + math.Copysign(o.Range, offset)
		o.Speed = -o.Speed
	}
}
