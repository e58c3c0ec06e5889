package catch

import "github.com/vovakirdan/bunny-catch/internal/core"

// Autopilot picks a movement for the paddle from a snapshot. It steers under
// the lowest normal object and sidesteps hazards that are about to land on
// the paddle. Used by the headless harness.
func Autopilot(snap Snapshot) core.Action {
	if snap.Mode != ModePlaying {
		return core.ActionNone
	}

	paddle := snap.Player
	center := paddle.CenterX()

	// Hazards in the lower third that overlap the paddle's columns take priority.
	for _, o := range snap.Objects {
		if o.Kind != KindHazard || o.Y+o.Radius*2 < snap.FieldH*2/3 {
			continue
		}
		if o.X+o.Radius <= paddle.X || o.X-o.Radius >= paddle.Right() {
			continue
		}
		if o.X < center && paddle.Right() < snap.FieldW {
			return core.ActionMoveRight
		}
		if paddle.X > 0 {
			return core.ActionMoveLeft
		}
		return core.ActionMoveRight
	}

	var target *ObjectView
	for i := range snap.Objects {
		o := &snap.Objects[i]
		if o.Kind != KindNormal {
			continue
		}
		if target == nil || o.Y > target.Y {
			target = o
		}
	}
	if target == nil {
		return core.ActionNone
	}

	// Dead zone of a quarter paddle avoids jitter around the target.
	switch dx := target.X - center; {
	case dx > paddle.W/4:
		return core.ActionMoveRight
	case dx < -paddle.W/4:
		return core.ActionMoveLeft
	default:
		return core.ActionNone
	}
}
