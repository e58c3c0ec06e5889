package catch

import "github.com/vovakirdan/bunny-catch/internal/core"

// EventType identifies something that happened during a tick.
type EventType int

const (
	EventSpawned      EventType = iota // Object entered the field
	EventForcedSpawn                   // Object entered the field past the cap
	EventCaught                        // Normal object caught, score +1
	EventHazardCaught                  // Hazard caught, run over
	EventMissed                        // Normal object fell out, run over
	EventDodged                        // Hazard fell out harmlessly
)

// String returns the event name.
func (e EventType) String() string {
	switch e {
	case EventSpawned:
		return "spawned"
	case EventForcedSpawn:
		return "forced_spawn"
	case EventCaught:
		return "caught"
	case EventHazardCaught:
		return "hazard_caught"
	case EventMissed:
		return "missed"
	case EventDodged:
		return "dodged"
	default:
		return "unknown"
	}
}

// Event is reported to the presentation layer (sound cues, logs).
type Event struct {
	Type EventType
	Kind Kind
	X    float64 // Object center at the time of the event
}

// Resolution is the outcome of one resolver pass.
type Resolution struct {
	Remaining []*FallingObject
	Caught    int            // Normal objects caught, in order, before any terminal event
	Reason    GameOverReason // ReasonNone when the run continues
	Events    []Event
}

// Resolve applies catches and bottom exits to objects. Catches are resolved
// before exits, and the pass stops at the first run-ending condition.
// objects is reused as backing storage for Remaining.
func Resolve(paddle core.Rect, objects []*FallingObject, fieldHeight float64) Resolution {
	var res Resolution

	// Catches
	kept := objects[:0]
	for i, o := range objects {
		if !paddle.Intersects(o.Bounds()) {
			kept = append(kept, o)
			continue
		}
		if o.Kind == KindHazard {
			res.Events = append(res.Events, Event{Type: EventHazardCaught, Kind: o.Kind, X: o.X})
			res.Reason = ReasonHazardCaught
			res.Remaining = append(kept, objects[i+1:]...)
			return res
		}
		res.Caught++
		res.Events = append(res.Events, Event{Type: EventCaught, Kind: o.Kind, X: o.X})
	}

	// Bottom exits
	remaining := kept[:0]
	for i, o := range kept {
		if o.OnScreen(fieldHeight) {
			remaining = append(remaining, o)
			continue
		}
		if o.Kind == KindNormal {
			res.Events = append(res.Events, Event{Type: EventMissed, Kind: o.Kind, X: o.X})
			res.Reason = ReasonObjectMissed
			res.Remaining = append(remaining, kept[i+1:]...)
			return res
		}
		res.Events = append(res.Events, Event{Type: EventDodged, Kind: o.Kind, X: o.X})
	}

	res.Remaining = remaining
	return res
}
