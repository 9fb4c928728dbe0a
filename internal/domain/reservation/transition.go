package reservation

// Effect is what a status change does besides setting the status.
type Effect int

const (
	EffectRejected Effect = iota
	// EffectOverwrite sets the status with no stamps.
	EffectOverwrite
	// EffectIntake stamps intake time and receiver; customers get a pickup-ready message.
	EffectIntake
	// EffectClose stamps closing time and agent.
	EffectClose
)

func (e Effect) String() string {
	switch e {
	case EffectOverwrite:
		return "overwrite"
	case EffectIntake:
		return "intake"
	case EffectClose:
		return "close"
	default:
		return "rejected"
	}
}

var openTargets = map[Status]Effect{
	StatusInTransit:      EffectOverwrite,
	StatusAwaitingPickup: EffectIntake,
	StatusPickedUp:       EffectClose,
	StatusCancelled:      EffectClose,
}

// Terminal states have no entry: they leave only through soft delete and restore.
var transitions = map[Status]map[Status]Effect{
	StatusInTransit:      openTargets,
	StatusAwaitingPickup: openTargets,
}

func EffectOf(from, to Status) Effect {
	targets, ok := transitions[from]
	if !ok {
		return EffectRejected
	}
	effect, ok := targets[to]
	if !ok {
		return EffectRejected
	}
	return effect
}

func CanTransition(from, to Status) bool {
	return EffectOf(from, to) != EffectRejected
}
