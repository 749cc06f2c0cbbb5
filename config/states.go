package config

// HealthState is the state of an actor's health tracker.
type HealthState int

const (
	HealthAliveInvincible HealthState = iota
	HealthAliveVulnerable
	HealthDead
)

func (s HealthState) String() string {
	switch s {
	case HealthAliveInvincible:
		return "alive-invincible"
	case HealthAliveVulnerable:
		return "alive-vulnerable"
	case HealthDead:
		return "dead"
	}
	return "unknown"
}

// HealthEvent drives HealthState transitions.
type HealthEvent int

const (
	HealthEventVulnerable HealthEvent = iota // invincibility cleared
	HealthEventDepleted                      // current health reached zero
)

// HealthTransitions is the full transition table for HealthState. Dead has no
// outgoing edges. Alive-Invincible cannot be depleted: damage is ignored there.
var HealthTransitions = map[HealthState]map[HealthEvent]HealthState{
	HealthAliveInvincible: {HealthEventVulnerable: HealthAliveVulnerable},
	HealthAliveVulnerable: {HealthEventDepleted: HealthDead},
}

// NextHealthState looks up the transition for ev. ok is false when s has no edge for ev.
func NextHealthState(s HealthState, ev HealthEvent) (HealthState, bool) {
	next, ok := HealthTransitions[s][ev]
	return next, ok
}

// FlickerPhase is the state of the boss activation sequence.
type FlickerPhase int

const (
	FlickerIdle FlickerPhase = iota
	FlickerFlickering
	FlickerHidden // forced invisible, waiting to teleport
	FlickerEngaged
)

func (p FlickerPhase) String() string {
	switch p {
	case FlickerIdle:
		return "idle"
	case FlickerFlickering:
		return "flickering"
	case FlickerHidden:
		return "hidden"
	case FlickerEngaged:
		return "engaged"
	}
	return "unknown"
}

// FlickerEvent drives FlickerPhase transitions.
type FlickerEvent int

const (
	FlickerEventTrigger FlickerEvent = iota
	FlickerEventDurationElapsed
	FlickerEventTeleported
)

// FlickerTransitions is one-shot: nothing leads back to Idle.
var FlickerTransitions = map[FlickerPhase]map[FlickerEvent]FlickerPhase{
	FlickerIdle:       {FlickerEventTrigger: FlickerFlickering},
	FlickerFlickering: {FlickerEventDurationElapsed: FlickerHidden},
	FlickerHidden:     {FlickerEventTeleported: FlickerEngaged},
}

// NextFlickerPhase looks up the transition for ev.
func NextFlickerPhase(p FlickerPhase, ev FlickerEvent) (FlickerPhase, bool) {
	next, ok := FlickerTransitions[p][ev]
	return next, ok
}

// StarfishPhase is the state of a ceiling-dropping enemy.
type StarfishPhase int

const (
	StarfishWaiting StarfishPhase = iota
	StarfishFalling
	StarfishFollowing
)

// MotionKind selects the motion backend used by the follow behavior.
type MotionKind string

const (
	MotionTransform MotionKind = "transform" // direct position integration
	MotionBody      MotionKind = "body"      // velocity on a simulated body
	MotionNav       MotionKind = "nav"       // path requests on the navigation grid
)

// DeathPolicy selects what happens to an actor when it dies.
type DeathPolicy string

const (
	DeathDecompose     DeathPolicy = "decompose"
	DeathSimpleDisable DeathPolicy = "disable"
)

// TriggerKind identifies what a trigger zone does when the player enters it.
type TriggerKind string

const (
	TriggerBossDoor TriggerKind = "boss_door"
	TriggerBossRoom TriggerKind = "boss_room"
	TriggerStarfish TriggerKind = "starfish"
	TriggerSpawner  TriggerKind = "spawner"
	TriggerFinish   TriggerKind = "finish"
	TriggerDoor     TriggerKind = "door"
)
