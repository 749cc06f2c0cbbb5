package components

import "github.com/yohamta/donburi"

// PauseChoice is a pause menu entry, top to bottom.
type PauseChoice int

const (
	PauseResume PauseChoice = iota
	PauseRestart
	PauseLeave
	PauseQuit
	pauseChoiceCount
)

// PauseChoiceCount is the number of pause menu entries.
const PauseChoiceCount = int(pauseChoiceCount)

// SessionOutcome is what the world scene does once the tick is over.
type SessionOutcome int

const (
	SessionPlaying SessionOutcome = iota
	// SessionDied rebuilds the level after the player's death fade.
	SessionDied
	// SessionRestarted rebuilds the level at the player's request.
	SessionRestarted
	SessionWon
	// SessionLeft returns to the title without recording the run.
	SessionLeft
	SessionQuit
)

// SessionData is the state of one attempt at the level. Outcome is sticky:
// the first decision of a tick wins and nothing clears it.
type SessionData struct {
	Paused  bool
	Cursor  PauseChoice
	Outcome SessionOutcome
}

// Over reports whether the attempt has been decided.
func (s *SessionData) Over() bool {
	return s.Outcome != SessionPlaying
}

// Decide records the outcome unless one is already set.
func (s *SessionData) Decide(o SessionOutcome) {
	if s.Outcome == SessionPlaying {
		s.Outcome = o
	}
}

var Session = donburi.NewComponentType[SessionData]()
