package manager

import (
	"minisnake/game/types"
	"time"

	"github.com/google/uuid"
)

type EventKind string

const (
	EventStart    EventKind = "start"
	EventStep     EventKind = "step"
	EventEat      EventKind = "eat"
	EventGameOver EventKind = "game_over"
)

// Event is one observable change of a play session.
type Event struct {
	Session  string        `json:"session"`
	Kind     EventKind     `json:"kind"`
	Time     time.Time     `json:"time"`
	Head     types.Point   `json:"head"`
	Fruit    types.Point   `json:"fruit"`
	Score    int           `json:"score"`
	Length   int           `json:"length"`
	Interval float64       `json:"interval"`
	Cause    CollisionType `json:"cause,omitempty"`
}

// Observer receives session events in the order they happen.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(Event)

func (f ObserverFunc) Observe(ev Event) { f(ev) }

// StateManager tracks play sessions for the lifetime of the process.
// It is owned by the game loop; nothing here outlives the process.
type StateManager struct {
	sessionID string
	started   time.Time
	sessions  int
	highScore int
	observers []Observer
	now       func() time.Time
}

func NewStateManager(observers ...Observer) *StateManager {
	return &StateManager{
		observers: observers,
		now:       time.Now,
	}
}

// BeginSession opens a new session and returns its ID.
func (sm *StateManager) BeginSession() string {
	sm.sessionID = uuid.NewString()
	sm.started = sm.now()
	sm.sessions++
	return sm.sessionID
}

func (sm *StateManager) SessionID() string {
	return sm.sessionID
}

// Sessions counts sessions begun so far, the first one included.
func (sm *StateManager) Sessions() int {
	return sm.sessions
}

// SessionDuration is the wall-clock age of the current session.
func (sm *StateManager) SessionDuration() time.Duration {
	return sm.now().Sub(sm.started)
}

func (sm *StateManager) UpdateScore(score int) {
	if score > sm.highScore {
		sm.highScore = score
	}
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

// Notify stamps ev with the session and time and hands it to every observer.
func (sm *StateManager) Notify(ev Event) {
	ev.Session = sm.sessionID
	ev.Time = sm.now()
	for _, o := range sm.observers {
		o.Observe(ev)
	}
}
