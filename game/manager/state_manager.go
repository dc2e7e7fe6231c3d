package manager

import (
	"github.com/golang/glog"
	"github.com/google/uuid"
)

// State is the session phase
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// RecordStore persists the best score across sessions
type RecordStore interface {
	GetRecord() int
	SetRecord(record int) error
}

// StateManager owns the session state, the score and the record
type StateManager struct {
	state   State
	score   int
	record  int
	roundID string
	store   RecordStore
}

// NewStateManager starts in the menu with the record loaded from store
func NewStateManager(store RecordStore) *StateManager {
	sm := &StateManager{
		state:  StateMenu,
		store:  store,
		record: max(store.GetRecord(), 0),
	}
	glog.V(1).Infof("session: loaded record %d", sm.record)
	return sm
}

// Toggle advances the state machine on the toggle intent. It returns true
// when a new round begins, in which case the caller resets the board.
func (sm *StateManager) Toggle() bool {
	switch sm.state {
	case StateMenu, StateGameOver:
		sm.state = StatePlaying
		sm.score = 0
		sm.roundID = uuid.NewString()
		glog.Infof("session: round %s started (record %d)", sm.roundID, sm.record)
		return true
	case StatePlaying:
		sm.state = StatePaused
	case StatePaused:
		sm.state = StatePlaying
	}
	glog.V(1).Infof("session: %s", sm.state)
	return false
}

// EndRound moves a running round to GameOver
func (sm *StateManager) EndRound(reason string) {
	if sm.state != StatePlaying {
		return
	}
	sm.state = StateGameOver
	glog.Infof("session: round %s over (%s), score %d, record %d", sm.roundID, reason, sm.score, sm.record)
}

// AddScore credits points and persists the record when it is beaten.
// A failed write is logged; the in-memory record still advances.
func (sm *StateManager) AddScore(points int) {
	sm.score += points
	if sm.score <= sm.record {
		return
	}
	sm.record = sm.score
	if err := sm.store.SetRecord(sm.record); err != nil {
		glog.Warningf("session: persist record %d: %v", sm.record, err)
		return
	}
	glog.V(1).Infof("session: new record %d", sm.record)
}

func (sm *StateManager) State() State {
	return sm.state
}

func (sm *StateManager) Playing() bool {
	return sm.state == StatePlaying
}

func (sm *StateManager) Score() int {
	return sm.score
}

func (sm *StateManager) Record() int {
	return sm.record
}

// RoundID identifies the current or last round in logs
func (sm *StateManager) RoundID() string {
	return sm.roundID
}
