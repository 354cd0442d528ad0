package manager

import (
	"context"
	"fmt"

	"github.com/looplab/fsm"
	"github.com/rs/zerolog"
)

// Lifecycle states and events.
const (
	StatePlaying = "playing"
	StateCrashed = "crashed"

	EventCrash   = "crash"
	EventRestart = "restart"
)

// StateManager tracks whether the current round is live or crashed, and
// the best score seen by this process.
type StateManager struct {
	fsm       *fsm.FSM
	log       zerolog.Logger
	highScore int
}

func NewStateManager(log zerolog.Logger) *StateManager {
	sm := &StateManager{
		log: log,
	}
	sm.fsm = fsm.NewFSM(
		StatePlaying,
		fsm.Events{
			{Name: EventCrash, Src: []string{StatePlaying}, Dst: StateCrashed},
			{Name: EventRestart, Src: []string{StateCrashed}, Dst: StatePlaying},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				ev := sm.log.Debug().Str("from", e.Src).Str("to", e.Dst)
				if len(e.Args) > 0 {
					ev = ev.Interface("cause", e.Args[0])
				}
				ev.Msg("lifecycle transition")
			},
		},
	)
	return sm
}

func (sm *StateManager) Crashed() bool {
	return sm.fsm.Is(StateCrashed)
}

func (sm *StateManager) Current() string {
	return sm.fsm.Current()
}

// Crash ends the round. Crashing twice is a bookkeeping bug.
func (sm *StateManager) Crash(cause string) {
	sm.event(EventCrash, cause)
}

// Restart starts a new round. It is a no-op while the round is live,
// which is the state a freshly built game starts in.
func (sm *StateManager) Restart() {
	if !sm.Crashed() {
		return
	}
	sm.event(EventRestart)
}

func (sm *StateManager) event(name string, args ...interface{}) {
	if err := sm.fsm.Event(context.Background(), name, args...); err != nil {
		panic(fmt.Sprintf("manager: %s from %s: %v", name, sm.fsm.Current(), err))
	}
}

func (sm *StateManager) UpdateScore(score int) {
	if score > sm.highScore {
		sm.highScore = score
	}
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}
