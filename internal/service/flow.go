package service

import (
	"context"
	"sync"

	"coursebot/internal/domain"

	"github.com/looplab/fsm"
	"go.uber.org/zap"
)

const (
	eventViewCourse     = "view_course"
	eventBuy            = "buy"
	eventSelectCurrency = "select_currency"
	eventArm            = "arm"
	eventCopy           = "copy"
	eventPhoto          = "photo"
)

var allStates = []string{
	string(domain.StateIdle),
	string(domain.StateCourseViewed),
	string(domain.StateCurrencySelectionShown),
	string(domain.StateRequisitesShown),
	string(domain.StateAwaitingScreenshot),
}

// forcedTargets is where an out-of-order event lands. Old inline buttons
// stay clickable, so a press is honoured even when the machine disagrees.
var forcedTargets = map[string]domain.FlowState{
	eventViewCourse:     domain.StateCourseViewed,
	eventBuy:            domain.StateCurrencySelectionShown,
	eventSelectCurrency: domain.StateRequisitesShown,
	eventArm:            domain.StateAwaitingScreenshot,
	eventPhoto:          domain.StateIdle,
}

func newFlowMachine() *fsm.FSM {
	return fsm.NewFSM(
		string(domain.StateIdle),
		fsm.Events{
			{Name: eventViewCourse, Src: allStates, Dst: string(domain.StateCourseViewed)},
			{Name: eventBuy, Src: allStates, Dst: string(domain.StateCurrencySelectionShown)},
			{
				Name: eventSelectCurrency,
				Src: []string{
					string(domain.StateCurrencySelectionShown),
					string(domain.StateRequisitesShown),
					string(domain.StateAwaitingScreenshot),
				},
				Dst: string(domain.StateRequisitesShown),
			},
			{Name: eventArm, Src: []string{string(domain.StateRequisitesShown)}, Dst: string(domain.StateAwaitingScreenshot)},
			{Name: eventCopy, Src: []string{string(domain.StateRequisitesShown)}, Dst: string(domain.StateRequisitesShown)},
			{Name: eventCopy, Src: []string{string(domain.StateAwaitingScreenshot)}, Dst: string(domain.StateAwaitingScreenshot)},
			{Name: eventPhoto, Src: allStates, Dst: string(domain.StateIdle)},
		},
		fsm.Callbacks{},
	)
}

// flowTracker keeps one state machine per user with a flow in progress
type flowTracker struct {
	mu       sync.Mutex
	machines map[int64]*fsm.FSM
	logger   *zap.Logger
}

func newFlowTracker(logger *zap.Logger) *flowTracker {
	return &flowTracker{
		machines: make(map[int64]*fsm.FSM),
		logger:   logger,
	}
}

// fire applies event to the user's machine and returns the resulting state
func (t *flowTracker) fire(userID int64, event string) domain.FlowState {
	t.mu.Lock()
	defer t.mu.Unlock()

	machine, ok := t.machines[userID]
	if !ok {
		machine = newFlowMachine()
		t.machines[userID] = machine
	}

	from := machine.Current()
	err := machine.Event(context.Background(), event)
	switch err.(type) {
	case nil, fsm.NoTransitionError:
	case fsm.InvalidEventError:
		if target, ok := forcedTargets[event]; ok {
			machine.SetState(string(target))
		}
		t.logger.Debug("Out-of-order flow event",
			zap.Int64("user_id", userID),
			zap.String("event", event),
			zap.String("from", from),
			zap.String("to", machine.Current()),
		)
	default:
		t.logger.Warn("Flow event failed",
			zap.Int64("user_id", userID),
			zap.String("event", event),
			zap.Error(err),
		)
	}

	state := domain.FlowState(machine.Current())
	if state == domain.StateIdle {
		delete(t.machines, userID)
	}
	return state
}

// state returns the user's current state, idle when nothing is tracked
func (t *flowTracker) state(userID int64) domain.FlowState {
	t.mu.Lock()
	defer t.mu.Unlock()

	if machine, ok := t.machines[userID]; ok {
		return domain.FlowState(machine.Current())
	}
	return domain.StateIdle
}

func (t *flowTracker) reset(userID int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.machines, userID)
}
