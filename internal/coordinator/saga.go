// Package coordinator runs multi-step writes as sagas: steps execute in order
// and, when one fails, the steps that already succeeded are compensated in
// reverse order.
package coordinator

import (
	"context"
	"fmt"
	"log"

	"alu_portal/internal/coordinator/sagalog"
)

// Step is a single unit of work with a compensating action.
type Step interface {
	Name() string
	Execute(ctx context.Context) error
	Compensate(ctx context.Context) error
}

// Orchestrator executes a fixed list of steps for one saga.
type Orchestrator struct {
	sagaID string
	steps  []Step
	logs   sagalog.Repository
}

// NewOrchestrator builds a saga. logs may be nil when no audit trail is kept.
func NewOrchestrator(sagaID string, steps []Step, logs sagalog.Repository) *Orchestrator {
	return &Orchestrator{sagaID: sagaID, steps: steps, logs: logs}
}

// Start runs the steps sequentially. On failure every completed step is
// compensated (LIFO) and the step error is returned.
func (o *Orchestrator) Start(ctx context.Context, payload string) error {
	o.record(ctx, sagalog.StatusStarted, "", payload, nil)

	var done []Step
	for _, step := range o.steps {
		log.Printf("[saga][%s] executing step=%s", o.sagaID, step.Name())
		if err := step.Execute(ctx); err != nil {
			log.Printf("[saga][%s] step=%s failed err=%v, starting rollback", o.sagaID, step.Name(), err)
			errs := []string{fmt.Sprintf("step %s failed: %v", step.Name(), err)}
			o.record(ctx, sagalog.StatusCompensating, step.Name(), "", errs)
			errs = append(errs, o.rollback(ctx, done)...)
			o.record(ctx, sagalog.StatusFailed, step.Name(), "", errs)
			return err
		}
		done = append(done, step)
		o.record(ctx, sagalog.StatusStepDone, step.Name(), "", nil)
	}

	o.record(ctx, sagalog.StatusCompleted, "", "", nil)
	log.Printf("[saga][%s] completed", o.sagaID)
	return nil
}

func (o *Orchestrator) rollback(ctx context.Context, steps []Step) []string {
	// compensation must run even when the caller has gone away
	ctx = context.WithoutCancel(ctx)

	var errs []string
	for i := len(steps) - 1; i >= 0; i-- {
		step := steps[i]
		log.Printf("[saga][%s] compensating step=%s", o.sagaID, step.Name())
		if err := step.Compensate(ctx); err != nil {
			log.Printf("[saga][%s] CRITICAL compensation of step=%s failed err=%v", o.sagaID, step.Name(), err)
			errs = append(errs, fmt.Sprintf("compensation of %s failed: %v", step.Name(), err))
		}
	}
	return errs
}

func (o *Orchestrator) record(ctx context.Context, status sagalog.Status, step, payload string, errs []string) {
	if o.logs == nil {
		return
	}
	entry := sagalog.NewEntry(ctx, o.sagaID, status, step, payload, errs)
	if err := o.logs.Save(context.WithoutCancel(ctx), entry); err != nil {
		log.Printf("[saga][%s] saga log write failed status=%s err=%v", o.sagaID, status, err)
	}
}
