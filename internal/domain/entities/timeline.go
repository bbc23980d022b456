package entities

import "time"

// Timeline records when an order crossed each lifecycle milestone.
//
// Ordering: CreatedAt <= StartedExecutionAt <= FinishedAt <= DeliveredAt,
// compared only where both sides are set.
type Timeline struct {
	CreatedAt          time.Time
	StartedExecutionAt *time.Time
	FinishedAt         *time.Time
	DeliveredAt        *time.Time
}

func NewTimeline(createdAt time.Time) Timeline {
	return Timeline{CreatedAt: createdAt.UTC()}
}

// RestoreTimeline validates timestamps loaded from storage.
func RestoreTimeline(createdAt time.Time, started, finished, delivered *time.Time) (Timeline, error) {
	t := Timeline{CreatedAt: createdAt.UTC()}
	if started != nil {
		if err := t.markStartedExecution(*started); err != nil {
			return Timeline{}, err
		}
	}
	if finished != nil {
		if err := t.markFinished(*finished); err != nil {
			return Timeline{}, err
		}
	}
	if delivered != nil {
		if err := t.markDelivered(*delivered); err != nil {
			return Timeline{}, err
		}
	}
	return t, nil
}

func (t *Timeline) markStartedExecution(at time.Time) error {
	if t.StartedExecutionAt != nil {
		return NewDomainRuleBroken("execution start already recorded")
	}
	if err := notBefore("execution start", at, "creation", &t.CreatedAt); err != nil {
		return err
	}
	at = at.UTC()
	t.StartedExecutionAt = &at
	return nil
}

func (t *Timeline) markFinished(at time.Time) error {
	if t.FinishedAt != nil {
		return NewDomainRuleBroken("finish already recorded")
	}
	if err := notBefore("finish", at, "creation", &t.CreatedAt); err != nil {
		return err
	}
	if err := notBefore("finish", at, "execution start", t.StartedExecutionAt); err != nil {
		return err
	}
	at = at.UTC()
	t.FinishedAt = &at
	return nil
}

func (t *Timeline) markDelivered(at time.Time) error {
	if t.DeliveredAt != nil {
		return NewDomainRuleBroken("delivery already recorded")
	}
	if err := notBefore("delivery", at, "creation", &t.CreatedAt); err != nil {
		return err
	}
	if err := notBefore("delivery", at, "finish", t.FinishedAt); err != nil {
		return err
	}
	at = at.UTC()
	t.DeliveredAt = &at
	return nil
}

// TotalDuration is delivery minus creation.
func (t Timeline) TotalDuration() (time.Duration, bool) {
	if t.DeliveredAt == nil {
		return 0, false
	}
	return t.DeliveredAt.Sub(t.CreatedAt), true
}

// ExecutionDuration is finish minus execution start.
func (t Timeline) ExecutionDuration() (time.Duration, bool) {
	if t.StartedExecutionAt == nil || t.FinishedAt == nil {
		return 0, false
	}
	return t.FinishedAt.Sub(*t.StartedExecutionAt), true
}

func notBefore(name string, at time.Time, refName string, ref *time.Time) error {
	if ref != nil && at.Before(*ref) {
		return NewDomainRuleBroken("%s timestamp cannot be earlier than %s", name, refName)
	}
	return nil
}
