package achieve

import "context"

// activityChecker is the extension point for count-based "activity" criteria.
// No concrete statistic is mapped to them yet, so progress is always zero
// and such achievements stay locked.
//
// TODO: map this to completed-activity tags once product decides which tags
// qualify.
type activityChecker struct{}

func NewActivityChecker() *activityChecker {
	return &activityChecker{}
}

func (*activityChecker) CriteriaType() string {
	return CriteriaActivity
}

func (*activityChecker) Progress(ctx context.Context, userID string) (int, error) {
	return 0, nil
}
