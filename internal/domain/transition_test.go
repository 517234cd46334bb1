package domain

import (
	"errors"
	"testing"
)

func TestNextTransitionHappyPath(t *testing.T) {
	cases := []struct {
		action TransitionAction
		from   TransactionStatus
		to     TransactionStatus
		role   Role
	}{
		{ActionApprove, StatusPending, StatusApproved, RoleAdmin},
		{ActionReject, StatusPending, StatusRejected, RoleAdmin},
		{ActionPay, StatusApproved, StatusPaid, RoleBuyer},
		{ActionDeliver, StatusPaid, StatusDelivered, RoleSeller},
		{ActionComplete, StatusDelivered, StatusCompleted, RoleBuyer},
	}

	for _, c := range cases {
		tr, err := NextTransition(c.action, c.from)
		if err != nil {
			t.Fatalf("%s from %s: unexpected error %v", c.action, c.from, err)
		}
		if tr.To != c.to || tr.Role != c.role {
			t.Errorf("%s from %s: got (%s, %s), want (%s, %s)", c.action, c.from, tr.To, tr.Role, c.to, c.role)
		}
	}
}

func TestNextTransitionRejectsWrongStatus(t *testing.T) {
	statuses := []TransactionStatus{
		StatusPending, StatusApproved, StatusRejected,
		StatusPaid, StatusDelivered, StatusCompleted,
	}
	actions := []TransitionAction{
		ActionApprove, ActionReject, ActionPay, ActionDeliver, ActionComplete,
	}

	for _, a := range actions {
		valid := transitions[a].From
		for _, s := range statuses {
			if s == valid {
				continue
			}
			if _, err := NextTransition(a, s); !errors.Is(err, ErrInvalidTransition) {
				t.Errorf("%s from %s: want ErrInvalidTransition, got %v", a, s, err)
			}
		}
	}
}

func TestRejectedAndCompletedAreTerminal(t *testing.T) {
	for _, terminal := range []TransactionStatus{StatusRejected, StatusCompleted} {
		for a := range transitions {
			if _, err := NextTransition(a, terminal); err == nil {
				t.Errorf("action %s allowed from terminal status %s", a, terminal)
			}
		}
	}
}

func TestReplayedApproveIsRejected(t *testing.T) {
	if _, err := NextTransition(ActionApprove, StatusCompleted); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("replayed approve on completed transaction: want ErrInvalidTransition, got %v", err)
	}
}
