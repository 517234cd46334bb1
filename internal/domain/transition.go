package domain

type TransitionAction string

const (
	ActionApprove  TransitionAction = "approve"
	ActionReject   TransitionAction = "reject"
	ActionPay      TransitionAction = "pay"
	ActionDeliver  TransitionAction = "deliver"
	ActionComplete TransitionAction = "complete"
)

type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

type Transition struct {
	From TransactionStatus
	To   TransactionStatus
	Role Role
}

// transitions is the lifecycle graph. Each action is valid from exactly one
// predecessor status; rejected and completed are terminal.
var transitions = map[TransitionAction]Transition{
	ActionApprove:  {From: StatusPending, To: StatusApproved, Role: RoleAdmin},
	ActionReject:   {From: StatusPending, To: StatusRejected, Role: RoleAdmin},
	ActionPay:      {From: StatusApproved, To: StatusPaid, Role: RoleBuyer},
	ActionDeliver:  {From: StatusPaid, To: StatusDelivered, Role: RoleSeller},
	ActionComplete: {From: StatusDelivered, To: StatusCompleted, Role: RoleBuyer},
}

// NextTransition resolves an action against the current persisted status.
// A trigger that does not match the current status is rejected, which is what
// makes replayed callbacks (an admin re-clicking Approve on a completed
// transaction) a no-op instead of a re-fired notification.
func NextTransition(action TransitionAction, current TransactionStatus) (Transition, error) {
	t, ok := transitions[action]
	if !ok || t.From != current {
		return Transition{}, ErrInvalidTransition
	}
	return t, nil
}
