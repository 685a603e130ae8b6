package exchange

import "github.com/BruksfildServices01/slot-exchange/internal/httperr"

// ===============================
// Exchange Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusDeclined  Status = "declined"
	StatusCancelled Status = "cancelled"
)

// Terminal reports whether no further transition may leave s.
func (s Status) Terminal() bool {
	return s == StatusConfirmed || s == StatusDeclined || s == StatusCancelled
}

// ===============================
// Actions
// ===============================

type Action string

const (
	ActionConfirm Action = "confirm"
	ActionDecline Action = "decline"
	ActionCancel  Action = "cancel"
	ActionApprove Action = "approve"
)

func ParseAction(s string) (Action, error) {
	switch a := Action(s); a {
	case ActionConfirm, ActionDecline, ActionCancel, ActionApprove:
		return a, nil
	default:
		return "", httperr.ErrValidation("invalid_action")
	}
}

const MaxMessageLength = 500

func InitialStatus() Status {
	return StatusPending
}
