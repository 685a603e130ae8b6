package httperr

var messages = map[string]string{
	"invalid_request":    "Request body is missing or malformed.",
	"invalid_action":     "Unknown action.",
	"same_booking":       "A booking cannot be exchanged with itself.",
	"same_consumer":      "Both bookings belong to the same consumer.",
	"message_too_long":   "Message must be at most 500 characters.",
	"reason_too_long":    "Cancellation reason must be at most 500 characters.",
	"missing_booking_id": "Both booking ids are required.",

	"booking_not_scheduled":    "Both bookings must be scheduled.",
	"provider_mismatch":        "Bookings belong to different providers.",
	"advance_notice_too_short": "The booking starts too soon to be exchanged.",
	"cross_day_not_allowed":    "This provider only allows exchanges on the same weekday.",
	"booking_in_past":          "A booking that already started cannot be cancelled.",

	"not_a_participant":    "You are not a participant of this exchange.",
	"not_booking_owner":    "You do not hold this booking.",
	"not_booking_provider": "Only the owning provider can do this.",
	"action_not_allowed":   "Your role cannot perform this action.",

	"booking_not_found":  "Booking not found.",
	"exchange_not_found": "Exchange not found.",

	"exchange_already_pending": "There is already a pending exchange for this booking.",
	"exchange_not_pending":     "The exchange is no longer pending.",
	"target_not_confirmed":     "The target consumer has not confirmed yet.",
	"booking_state_changed":    "One of the bookings changed; reload and try again.",
	"invalid_state":            "The booking is not in a state that allows this action.",
	"stale_state":              "The record changed concurrently; reload and try again.",

	"missing_authorization_header": "Authorization header is required.",
	"invalid_authorization_header": "Authorization header must be a bearer token.",
	"invalid_token":                "Token is invalid or expired.",
	"invalid_token_payload":        "Token does not carry a usable identity.",
	"provider_only":                "Only providers can do this.",
	"internal_error":               "Unexpected error.",
}

func messageFor(code string) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return "Unexpected error."
}
