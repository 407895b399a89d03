package scheduling

import "errors"

// Every booking failure a caller can recover from is one of these
// sentinels. The HTTP layer translates them into response codes; none
// of them is an unexpected error worth logging.
var (
	ErrNotFound        = errors.New("entity not found")
	ErrInactive        = errors.New("employee or service inactive")
	ErrUnqualified     = errors.New("employee does not offer this service")
	ErrBlocked         = errors.New("client is blocked from booking")
	ErrSlotUnavailable = errors.New("requested time is not available")
	ErrConflict        = errors.New("time conflict with another appointment")
	ErrInvalidState    = errors.New("appointment is not in a valid state for this operation")
	ErrForbidden       = errors.New("appointment does not belong to this client")
	ErrTooLate         = errors.New("cancellation window has passed")
	ErrInvalidArgument = errors.New("invalid argument")
)
