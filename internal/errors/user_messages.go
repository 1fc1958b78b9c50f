package errors

// User-friendly error messages
const (
	MsgUnauthorized       = "Your session is not valid. Please log in again."
	MsgForbidden          = "You are not allowed to view this map."
	MsgNotFound           = "The requested map resource was not found."
	MsgUpstreamRejected   = "The map service rejected the request."
	MsgBadGateway         = "The map service returned an error. Please try again later."
	MsgServiceUnavailable = "We're unable to reach the map service right now. Please try again in a few minutes."
	MsgRateLimited        = "Too many map requests. Please wait a moment and try again."
	MsgInvalidParameters  = "The provided parameters are invalid. Please check your input and try again."
	MsgInternalError      = "Something went wrong on our end. Please try again later."
)
