package errors

import (
	stderrors "errors"
	"net/http"

	"is-map-gateway/pkg/maps"
)

// MapError converts a technical error into a user-friendly AppError.
func MapError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}

	technicalMessage := err.Error()

	var decodeErr *maps.DecodeError
	if stderrors.As(err, &decodeErr) {
		// the backend answered, but not with JSON
		return NewAppError(technicalMessage, MsgBadGateway, ErrCodeBadGateway, http.StatusBadGateway, err)
	}

	var httpErr *maps.HTTPError
	if !stderrors.As(err, &httpErr) {
		// the backend never answered
		return NewAppError(technicalMessage, MsgServiceUnavailable, ErrCodeServiceUnavailable, http.StatusServiceUnavailable, err)
	}

	switch status := httpErr.StatusCode; {
	case status == http.StatusUnauthorized:
		return NewAppError(technicalMessage, MsgUnauthorized, ErrCodeUnauthorized, status, err)
	case status == http.StatusForbidden:
		return NewAppError(technicalMessage, MsgForbidden, ErrCodeForbidden, status, err)
	case status == http.StatusNotFound:
		return NewAppError(technicalMessage, MsgNotFound, ErrCodeNotFound, status, err)
	case status >= 400 && status < 500:
		return NewAppError(technicalMessage, MsgUpstreamRejected, ErrCodeUpstreamRejected, status, err)
	default:
		return NewAppError(technicalMessage, MsgBadGateway, ErrCodeBadGateway, http.StatusBadGateway, err)
	}
}

// InvalidParameter reports a missing or malformed request parameter.
func InvalidParameter(technicalMessage string) *AppError {
	return NewAppError(technicalMessage, MsgInvalidParameters, ErrCodeInvalidParameters, http.StatusBadRequest, stderrors.New(technicalMessage))
}
