package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/citizenlabsgr/elections-api/lib/scrapers/mvic"
)

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// errorResponse decides what a failed lookup looks like to the caller.
func errorResponse(err error) (int, errorBody) {
	body := errorBody{Message: err.Error()}

	var status int
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		status = http.StatusGatewayTimeout
		body.Error = "timeout"
	case errors.Is(err, mvic.ErrMalformedForm):
		status = http.StatusBadGateway
		body.Error = "malformed_form"
	case errors.Is(err, mvic.ErrPortalUnavailable):
		status = http.StatusServiceUnavailable
		body.Error = "portal_unavailable"
	case errors.Is(err, mvic.ErrTransport):
		status = http.StatusBadGateway
		body.Error = "portal_unreachable"
	default:
		status = http.StatusInternalServerError
		body.Error = "internal"
	}
	return status, body
}
