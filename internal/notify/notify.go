// Package notify turns operation outcomes into the Italian notifications shown
// to the operator, and into HTTP status codes for the console.
package notify

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"

	"basketball-league-admin/internal/apiclient"
	"basketball-league-admin/internal/livegame"
	"basketball-league-admin/internal/validation"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

type Notification struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

func Success(key string, args ...any) Notification {
	return Notification{Level: LevelSuccess, Message: Text(key, args...)}
}

func Failure(key string, args ...any) Notification {
	return Notification{Level: LevelError, Message: Text(key, args...)}
}

var sentinelKeys = []struct {
	err error
	key string
}{
	{livegame.ErrNoPlayerSelected, KeyNoPlayer},
	{livegame.ErrNothingToUndo, KeyNothingToUndo},
	{livegame.ErrBusy, KeyBusy},
	{livegame.ErrUnknownAction, KeyUnknownAction},
	{livegame.ErrUnknownTeam, KeyUnknownTeam},
	{livegame.ErrWrongTeam, KeyWrongTeam},
	{livegame.ErrSessionNotFound, KeySessionNotFound},
}

// FromError maps an error to its static notification. nil maps to an empty info.
func FromError(err error) Notification {
	if err == nil {
		return Notification{Level: LevelInfo}
	}
	return Notification{Level: LevelError, Message: messageFor(err)}
}

func messageFor(err error) string {
	for _, s := range sentinelKeys {
		if errors.Is(err, s.err) {
			return Text(s.key)
		}
	}

	var formErrs validation.Errors
	if errors.As(err, &formErrs) {
		field, msg := formErrs.First()
		return Text(KeyValidationField, field, msg)
	}

	var apiErr *apiclient.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden:
			return Text(KeyUnauthorized)
		case apiErr.StatusCode == http.StatusNotFound:
			return Text(KeyNotFound)
		case apiErr.StatusCode == http.StatusUnprocessableEntity:
			if field, msg := apiErr.FirstField(); field != "" {
				return Text(KeyValidationField, field, msg)
			}
			return Text(KeyValidation)
		case apiErr.StatusCode >= 500:
			return Text(KeyServer)
		default:
			return Text(KeyGeneric)
		}
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return Text(KeyTimeout)
	}
	if IsNetworkError(err) {
		return Text(KeyOffline)
	}
	return Text(KeyGeneric)
}

// IsNetworkError reports transport failures: the backend was never reached
// or the connection broke before a response.
func IsNetworkError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}

// HTTPStatus is the status the console answers with for err.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, livegame.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, livegame.ErrBusy), errors.Is(err, livegame.ErrNothingToUndo):
		return http.StatusConflict
	case errors.Is(err, livegame.ErrNoPlayerSelected),
		errors.Is(err, livegame.ErrUnknownAction),
		errors.Is(err, livegame.ErrUnknownTeam),
		errors.Is(err, livegame.ErrWrongTeam):
		return http.StatusBadRequest
	}

	var formErrs validation.Errors
	if errors.As(err, &formErrs) {
		return http.StatusUnprocessableEntity
	}

	var apiErr *apiclient.Error
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode >= 500 {
			return http.StatusBadGateway
		}
		return apiErr.StatusCode
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}
	if IsNetworkError(err) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
