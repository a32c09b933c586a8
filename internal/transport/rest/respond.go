package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/pantry-backend/internal/domain"
	"github.com/heartmarshall/pantry-backend/internal/notify"
	"github.com/heartmarshall/pantry-backend/pkg/ctxutil"
)

const maxBodyBytes = 1 << 20

type fieldErrorBody struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type errorBody struct {
	Error        string               `json:"error"`
	Fields       []fieldErrorBody     `json:"fields,omitempty"`
	RequestID    string               `json:"requestId,omitempty"`
	Notification *notify.Notification `json:"notification,omitempty"`
}

type mutationBody struct {
	Data         any                 `json:"data,omitempty"`
	Notification notify.Notification `json:"notification"`
}

// responder writes JSON responses and turns service errors into HTTP errors.
// Mutations also go through the notification dispatcher.
type responder struct {
	log      *slog.Logger
	notifier notify.Dispatcher
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, status, errorBody{
		Error:     message,
		RequestID: ctxutil.RequestIDFromCtx(r.Context()),
	})
}

// statusFor maps a service error to an HTTP status and a client-safe message.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, "validation failed"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusConflict, "already exists"
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, "conflict"
	case errors.Is(err, domain.ErrDivisionByZero):
		return http.StatusUnprocessableEntity, "previous price is zero"
	case errors.Is(err, domain.ErrUpstream):
		return http.StatusBadGateway, "storage unavailable"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func (rs *responder) errorBody(r *http.Request, err error) (int, errorBody) {
	status, msg := statusFor(err)
	body := errorBody{
		Error:     msg,
		RequestID: ctxutil.RequestIDFromCtx(r.Context()),
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		body.Fields = make([]fieldErrorBody, 0, len(ve.Errors))
		for _, fe := range ve.Errors {
			body.Fields = append(body.Fields, fieldErrorBody{Field: fe.Field, Message: fe.Message})
		}
	}

	if status >= http.StatusInternalServerError {
		rs.log.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
	}
	return status, body
}

// fail writes the error envelope for a read request.
func (rs *responder) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, context.Canceled) {
		return
	}
	status, body := rs.errorBody(r, err)
	writeJSON(w, status, body)
}

// respondMutation writes the result of a state-changing call together with
// the notification shown to the user.
func respondMutation[T any](rs *responder, w http.ResponseWriter, r *http.Request, status int, res notify.Result[T], m notify.Messages, present func(T) any) {
	n := notify.Notify(res, m)
	rs.notifier.Dispatch(r.Context(), n)

	if !res.Succeeded() {
		if errors.Is(res.Err, context.Canceled) {
			return
		}
		code, body := rs.errorBody(r, res.Err)
		body.Notification = &n
		writeJSON(w, code, body)
		return
	}

	var data any
	if present != nil {
		data = present(res.Value)
	}
	writeJSON(w, status, mutationBody{Data: data, Notification: n})
}

// decodeJSON reads the request body into v. It writes a 400 and returns false
// when the body is not valid JSON.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// pathID parses a UUID path value. It writes a 400 and returns false when the
// value is malformed.
func pathID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
