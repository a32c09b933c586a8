// Package notify turns operation outcomes into user-visible notifications.
//
// Services return plain (value, error) pairs. The transport wraps them in a
// Result, builds a Notification from it and hands that to a Dispatcher.
package notify

import (
	"context"
	"errors"
	"log/slog"

	"github.com/heartmarshall/pantry-backend/internal/domain"
)

// Kind classifies a notification.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Notification is a short message for the user, shown as a toast by clients.
type Notification struct {
	Kind        Kind   `json:"kind"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// Result is the outcome of one operation: either a value or an error.
type Result[T any] struct {
	Value T
	Err   error
}

// OK wraps a successful value.
func OK[T any](v T) Result[T] { return Result[T]{Value: v} }

// Fail wraps an error.
func Fail[T any](err error) Result[T] { return Result[T]{Err: err} }

// From builds a Result from a (value, error) pair.
func From[T any](v T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return OK(v)
}

// Succeeded reports whether the operation produced a value.
func (r Result[T]) Succeeded() bool { return r.Err == nil }

// Messages are the titles used for one operation.
type Messages struct {
	Success string
	Failure string
}

// Notify builds the notification for r. Failures carry a description of the
// error that is safe to show to the user.
func Notify[T any](r Result[T], m Messages) Notification {
	if r.Succeeded() {
		return Notification{Kind: KindSuccess, Title: m.Success}
	}
	return Notification{Kind: KindError, Title: m.Failure, Description: Describe(r.Err)}
}

// Describe returns a user-facing reason for err. Internal details of
// unexpected errors are never exposed.
func Describe(err error) string {
	var ve *domain.ValidationError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &ve):
		if len(ve.Errors) == 1 {
			return ve.Errors[0].Field + ": " + ve.Errors[0].Message
		}
		return "Some fields are invalid"
	case errors.Is(err, domain.ErrNotFound):
		return "It no longer exists"
	case errors.Is(err, domain.ErrAlreadyExists):
		return "It already exists"
	case errors.Is(err, domain.ErrUnauthorized):
		return "Please sign in again"
	case errors.Is(err, domain.ErrConflict):
		return "It was changed by someone else"
	case errors.Is(err, domain.ErrDivisionByZero):
		return "The change cannot be computed"
	case errors.Is(err, domain.ErrUpstream):
		return "The storage service is unavailable, try again later"
	default:
		return "Something went wrong"
	}
}

// Dispatcher delivers notifications.
type Dispatcher interface {
	Dispatch(ctx context.Context, n Notification)
}

// LogDispatcher writes notifications to a structured logger. Errors are
// logged at Warn, successes at Debug.
type LogDispatcher struct {
	log *slog.Logger
}

// NewLogDispatcher creates a LogDispatcher.
func NewLogDispatcher(logger *slog.Logger) *LogDispatcher {
	return &LogDispatcher{log: logger.With("component", "notify")}
}

func (d *LogDispatcher) Dispatch(ctx context.Context, n Notification) {
	level := slog.LevelDebug
	if n.Kind == KindError {
		level = slog.LevelWarn
	}
	d.log.Log(ctx, level, "notification",
		slog.String("kind", string(n.Kind)),
		slog.String("title", n.Title),
		slog.String("description", n.Description),
	)
}
