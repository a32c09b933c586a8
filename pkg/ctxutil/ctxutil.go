package ctxutil

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type ctxKey string

const (
	userIDKey     ctxKey = "user_id"
	requestIDKey  ctxKey = "request_id"
	userHolderKey ctxKey = "user_holder"
	clientIPKey   ctxKey = "client_ip"
)

// WithUserID stores the user ID in the context.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx extracts the user ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// UserHolder lets an inner handler report the authenticated user to an outer
// one, which only sees its own request context.
type UserHolder struct {
	mu sync.Mutex
	id uuid.UUID
}

// Set records the user id.
func (h *UserHolder) Set(id uuid.UUID) {
	h.mu.Lock()
	h.id = id
	h.mu.Unlock()
}

// Get returns the recorded user id, if any.
func (h *UserHolder) Get() (uuid.UUID, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.id, h.id != uuid.Nil
}

// WithUserHolder stores h in the context.
func WithUserHolder(ctx context.Context, h *UserHolder) context.Context {
	return context.WithValue(ctx, userHolderKey, h)
}

// UserHolderFromCtx returns the holder stored in ctx or nil.
func UserHolderFromCtx(ctx context.Context) *UserHolder {
	h, _ := ctx.Value(userHolderKey).(*UserHolder)
	return h
}

// WithClientIP stores the resolved client address in the context.
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey, ip)
}

// ClientIPFromCtx returns the client address or an empty string.
func ClientIPFromCtx(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey).(string)
	return ip
}
