package http

import (
	"context"
	"errors"
)

type contextKey string

const userIDKey contextKey = "user-id"

var errNoCaller = errors.New("no authenticated user in request context")

// WithCallerID stores the authenticated user's id on the request context.
func WithCallerID(ctx context.Context, userID int32) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// CallerID extracts the authenticated user's id set by the auth middleware.
func CallerID(ctx context.Context) (int32, error) {
	id, ok := ctx.Value(userIDKey).(int32)
	if !ok {
		return 0, errNoCaller
	}
	return id, nil
}
