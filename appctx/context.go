package appctx

import (
	"context"
)

// Context key for storing relay metadata
type contextKey string

const RelayIDContextKey contextKey = "relay_id"

// SetRelayID adds the relay correlation ID to the context
func SetRelayID(ctx context.Context, relayID string) context.Context {
	return context.WithValue(ctx, RelayIDContextKey, relayID)
}

// GetRelayID extracts the relay correlation ID from the context
func GetRelayID(ctx context.Context) (string, bool) {
	relayID, ok := ctx.Value(RelayIDContextKey).(string)
	return relayID, ok
}
