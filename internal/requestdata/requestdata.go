package requestdata

import (
	"context"
)

var identityKey = struct{}{}

// Identity is the resolved caller attached to a request context by the
// auth middleware after token verification. It is request-scoped and
// never shared across requests.
type Identity struct {
	UserID string
	Name   string
	Email  string
}

func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

func GetIdentity(ctx context.Context) *Identity {
	val := ctx.Value(identityKey)
	if id, ok := val.(*Identity); ok {
		return id
	}
	return nil
}
