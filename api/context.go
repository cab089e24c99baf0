package api

import (
	"context"
)

type keyType string

const usernameKey keyType = "username"

// ctxWithUsername adds the authenticated admin username to the context
func ctxWithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey, username)
}
