package auth

import (
	"context"

	"backoffice-cms/internal/service/authz"
)

type ctxKey string

const ctxActor ctxKey = "actor"

// WithActor returns a copy of ctx carrying the authenticated actor.
func WithActor(ctx context.Context, actor authz.Actor) context.Context {
	return context.WithValue(ctx, ctxActor, actor)
}

// ActorFromContext extracts the authenticated actor from the request context.
// The second return value is false when the request did not pass the
// authentication middleware.
func ActorFromContext(ctx context.Context) (authz.Actor, bool) {
	actor, ok := ctx.Value(ctxActor).(authz.Actor)
	return actor, ok
}
