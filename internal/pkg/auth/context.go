package auth

import "context"

type actorContextKey struct{}

// WithActor returns a context carrying the authenticated actor identity.
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorContextKey{}, actor)
}

// ActorFromContext returns the actor stored in the context, if any. A nil
// result means the change is recorded without attribution.
func ActorFromContext(ctx context.Context) *string {
	if actor, ok := ctx.Value(actorContextKey{}).(string); ok && actor != "" {
		return &actor
	}
	return nil
}
