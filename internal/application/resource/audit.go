package resource

import (
	"context"
)

// Audit actions recorded for mutations.
const (
	ActionCreate = "CREATE"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
)

// AuditEvent describes one successful mutation of an audited resource.
// Old and New hold the serialized entity before and after the change.
type AuditEvent struct {
	Action     string
	EntityType string
	EntityID   string
	Old        any
	New        any
	Actor      Actor
}

// Auditor persists audit events.
type Auditor interface {
	Record(ctx context.Context, event AuditEvent) error
}

// Observer is notified after every successful write, audited or not.
type Observer interface {
	ResourceWritten(ctx context.Context, def Definition, action string)
}

// Actor identifies who issued a request.
type Actor struct {
	User string
	IP   string
}

// SystemUser is the actor recorded when a request names no user.
const SystemUser = "system"

type actorKey struct{}

// WithActor stores the actor in ctx.
func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFrom returns the actor stored in ctx, or the system actor.
func ActorFrom(ctx context.Context) Actor {
	if actor, ok := ctx.Value(actorKey{}).(Actor); ok && actor.User != "" {
		return actor
	}
	actor, _ := ctx.Value(actorKey{}).(Actor)
	actor.User = SystemUser
	return actor
}
