package policy

import (
	"context"
	"errors"
)

// Action describes the kind of operation a user wants to perform.
type Action string

const (
	ActionView   Action = "view"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionList   Action = "list"
)

var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrNoPolicyDefined = errors.New("no policy defined for resource type")
)

// Ownable is implemented by models that belong to a single account.
type Ownable interface {
	GetUserID() string
}

// Policy defines authorization rules for a resource type.
type Policy interface {
	// Can returns true if user may perform action on resource.
	// For list/create, resource may be nil (context-only check).
	Can(ctx context.Context, userID string, action Action, resource any) bool
}

// OwnershipPolicy grants access when the user owns the resource.
type OwnershipPolicy struct{}

func NewOwnershipPolicy() *OwnershipPolicy { return &OwnershipPolicy{} }

func (p *OwnershipPolicy) Can(_ context.Context, userID string, _ Action, resource any) bool {
	if resource == nil {
		// list/create: no specific resource to check
		return true
	}
	ownable, ok := resource.(Ownable)
	if !ok {
		// deny resources without ownership info rather than leak them
		return false
	}
	return ownable.GetUserID() == userID
}

// Gate is the central authorization checkpoint: policies are registered per
// resource type, handlers call Authorize before touching a resource.
type Gate struct {
	policies map[string]Policy
}

func NewGate() *Gate { return &Gate{policies: make(map[string]Policy)} }

func (g *Gate) Register(resourceType string, p Policy) {
	g.policies[resourceType] = p
}

func (g *Gate) Authorize(ctx context.Context, userID string, action Action, resourceType string, resource any) error {
	if userID == "" {
		return ErrUnauthorized
	}
	p, ok := g.policies[resourceType]
	if !ok {
		return ErrNoPolicyDefined
	}
	if !p.Can(ctx, userID, action, resource) {
		return ErrUnauthorized
	}
	return nil
}

func (g *Gate) Can(ctx context.Context, userID string, action Action, resourceType string, resource any) bool {
	return g.Authorize(ctx, userID, action, resourceType, resource) == nil
}
