package policy

import (
	"context"
	"testing"
)

type ownedThing struct{ userID string }

func (o ownedThing) GetUserID() string { return o.userID }

func TestOwnershipPolicy(t *testing.T) {
	p := NewOwnershipPolicy()
	ctx := context.Background()

	if !p.Can(ctx, "u1", ActionView, ownedThing{userID: "u1"}) {
		t.Fatalf("owner should be allowed")
	}
	if p.Can(ctx, "u2", ActionView, ownedThing{userID: "u1"}) {
		t.Fatalf("non-owner should be denied")
	}
	if !p.Can(ctx, "u1", ActionList, nil) {
		t.Fatalf("nil resource (list/create) should be allowed")
	}
	if p.Can(ctx, "u1", ActionView, "not ownable") {
		t.Fatalf("non-Ownable resource should be denied")
	}
}

func TestGateAuthorize(t *testing.T) {
	g := NewGate()
	g.Register("quittance", NewOwnershipPolicy())
	ctx := context.Background()

	if err := g.Authorize(ctx, "u1", ActionView, "quittance", ownedThing{userID: "u1"}); err != nil {
		t.Fatalf("expected authorized, got %v", err)
	}
	if err := g.Authorize(ctx, "u2", ActionView, "quittance", ownedThing{userID: "u1"}); err != ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if err := g.Authorize(ctx, "", ActionView, "quittance", nil); err != ErrUnauthorized {
		t.Fatalf("empty user should be unauthorized, got %v", err)
	}
	if err := g.Authorize(ctx, "u1", ActionView, "bailleur", nil); err != ErrNoPolicyDefined {
		t.Fatalf("expected ErrNoPolicyDefined, got %v", err)
	}
}
