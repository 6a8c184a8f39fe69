package service

import (
	"context"
	"errors"

	"github.com/sidereusnuntius/neonprofile/internal/domain"
	"github.com/sidereusnuntius/neonprofile/internal/editor"
)

var (
	ErrInvalidInput = errors.New("invalid")
)

// Service is the set of operations the view layer dispatches user intents to.
type Service interface {
	Profile(ctx context.Context) domain.Profile
	Stats(ctx context.Context) domain.Stats
	// UpdateProfile merges patch into the profile. Fields absent from the patch keep their value.
	UpdateProfile(ctx context.Context, patch domain.ProfilePatch) (domain.Profile, error)
	// Increment adds one to the counter with the given name. An unknown name fails with an error wrapping both
	// ErrInvalidInput and domain.ErrInvalidCounterKey.
	Increment(ctx context.Context, counter string) (domain.Stats, error)
	// Editor returns a new editor, in Viewing mode, bound to the profile store.
	Editor() *editor.Editor
}
