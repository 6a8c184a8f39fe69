// Package editor reconciles an in-progress edit of the profile with the canonical record.
//
// An Editor starts in Viewing mode. Edit copies the editable fields of the current profile into a draft and
// switches to Editing; Save commits the draft through the profile store and Cancel discards it. The draft
// itself is never written to storage.
package editor

import (
	"context"
	"errors"

	"github.com/sidereusnuntius/neonprofile/internal/domain"
)

var ErrNotEditing = errors.New("no edit in progress")

type Mode int

const (
	Viewing Mode = iota
	Editing
)

func (m Mode) String() string {
	if m == Editing {
		return "editing"
	}
	return "viewing"
}

// Profiles is the part of the profile store an Editor needs.
type Profiles interface {
	Current() domain.Profile
	Save(ctx context.Context, patch domain.ProfilePatch) (domain.Profile, error)
}

type Editor struct {
	profiles Profiles
	mode     Mode
	draft    domain.Draft
}

func New(profiles Profiles) *Editor {
	return &Editor{profiles: profiles}
}

func (e *Editor) Mode() Mode {
	return e.mode
}

// Edit starts an edit from the current profile and returns the draft. If an edit is already in progress its
// draft is kept and returned.
func (e *Editor) Edit() domain.Draft {
	if e.mode == Viewing {
		e.draft = domain.DraftOf(e.profiles.Current())
		e.mode = Editing
	}
	return e.draft
}

// Draft returns the draft being edited; ok is false in Viewing mode.
func (e *Editor) Draft() (d domain.Draft, ok bool) {
	return e.draft, e.mode == Editing
}

// Update replaces the draft.
func (e *Editor) Update(d domain.Draft) error {
	if e.mode != Editing {
		return ErrNotEditing
	}
	e.draft = d
	return nil
}

// Save merges the draft into the profile and returns to Viewing. The draft is discarded even when persisting
// the merged profile fails, since the in-memory profile already holds it.
func (e *Editor) Save(ctx context.Context) (domain.Profile, error) {
	if e.mode != Editing {
		return domain.Profile{}, ErrNotEditing
	}
	patch := e.draft.Patch()
	e.reset()
	return e.profiles.Save(ctx, patch)
}

// Cancel discards the draft and returns to Viewing. The profile is never touched.
func (e *Editor) Cancel() {
	e.reset()
}

func (e *Editor) reset() {
	e.mode = Viewing
	e.draft = domain.Draft{}
}
