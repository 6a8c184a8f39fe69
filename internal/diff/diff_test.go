package diff

import (
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/sidereusnuntius/neonprofile/internal/domain"
)

func TestProfile(t *testing.T) {
	prev := domain.Profile{Name: "A", Title: "T", Bio: "B", Email: "e", Location: "L"}
	next := prev
	next.Name = "Amar Soni"
	next.Avatar = "https://example.com/a.png"

	changes := Profile(prev, next)
	if len(changes) != 2 {
		t.Fatalf("expected 2 changed fields, got %d: %v", len(changes), changes)
	}
	if changes["avatar"] != "changed" {
		t.Errorf("expected avatar to be reported as changed, got %q", changes["avatar"])
	}

	dmp := diffmatchpatch.New()
	patches, err := dmp.PatchFromText(changes["name"])
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	got, applied := dmp.PatchApply(patches, prev.Name)
	for i, ok := range applied {
		if !ok {
			t.Errorf("patch %d was not applied", i)
		}
	}
	if got != next.Name {
		t.Errorf("expected patched name %q, got %q", next.Name, got)
	}
}

func TestProfileUnchanged(t *testing.T) {
	p := domain.DefaultProfile()
	if changes := Profile(p, p); len(changes) != 0 {
		t.Errorf("expected no changes, got %v", changes)
	}
}
