package diff

import (
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/sidereusnuntius/neonprofile/internal/domain"
)

var dmp *diffmatchpatch.DiffMatchPatch

func init() {
	dmp = diffmatchpatch.New()
}

func FindPatches(text1, text2 string) string {
	diffs := dmp.DiffMain(text1, text2, false)
	return dmp.PatchToText(dmp.PatchMake(text1, diffs))
}

// Profile returns, for every field that differs between prev and next, the patch turning the old value into the
// new one. Unchanged fields are omitted; the avatar is reported without its content since data URIs are long.
func Profile(prev, next domain.Profile) map[string]string {
	changes := map[string]string{}
	fields := []struct {
		name       string
		prev, next string
	}{
		{"name", prev.Name, next.Name},
		{"title", prev.Title, next.Title},
		{"bio", prev.Bio, next.Bio},
		{"email", prev.Email, next.Email},
		{"location", prev.Location, next.Location},
	}

	for _, f := range fields {
		if f.prev != f.next {
			changes[f.name] = FindPatches(f.prev, f.next)
		}
	}
	if prev.Avatar != next.Avatar {
		changes["avatar"] = "changed"
	}
	return changes
}
