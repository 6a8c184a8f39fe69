// Package templates renders the dashboard pages. Pages are html/template files embedded in the binary and exposed
// as templ components, so handlers render them the same way regardless of how a page is written.
package templates

import (
	"context"
	"embed"
	"html/template"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/sidereusnuntius/neonprofile/internal/domain"
)

//go:embed *.html
var files embed.FS

var pages = template.Must(template.New("").ParseFS(files, "*.html"))

// Routes the pages post to.
const (
	EditPath    = "/edit"
	ProfilePath = "/profile"
	CancelPath  = "/cancel"
	StatsPath   = "/stats/"
)

type PageData struct {
	PageTitle string
	Profile   domain.Profile
	Stats     domain.Stats
	// Editing selects the edit form instead of the quick actions card. Draft holds the form's values.
	Editing bool
	Draft   domain.Draft
	Flash   string
	Err     error
}

type view struct {
	PageData
	Avatar   template.URL
	Counters []counter
	Paths    map[string]string
}

type counter struct {
	Label string
	Value int
}

// AvatarSrc returns the image source for a profile avatar. Only image data URIs and http(s) URLs are trusted;
// anything else falls back to the default avatar.
func AvatarSrc(avatar string) template.URL {
	switch {
	case strings.HasPrefix(avatar, "data:image/"),
		strings.HasPrefix(avatar, "https://"),
		strings.HasPrefix(avatar, "http://"):
		return template.URL(avatar)
	}
	return template.URL(domain.DefaultAvatar)
}

func Layout(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return pages.ExecuteTemplate(w, "layout.html", view{
			PageData: data,
			Avatar:   AvatarSrc(data.Profile.Avatar),
			Counters: []counter{
				{"Followers", data.Stats.Followers},
				{"Projects", data.Stats.Projects},
				{"Likes", data.Stats.Likes},
			},
			Paths: map[string]string{
				"edit":      EditPath,
				"profile":   ProfilePath,
				"cancel":    CancelPath,
				"followers": StatsPath + string(domain.Followers),
				"projects":  StatsPath + string(domain.Projects),
			},
		})
	})
}
