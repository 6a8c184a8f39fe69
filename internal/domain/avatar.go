package domain

import (
	"fmt"
	"strings"
	"unicode"
)

const avatarTemplate = "<svg xmlns='http://www.w3.org/2000/svg' width='320' height='320' viewBox='0 0 320 320'>" +
	"<defs><linearGradient id='g' x1='0' x2='1'><stop offset='0' stop-color='#00ffff'/><stop offset='1' stop-color='#9b5de5'/></linearGradient></defs>" +
	"<rect width='100%%' height='100%%' rx='30' fill='url(#g)'/>" +
	"<text x='50%%' y='58%%' font-family='Poppins, sans-serif' font-weight='700' font-size='96' fill='white' text-anchor='middle' alignment-baseline='middle'>%s</text>" +
	"</svg>"

// DefaultAvatarSVG is the placeholder image used when a profile has no avatar.
var DefaultAvatarSVG = AvatarSVG("AS")

// DefaultAvatar is DefaultAvatarSVG as a data URI.
var DefaultAvatar = AvatarURI("AS")

// AvatarSVG renders the gradient placeholder with the given initials.
func AvatarSVG(initials string) string {
	var b strings.Builder
	for _, r := range initials {
		switch r {
		case '<', '>', '&', '\'', '"':
			continue
		}
		b.WriteRune(r)
	}
	return fmt.Sprintf(avatarTemplate, b.String())
}

// AvatarURI returns the placeholder as a data URI. Only '#' needs escaping for the utf8 form.
func AvatarURI(initials string) string {
	return "data:image/svg+xml;utf8," + strings.ReplaceAll(AvatarSVG(initials), "#", "%23")
}

// Initials takes the first letter of the first two words of name, upper cased.
func Initials(name string) string {
	var out []rune
	for _, w := range strings.Fields(name) {
		for _, r := range w {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				out = append(out, unicode.ToUpper(r))
				break
			}
		}
		if len(out) == 2 {
			break
		}
	}
	return string(out)
}
