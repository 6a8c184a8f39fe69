package domain

// Profile is the canonical profile record. The JSON encoding is the payload stored under the "profile" key, so
// field names and order must not change.
type Profile struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Bio      string `json:"bio"`
	Email    string `json:"email"`
	Location string `json:"location"`
	// Avatar is an image URI. When empty, views fall back to DefaultAvatar.
	Avatar string `json:"avatar,omitempty"`
}

// ProfilePatch holds the fields to be replaced in a Profile. A nil field keeps the existing value.
type ProfilePatch struct {
	Name     *string `json:"name,omitempty"`
	Title    *string `json:"title,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	Email    *string `json:"email,omitempty"`
	Location *string `json:"location,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
}

// Draft is an uncommitted copy of the user editable fields of a Profile. The avatar is not editable.
type Draft struct {
	Name     string
	Title    string
	Bio      string
	Email    string
	Location string
}

func DefaultProfile() Profile {
	return Profile{
		Name:     "Amar Soni",
		Title:    "CSE Student & Developer",
		Bio:      "Second-year CSE student exploring web, game dev, and cybersecurity. Love building small, beautiful UIs.",
		Email:    "amar@example.com",
		Location: "India",
		Avatar:   DefaultAvatar,
	}
}

// DraftOf copies the editable fields of p.
func DraftOf(p Profile) Draft {
	return Draft{
		Name:     p.Name,
		Title:    p.Title,
		Bio:      p.Bio,
		Email:    p.Email,
		Location: p.Location,
	}
}

// Patch returns a patch that sets every editable field to the draft's value.
func (d Draft) Patch() ProfilePatch {
	return ProfilePatch{
		Name:     &d.Name,
		Title:    &d.Title,
		Bio:      &d.Bio,
		Email:    &d.Email,
		Location: &d.Location,
	}
}

// Apply returns a copy of p with every non-nil field of the patch written over it.
func (patch ProfilePatch) Apply(p Profile) Profile {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&p.Name, patch.Name)
	set(&p.Title, patch.Title)
	set(&p.Bio, patch.Bio)
	set(&p.Email, patch.Email)
	set(&p.Location, patch.Location)
	set(&p.Avatar, patch.Avatar)
	return p
}
