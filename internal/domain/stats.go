package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidCounterKey = errors.New("invalid counter key")

// Counter names one of the statistics shown on the dashboard.
type Counter string

const (
	Followers Counter = "followers"
	Projects  Counter = "projects"
	Likes     Counter = "likes"
)

var Counters = []Counter{Followers, Projects, Likes}

// Stats is the payload stored under the "stats" key. Every counter is non-negative.
type Stats struct {
	Followers int `json:"followers"`
	Projects  int `json:"projects"`
	Likes     int `json:"likes"`
}

func DefaultStats() Stats {
	return Stats{
		Followers: 128,
		Projects:  6,
		Likes:     420,
	}
}

// ParseCounter converts a counter name into a Counter, failing with ErrInvalidCounterKey for unknown names.
func ParseCounter(name string) (Counter, error) {
	c := Counter(name)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCounterKey, name)
	}
	return c, nil
}

func (c Counter) Valid() bool {
	switch c {
	case Followers, Projects, Likes:
		return true
	}
	return false
}

// Valid reports whether every counter is non-negative.
func (s Stats) Valid() bool {
	return s.Followers >= 0 && s.Projects >= 0 && s.Likes >= 0
}
