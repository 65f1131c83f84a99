// Package theme holds the persisted UI theme preference.
package theme

import (
	"fmt"

	"github.com/jrsteele09/go-contest-portal/internal/errors"
)

// Variant is the dark-mode accent colour
type Variant string

const (
	Purple Variant = "purple"
	Blue   Variant = "blue"
)

// Default is used on first load and in place of any unknown stored value
const Default = Purple

func (v Variant) Valid() bool {
	return v == Purple || v == Blue
}

// Parse validates a variant name
func Parse(s string) (Variant, error) {
	v := Variant(s)
	if !v.Valid() {
		return "", fmt.Errorf("%q: %w", s, errors.ErrInvalidVariant)
	}
	return v, nil
}

// State is the pure preference value. Set and Toggle return new states.
type State struct {
	DarkVariant Variant `json:"darkVariant"`
}

func (s State) Set(v Variant) State {
	return State{DarkVariant: v}
}

// Toggle flips purple to blue and anything else to purple
func (s State) Toggle() State {
	if s.DarkVariant == Purple {
		return State{DarkVariant: Blue}
	}
	return State{DarkVariant: Purple}
}

// normalize replaces unknown variants with the default
func (s State) normalize() State {
	if !s.DarkVariant.Valid() {
		return State{DarkVariant: Default}
	}
	return s
}
