package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ElementKind discriminates plain elements from catalysts.
type ElementKind string

// Element kinds.
const (
	KindPlain    ElementKind = "plain"
	KindCatalyst ElementKind = "catalyst"
)

// catalystSeparator splits a catalyst's name from its uses in ParseElement.
const catalystSeparator = "@"

// Element errors.
var (
	ErrTypeMismatch = errors.New("type mismatch: not an element")
	ErrInvalidUses  = errors.New("catalyst uses must not be negative")
)

// Element is one unit of alchemical matter. A plain element carries only a
// name. A catalyst additionally carries the number of reactions it can still
// take part in; Uses is ignored for plain elements.
//
// Elements are compared by Name only. Vessels take ownership of the pointer
// on Add and hand it back on Pop or Extract.
type Element struct {
	Kind ElementKind `json:"kind" yaml:"kind"`
	Name string      `json:"name" yaml:"name"`
	Uses int         `json:"uses,omitempty" yaml:"uses,omitempty"`
}

// NewElement returns a plain element.
func NewElement(name string) *Element {
	return &Element{Kind: KindPlain, Name: name}
}

// NewCatalyst returns a catalyst with the given remaining uses.
// A negative count yields an element that Validate rejects.
func NewCatalyst(name string, uses int) *Element {
	return &Element{Kind: KindCatalyst, Name: name, Uses: uses}
}

// elementWire is the encoded form of an Element. Uses is present for every
// catalyst, spent ones included, and absent for plain elements.
type elementWire struct {
	Kind ElementKind `json:"kind" yaml:"kind"`
	Name string      `json:"name" yaml:"name"`
	Uses *int        `json:"uses,omitempty" yaml:"uses,omitempty"`
}

func (e Element) wire() elementWire {
	w := elementWire{Kind: e.Kind, Name: e.Name}
	if e.Kind == KindCatalyst {
		uses := e.Uses
		w.Uses = &uses
	}
	return w
}

// MarshalJSON implements json.Marshaler.
func (e Element) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.wire())
}

// MarshalYAML implements yaml.Marshaler.
func (e Element) MarshalYAML() (any, error) {
	return e.wire(), nil
}

// IsCatalyst reports whether e is a catalyst.
func (e *Element) IsCatalyst() bool {
	return e != nil && e.Kind == KindCatalyst
}

// Inert reports whether e is a catalyst with no uses left. Inert catalysts
// stay in storage but never take part in a reaction.
func (e *Element) Inert() bool {
	return e.IsCatalyst() && e.Uses == 0
}

// Validate returns ErrTypeMismatch if e is nil, has an unknown kind, or is a
// catalyst with a negative use count.
func (e *Element) Validate() error {
	if e == nil {
		return ErrTypeMismatch
	}
	switch e.Kind {
	case KindPlain:
		return nil
	case KindCatalyst:
		if e.Uses < 0 {
			return fmt.Errorf("%w: %w", ErrTypeMismatch, ErrInvalidUses)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrTypeMismatch, e.Kind)
	}
}

// String renders a plain element as "<AE: name>" and a catalyst as
// "<C: name (uses)>".
func (e *Element) String() string {
	if e == nil {
		return "<nil>"
	}
	if e.Kind == KindCatalyst {
		return fmt.Sprintf("<C: %s (%d)>", e.Name, e.Uses)
	}
	return fmt.Sprintf("<AE: %s>", e.Name)
}

// ParseElement parses the command-line form of an element. "Water" is a
// plain element; "Philosophers' stone@3" is a catalyst with 3 uses. When the
// text after the last "@" is not an integer the whole string is the name.
func ParseElement(s string) (*Element, error) {
	i := strings.LastIndex(s, catalystSeparator)
	if i < 0 {
		return NewElement(s), nil
	}
	uses, err := strconv.Atoi(s[i+1:])
	if err != nil {
		return NewElement(s), nil
	}
	if uses < 0 {
		return nil, fmt.Errorf("parse %q: %w", s, ErrInvalidUses)
	}
	return NewCatalyst(s[:i], uses), nil
}

// ElementNames returns the names of elems in order.
func ElementNames(elems []*Element) []string {
	names := make([]string, len(elems))
	for i, e := range elems {
		names[i] = e.Name
	}
	return names
}
