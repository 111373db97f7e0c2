package types

import "errors"

// Vessel kinds, used by sessions and the CLI to pick an add policy.
const (
	VesselStorage  = "storage"
	VesselCauldron = "cauldron"
	VesselPurifier = "purifier"
)

// VesselKinds lists all vessel kinds for enumeration.
var VesselKinds = []string{
	VesselStorage,
	VesselCauldron,
	VesselPurifier,
}

// Vessel is an insertion-ordered multiset of elements. What happens on Add
// depends on the vessel kind: plain storage appends, a cauldron fuses the
// element with stored matter, a purifier splits it into its components.
type Vessel interface {
	// Kind returns one of the Vessel constants.
	Kind() string

	// Add hands e to the vessel. Returns ErrTypeMismatch if e is not a
	// valid element; the vessel is unchanged in that case.
	Add(e *Element) error

	// Pop removes and returns the most recently added element named name.
	Pop(name string) (*Element, bool)

	// Extract removes and returns all elements in insertion order.
	Extract() []*Element

	// Contents returns the elements in insertion order without removing them.
	Contents() []*Element

	// Len returns the number of stored elements.
	Len() int

	// Summarize renders the contents grouped by name, alphabetically.
	Summarize() string
}

// ErrUnknownVessel is returned when a vessel kind is not one of VesselKinds.
var ErrUnknownVessel = errors.New("unknown vessel kind")
