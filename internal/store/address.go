package store

import "encoding/json"

// Address is the tagged variant for the enterprise address field. Callers
// supply either a raw free-text address or a structured one; both resolve to
// a single string property at the persistence boundary, so downstream code
// never inspects the variant.
type Address interface {
	// Resolve returns the string persisted on the graph node.
	Resolve() string
}

// RawAddress is a free-text address string.
type RawAddress string

// Resolve returns the raw string unchanged.
func (a RawAddress) Resolve() string {
	return string(a)
}

// StructuredAddress is an address broken into fields, as produced by
// registration document parsing.
type StructuredAddress struct {
	Flat     string `json:"flat,omitempty"`
	Building string `json:"building,omitempty"`
	Road     string `json:"road,omitempty"`
	Village  string `json:"village,omitempty"`
	Block    string `json:"block,omitempty"`
	City     string `json:"city,omitempty"`
	District string `json:"district,omitempty"`
	State    string `json:"state,omitempty"`
	Pin      string `json:"pin,omitempty"`
}

// Resolve serializes the structured fields to a JSON string for storage.
func (a StructuredAddress) Resolve() string {
	data, err := json.Marshal(a)
	if err != nil {
		return ""
	}
	return string(data)
}

// resolveAddress returns the stored representation of an address, or nil for
// a nil address so the property is omitted on the node.
func resolveAddress(a Address) any {
	if a == nil {
		return nil
	}
	return a.Resolve()
}
