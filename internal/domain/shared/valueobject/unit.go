package valueobject

import (
	"encoding/json"
	"errors"
	"strings"
)

// UnitKind classifies units of measurement for raw materials
type UnitKind string

const (
	UnitKindMass   UnitKind = "MASS"
	UnitKindVolume UnitKind = "VOLUME"
	UnitKindCount  UnitKind = "COUNT"
)

// IsValid checks if the kind is a valid UnitKind
func (k UnitKind) IsValid() bool {
	switch k {
	case UnitKindMass, UnitKindVolume, UnitKindCount:
		return true
	}
	return false
}

// String returns the string representation of UnitKind
func (k UnitKind) String() string {
	return string(k)
}

// Unit is a value object representing a unit of measurement.
// It is immutable - all operations return new Unit instances.
type Unit struct {
	code string
	kind UnitKind
}

// Common unit codes for convenience
const (
	UnitCodePCS = "PCS" // Pieces
	UnitCodeKG  = "KG"  // Kilograms
	UnitCodeG   = "G"   // Grams
	UnitCodeL   = "L"   // Liters
	UnitCodeML  = "ML"  // Milliliters
	UnitCodeM   = "M"   // Meters (sold by length, counted as volume of roll stock)
)

// NewUnit creates a new Unit with the specified code and kind.
// The code is normalized to upper case.
func NewUnit(code string, kind UnitKind) (Unit, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if code == "" {
		return Unit{}, errors.New("unit code cannot be empty")
	}
	if len(code) > 20 {
		return Unit{}, errors.New("unit code cannot exceed 20 characters")
	}
	if !kind.IsValid() {
		return Unit{}, errors.New("invalid unit kind")
	}
	return Unit{code: code, kind: kind}, nil
}

// MustNewUnit creates a Unit and panics on error. Intended for fixtures.
func MustNewUnit(code string, kind UnitKind) Unit {
	u, err := NewUnit(code, kind)
	if err != nil {
		panic(err)
	}
	return u
}

// Code returns the unit code
func (u Unit) Code() string {
	return u.code
}

// Kind returns the unit kind
func (u Unit) Kind() UnitKind {
	return u.kind
}

// Equals checks equality with another Unit
func (u Unit) Equals(other Unit) bool {
	return u.code == other.code && u.kind == other.kind
}

// String returns the unit code
func (u Unit) String() string {
	return u.code
}

// unitJSON is the wire shape of a Unit
type unitJSON struct {
	Code string   `json:"code"`
	Kind UnitKind `json:"kind"`
}

// MarshalJSON implements json.Marshaler
func (u Unit) MarshalJSON() ([]byte, error) {
	return json.Marshal(unitJSON{Code: u.code, Kind: u.kind})
}

// UnmarshalJSON implements json.Unmarshaler, validating the decoded unit
func (u *Unit) UnmarshalJSON(data []byte) error {
	var w unitJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	parsed, err := NewUnit(w.Code, w.Kind)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
