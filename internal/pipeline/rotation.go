package pipeline

import (
	"errors"
	"fmt"
)

// ErrUnknownRotation is returned by ParseRotation for names outside the rotation set.
var ErrUnknownRotation = errors.New("unknown rotation")

// Rotation is a counter-clockwise rotation in quarter turns.
type Rotation int

const (
	RotateNone Rotation = iota
	Rotate90
	Rotate180
	Rotate270
)

var rotationNames = [...]string{
	RotateNone: "NONE",
	Rotate90:   "NINETY_DEG",
	Rotate180:  "ONE_EIGHTY_DEG",
	Rotate270:  "TWO_SEVENTY_DEG",
}

func (r Rotation) String() string {
	if r < 0 || int(r) >= len(rotationNames) {
		return fmt.Sprintf("Rotation(%d)", int(r))
	}
	return rotationNames[r]
}

// QuarterTurn reports whether r swaps width and height.
func (r Rotation) QuarterTurn() bool {
	return r == Rotate90 || r == Rotate270
}

// RotationNames returns the accepted rotation names in ascending angle.
func RotationNames() []string {
	return append([]string(nil), rotationNames[:]...)
}

// ParseRotation converts a rotation name such as "NINETY_DEG" to a Rotation.
// An empty name means RotateNone.
func ParseRotation(name string) (Rotation, error) {
	if name == "" {
		return RotateNone, nil
	}
	for i, n := range rotationNames {
		if n == name {
			return Rotation(i), nil
		}
	}
	return RotateNone, fmt.Errorf("%w: %q", ErrUnknownRotation, name)
}

// MarshalText encodes r as its name, so JSON carries "NINETY_DEG" rather than 1.
func (r Rotation) MarshalText() ([]byte, error) {
	if r < 0 || int(r) >= len(rotationNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRotation, int(r))
	}
	return []byte(rotationNames[r]), nil
}

// UnmarshalText accepts the names ParseRotation accepts.
func (r *Rotation) UnmarshalText(text []byte) error {
	rot, err := ParseRotation(string(text))
	if err != nil {
		return err
	}
	*r = rot
	return nil
}
