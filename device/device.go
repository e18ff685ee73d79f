// SPDX-License-Identifier: Unlicense OR MIT

/*
Package device describes the device classes that select a scaling
baseline.

A Class is supplied by the host platform, which usually knows whether
it runs on a phone or a tablet. Hosts without such introspection can
fall back to Classify, which guesses from the screen size.
*/
package device

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Class is the two-valued device classification.
type Class uint8

const (
	// Compact is the class of phone sized devices.
	Compact Class = iota
	// Large is the class of tablet sized devices.
	Large
)

// ErrUnknownClass is returned by ParseClass for unrecognized names.
var ErrUnknownClass = errors.New("device: unknown class")

// Provider reports the class of the running device.
type Provider interface {
	Class() Class
}

// ProviderFunc adapts a function to a Provider.
type ProviderFunc func() Class

// Static is a Provider that always reports itself.
type Static Class

// largeShortSide is the shortest side, in logical points, from which
// Classify reports Large. It matches the common 600dp tablet breakpoint.
const largeShortSide = 600

func (c Class) String() string {
	switch c {
	case Compact:
		return "compact"
	case Large:
		return "large"
	default:
		panic("unknown class")
	}
}

// Set implements pflag.Value so a Class can be bound to a flag.
func (c *Class) Set(s string) error {
	v, err := ParseClass(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Type implements pflag.Value.
func (c *Class) Type() string {
	return "class"
}

// UnmarshalText decodes a class name, for configuration files.
func (c *Class) UnmarshalText(text []byte) error {
	return c.Set(string(text))
}

// MarshalText encodes the class name.
func (c Class) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// ParseClass parses a class name. Besides the canonical names it
// accepts the platform idioms "phone" and "pad"/"tablet".
func ParseClass(s string) (Class, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "compact", "phone":
		return Compact, nil
	case "large", "pad", "tablet":
		return Large, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownClass, s)
	}
}

func (f ProviderFunc) Class() Class {
	return f()
}

func (s Static) Class() Class {
	return Class(s)
}

// Classify guesses the class of a device from its logical screen
// size. Orientation does not matter.
func Classify(width, height float64) Class {
	if math.Min(math.Abs(width), math.Abs(height)) >= largeShortSide {
		return Large
	}
	return Compact
}
