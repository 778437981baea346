package vehicle

import (
	"errors"
	"fmt"
	"strings"
)

// PropertyKind identifies a vehicle property.
type PropertyKind int

const (
	Make            PropertyKind = iota // vehicle make
	Model                               // vehicle model
	Year                                // model year
	Trim                                // trim package
	Geography                           // ISO country code
	Version                             // software version
	OperatingSystem                     // operating system
	HardwareArch                        // hardware architecture
	Language                            // language

	kindCount
)

var (
	// ErrUnknownPropertyKind is returned when a name matches no property kind.
	ErrUnknownPropertyKind = errors.New("unknown vehicle property kind")
	// ErrInvalidProperty is returned for malformed kind=value text.
	ErrInvalidProperty = errors.New("invalid vehicle property")
)

type kindInfo struct {
	key         string
	name        string
	description string
}

var kindTable = [kindCount]kindInfo{
	Make:            {"make", "MAKE", "Vehicle make"},
	Model:           {"model", "MODEL", "Vehicle model"},
	Year:            {"year", "YEAR", "Vehicle year"},
	Trim:            {"trim", "TRIM", "Vehicle trim package"},
	Geography:       {"geography", "GEOGRAPHY", "Vehicle country (ISO country code)"},
	Version:         {"version", "VERSION", "Software version"},
	OperatingSystem: {"os", "OPERATING_SYSTEM", "Operating system"},
	HardwareArch:    {"arch", "HARDWARE_ARCH", "Hardware architecture"},
	Language:        {"language", "LANGUAGE", "Language"},
}

// A kind added to the enumeration without a table entry stops the program
// at start up instead of producing configuration without that key.
func init() {
	if err := checkKindTable(kindTable[:]); err != nil {
		panic(err)
	}
}

func checkKindTable(table []kindInfo) error {
	seen := make(map[string]int, len(table))
	for i, info := range table {
		if info.key == "" || info.name == "" {
			return fmt.Errorf("vehicle property kind %d has no key", i)
		}
		if prev, dup := seen[info.key]; dup {
			return fmt.Errorf("vehicle property kinds %d and %d share key %q", prev, i, info.key)
		}
		seen[info.key] = i
	}
	return nil
}

// Kinds returns all property kinds in declaration order.
func Kinds() []PropertyKind {
	out := make([]PropertyKind, 0, kindCount)
	for k := PropertyKind(0); k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// Valid reports whether k is a declared kind.
func (k PropertyKind) Valid() bool {
	return k >= 0 && k < kindCount
}

// Key returns the configuration key for k. It panics for undeclared kinds.
func (k PropertyKind) Key() string {
	return k.info().key
}

// Description returns a human readable description of k.
func (k PropertyKind) Description() string {
	return k.info().description
}

func (k PropertyKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("PropertyKind(%d)", int(k))
	}
	return kindTable[k].name
}

func (k PropertyKind) info() kindInfo {
	if !k.Valid() {
		panic(fmt.Sprintf("vehicle: no key for property kind %d", int(k)))
	}
	return kindTable[k]
}

// ParsePropertyKind accepts either a configuration key ("os") or an
// enumeration name ("OPERATING_SYSTEM"), ignoring case.
func ParsePropertyKind(s string) (PropertyKind, error) {
	s = strings.TrimSpace(s)
	for i, info := range kindTable {
		if strings.EqualFold(s, info.key) || strings.EqualFold(s, info.name) {
			return PropertyKind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPropertyKind, s)
}

// Property is a kind and value pair.
type Property struct {
	Kind  PropertyKind
	Value string
}

// NewProperty returns a Property.
func NewProperty(kind PropertyKind, value string) Property {
	return Property{Kind: kind, Value: value}
}

// ParseProperty parses "kind=value". The value is kept verbatim and may be
// empty or contain further '=' characters.
func ParseProperty(s string) (Property, error) {
	name, value, ok := strings.Cut(s, "=")
	if !ok {
		return Property{}, fmt.Errorf("%w: %q is not kind=value", ErrInvalidProperty, s)
	}
	kind, err := ParsePropertyKind(name)
	if err != nil {
		return Property{}, err
	}
	return NewProperty(kind, value), nil
}

func (p Property) String() string {
	return p.Kind.Key() + "=" + p.Value
}
