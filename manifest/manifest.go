// Package manifest renders a TOML description of C aggregate declarations
// into a complete header through the gen emitters. It carries the tool
// surface around the generation engine: loading and validating manifests,
// rendering, an up-to-date check for CI, and a file watcher for regeneration
// on change.
package manifest

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/teranos/cgen/errors"
)

// Aggregate kinds.
const (
	KindStruct = "struct"
	KindUnion  = "union"
	KindEnum   = "enum"
)

// Manifest describes one generated header.
type Manifest struct {
	// HeaderGuard is the include guard macro. No guard is emitted when empty.
	HeaderGuard string `toml:"header_guard"`

	// Aggregates are rendered in manifest order.
	Aggregates []Aggregate `toml:"aggregate"`
}

// Aggregate is one generated type declaration.
type Aggregate struct {
	// Name is the aggregate tag, and the typedef alias when Typedef is set.
	Name string `toml:"name"`

	// Kind is struct, union, or enum.
	Kind string `toml:"kind"`

	// Types are the member C types of a struct or union, in declaration
	// order. Order determines the generated member indices.
	Types []string `toml:"types"`

	// Members are explicit enumerator names for an enum.
	Members []string `toml:"members"`

	// Count generates Count indexed enumerators (_0.._count-1) for an enum
	// when Members is empty.
	Count int `toml:"count"`

	// Anonymous omits the tag, declaring the aggregate through its typedef
	// alias only.
	Anonymous bool `toml:"anonymous"`

	// Typedef also emits a typedef of the aggregate to Name.
	Typedef bool `toml:"typedef"`

	// Constructor emits a static inline constructor taking one parameter
	// per member. Structs and unions only.
	Constructor bool `toml:"constructor"`
}

// Load reads and validates a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading manifest %s", path)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "manifest %s", path)
	}
	return m, nil
}

// Parse decodes and validates manifest TOML.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "decoding manifest TOML")
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks every aggregate before any rendering happens, so a bad
// manifest never produces partial output.
func (m *Manifest) Validate() error {
	for i := range m.Aggregates {
		if err := m.Aggregates[i].validate(); err != nil {
			return errors.Wrapf(err, "aggregate %d", i)
		}
	}
	return nil
}

func (a *Aggregate) validate() error {
	if a.Name == "" {
		return errors.NewArityError("aggregate", "a name", "none")
	}
	op := fmt.Sprintf("aggregate %s", a.Name)

	switch a.Kind {
	case KindStruct, KindUnion:
		if len(a.Members) > 0 {
			return errors.NewTypeMismatchError(op, "members only on enum aggregates", a.Members)
		}
		if a.Count != 0 {
			return errors.NewTypeMismatchError(op, "count only on enum aggregates", a.Count)
		}
	case KindEnum:
		if len(a.Types) > 0 {
			return errors.NewTypeMismatchError(op, "enum aggregates carry no member types", a.Types)
		}
		if a.Count < 0 {
			return errors.NewTypeMismatchError(op, "a non-negative enumerator count", a.Count)
		}
		if a.Constructor {
			return errors.NewTypeMismatchError(op, "constructor only on struct and union aggregates", a.Kind)
		}
	default:
		return errors.NewTypeMismatchError(op, "kind struct, union, or enum", a.Kind)
	}

	if a.Anonymous && !a.Typedef {
		return errors.NewTypeMismatchError(op, "typedef = true for the anonymous form", "typedef = false")
	}
	return nil
}
