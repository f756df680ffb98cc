package bindings

import (
	"fmt"
	"os"

	"github.com/milk9111/actionmap/action"
	"gopkg.in/yaml.v3"
)

// Profile is the on-disk shape of a binding set: action names mapped to
// control specs. Action names are resolved against a caller-supplied
// name table, since the action-set type belongs to the application.
//
//	actions:
//	  jump:
//	    - key:Space
//	    - pad:RightBottom
//	  left:
//	    - key:A
//	    - axis:LeftX-@0.3/0.2
type Profile struct {
	Actions map[string][]string `yaml:"actions"`
}

// ParseProfile decodes a YAML profile document.
func ParseProfile(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("bindings: parse profile: %w", err)
	}
	return &p, nil
}

// LoadProfile reads and decodes a YAML profile from disk.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("bindings: load profile: %w", err)
	}
	return ParseProfile(data)
}

// BuildMap resolves a profile into a Map using the given action name
// table. Unknown action names and malformed control specs fail the
// whole build; a half-applied profile is worse than the old one.
func BuildMap[A action.Actionlike[A]](p *Profile, names map[string]A) (*Map[A], error) {
	m := NewMap[A]()
	for name, specs := range p.Actions {
		a, ok := names[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAction, name)
		}
		for _, spec := range specs {
			if err := m.InsertSpec(a, spec); err != nil {
				return nil, fmt.Errorf("bindings: action %q: %w", name, err)
			}
		}
	}
	return m, nil
}
