// Package roster loads the family members and known places the parser recognises.
package roster

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"family-task-parser/internal/model"
)

var (
	ErrMissingName     = errors.New("member name is required")
	ErrDuplicateMember = errors.New("duplicate member name")
	ErrMissingKey      = errors.New("place key is required")
	ErrDuplicatePlace  = errors.New("duplicate place key")
	ErrNegativeDrive   = errors.New("driving time must not be negative")
)

// versionSpace namespaces roster fingerprints.
var versionSpace = uuid.MustParse("5b0c3f7e-8d62-4d4e-9a8e-2f1f8e8a0c11")

// Snapshot is a validated roster plus a fingerprint of its content.
// Two snapshots with equal content share a Version.
type Snapshot struct {
	Roster  model.Roster
	Version string
}

// Load reads a roster file. An empty path yields an empty roster.
func Load(path string) (Snapshot, error) {
	if path == "" {
		return New(model.Roster{})
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("read roster %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML roster document.
func Parse(data []byte) (Snapshot, error) {
	var r model.Roster
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Snapshot{}, fmt.Errorf("failed to parse roster YAML: %w", err)
	}
	return New(r)
}

// New validates r and fingerprints it.
func New(r model.Roster) (Snapshot, error) {
	if err := Validate(r); err != nil {
		return Snapshot{}, err
	}
	canonical, err := yaml.Marshal(r)
	if err != nil {
		return Snapshot{}, fmt.Errorf("encode roster: %w", err)
	}
	return Snapshot{
		Roster:  r,
		Version: uuid.NewSHA1(versionSpace, canonical).String(),
	}, nil
}

// Validate checks names and keys are present and unique.
func Validate(r model.Roster) error {
	names := make(map[string]bool, len(r.Members))
	for i, m := range r.Members {
		if m.Name == "" {
			return fmt.Errorf("member %d: %w", i, ErrMissingName)
		}
		if names[m.Name] {
			return fmt.Errorf("%w: %s", ErrDuplicateMember, m.Name)
		}
		names[m.Name] = true
	}

	keys := make(map[string]bool, len(r.Places))
	for i, p := range r.Places {
		if p.Key == "" {
			return fmt.Errorf("place %d: %w", i, ErrMissingKey)
		}
		if keys[p.Key] {
			return fmt.Errorf("%w: %s", ErrDuplicatePlace, p.Key)
		}
		if p.DrivingTimeFromHome < 0 {
			return fmt.Errorf("place %s: %w", p.Key, ErrNegativeDrive)
		}
		keys[p.Key] = true
	}
	return nil
}
