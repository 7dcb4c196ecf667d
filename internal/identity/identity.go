// Package identity remembers which family member this device belongs
// to.
//
// The mapping is a small YAML file on local disk, written once when
// onboarding completes. There is no authentication behind it; the app
// trusts the device the way a paper calendar on the fridge trusts
// whoever picks up the pen.
package identity

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// File stores the device identity at a fixed path.
type File struct {
	path string
}

type record struct {
	MemberID    string    `yaml:"member_id"`
	OnboardedAt time.Time `yaml:"onboarded_at"`
}

// NewFile creates a file-backed identity store.
func NewFile(path string) *File {
	return &File{path: path}
}

// Read returns the stored member id, or an empty string when the device
// has not onboarded yet.
func (f *File) Read() (string, error) {
	raw, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read identity file: %w", err)
	}

	var rec record
	if err := yaml.Unmarshal(raw, &rec); err != nil {
		return "", fmt.Errorf("parse identity file: %w", err)
	}
	return rec.MemberID, nil
}

// Write records the member id for this device, replacing any previous
// identity.
func (f *File) Write(memberID string) error {
	raw, err := yaml.Marshal(record{
		MemberID:    memberID,
		OnboardedAt: time.Now(),
	})
	if err != nil {
		return fmt.Errorf("encode identity file: %w", err)
	}
	if err := os.WriteFile(f.path, raw, 0o600); err != nil {
		return fmt.Errorf("write identity file: %w", err)
	}
	return nil
}
