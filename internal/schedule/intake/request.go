// Package intake turns raw event requests into validated schedule events.
//
// A request carries only primitives, as read from a YAML or JSON document.
// Building one runs the domain constructors in order (names, then person,
// then role; kind names; timestamps, then duration) and stops at the first
// failing step.
package intake

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	apperrors "github.com/louisbranch/yogastudio/internal/platform/errors"
)

// Document is a batch of event requests.
type Document struct {
	Events []EventRequest `yaml:"events" json:"events"`
}

// PersonRequest names a person and, where the event allows it, their role.
type PersonRequest struct {
	Role      string `yaml:"role,omitempty" json:"role,omitempty"`
	FirstName string `yaml:"first_name" json:"first_name"`
	LastName  string `yaml:"last_name" json:"last_name"`
}

// EventRequest is one event as submitted by a caller. Which fields are read
// depends on Kind.
type EventRequest struct {
	Kind        string         `yaml:"kind" json:"kind"`
	Instructor  *PersonRequest `yaml:"instructor,omitempty" json:"instructor,omitempty"`
	Teacher     *PersonRequest `yaml:"teacher,omitempty" json:"teacher,omitempty"`
	Member      *PersonRequest `yaml:"member,omitempty" json:"member,omitempty"`
	Class       string         `yaml:"class,omitempty" json:"class,omitempty"`
	Workshop    string         `yaml:"workshop,omitempty" json:"workshop,omitempty"`
	Start       string         `yaml:"start,omitempty" json:"start,omitempty"`
	End         string         `yaml:"end,omitempty" json:"end,omitempty"`
	Date        string         `yaml:"date,omitempty" json:"date,omitempty"`
	Description string         `yaml:"description,omitempty" json:"description,omitempty"`
}

// DecodeDocument parses a YAML or JSON request document.
func DecodeDocument(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("decode event document: %w", err)
	}
	return doc, nil
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// ParseTimestamp parses an RFC 3339 timestamp or a plain date. Values without
// a zone are read as UTC.
func ParseTimestamp(field, value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperrors.WithMetadata(
		apperrors.CodeInvalidTimestamp,
		fmt.Sprintf("invalid %s timestamp: %q", field, value),
		map[string]string{"Field": field, "Value": value},
	)
}
