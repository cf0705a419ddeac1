package intake

import (
	"context"
	"testing"
	"time"

	apperrors "github.com/louisbranch/yogastudio/internal/platform/errors"
)

const sampleYAML = `
events:
  - kind: ScheduledClass
    instructor:
      first_name: Ana
      last_name: Lee
    class: Hatha
    start: 2024-03-01T09:00:00Z
    end: 2024-03-01T10:00:00Z
  - kind: MembersBirthday
    member: {first_name: Rui, last_name: Sá}
    date: 2024-05-05
  - kind: SpecialEvent
    description: Solstice open house
    date: "2024-06-21"
`

func TestDecodeDocumentYAML(t *testing.T) {
	doc, err := DecodeDocument([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(doc.Events) != 3 {
		t.Fatalf("events = %d, want 3", len(doc.Events))
	}
	if doc.Events[0].Start != "2024-03-01T09:00:00Z" {
		t.Fatalf("start = %q", doc.Events[0].Start)
	}
	if doc.Events[1].Date != "2024-05-05" || doc.Events[1].Member.LastName != "Sá" {
		t.Fatalf("unexpected birthday request %+v", doc.Events[1])
	}

	for _, result := range NewBuilder().BuildAll(context.Background(), doc) {
		if result.Err != nil {
			t.Fatalf("event %d: %v", result.Index, result.Err)
		}
	}
}

func TestDecodeDocumentJSON(t *testing.T) {
	doc, err := DecodeDocument([]byte(`{"events": [{"kind": "SpecialEvent", "date": "2024-06-21", "description": "Open day"}]}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(doc.Events) != 1 || doc.Events[0].Description != "Open day" {
		t.Fatalf("unexpected document %+v", doc)
	}
}

func TestDecodeDocumentRejectsMalformedInput(t *testing.T) {
	if _, err := DecodeDocument([]byte("events: [")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		value string
		want  time.Time
	}{
		{value: "2024-03-01", want: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{value: " 2024-03-01 ", want: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{value: "2024-03-01T09:30:00", want: time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)},
		{value: "2024-03-01 09:30:00", want: time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)},
		{value: "2024-03-01T09:30:00-03:00", want: time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, err := ParseTimestamp("start", tt.value)
		if err != nil {
			t.Fatalf("parse %q: %v", tt.value, err)
		}
		if !got.Equal(tt.want) {
			t.Fatalf("parse %q = %v, want %v", tt.value, got, tt.want)
		}
	}

	_, err := ParseTimestamp("end", "soon")
	if !apperrors.IsCode(err, apperrors.CodeInvalidTimestamp) {
		t.Fatalf("expected invalid timestamp, got %v", err)
	}
	if meta := apperrors.GetMetadata(err); meta["Field"] != "end" || meta["Value"] != "soon" {
		t.Fatalf("unexpected metadata %v", meta)
	}
}
