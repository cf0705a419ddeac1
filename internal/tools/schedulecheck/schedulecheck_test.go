package schedulecheck

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "github.com/louisbranch/yogastudio/internal/platform/errors"
)

const validDocument = `events:
  - kind: ScheduledClass
    instructor: {first_name: Ana, last_name: Lee}
    class: Kundalini
    start: 2024-03-01T09:00:00Z
    end: 2024-03-01T10:00:00Z
  - kind: SpecialEvent
    description: Open day
    date: 2024-06-21
`

const mixedDocument = `events:
  - kind: MembersBirthday
    member: {first_name: Ana, last_name: Lee}
    date: 2024-05-05
  - kind: ScheduledClass
    instructor: {first_name: Ana, last_name: Lee}
    class: Pilates
    start: 2024-03-01T09:00:00Z
    end: 2024-03-01T10:00:00Z
`

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("schedule", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-file", "events.yaml"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.File != "events.yaml" || cfg.Locale != "en-US" || cfg.JSON {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestParseConfigReadsEnv(t *testing.T) {
	t.Setenv("YOGA_STUDIO_SCHEDULE_FILE", "env.yaml")
	t.Setenv("YOGA_STUDIO_LOCALE", "pt-BR")

	fs := flag.NewFlagSet("schedule", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-json"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.File != "env.yaml" || cfg.Locale != "pt-BR" || !cfg.JSON {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestParseConfigRequiresFile(t *testing.T) {
	fs := flag.NewFlagSet("schedule", flag.ContinueOnError)
	if _, err := ParseConfig(fs, nil); err == nil {
		t.Fatal("expected missing file error")
	}
}

func TestRunValidDocumentFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.yaml")
	if err := os.WriteFile(path, []byte(validDocument), 0o644); err != nil {
		t.Fatalf("write document: %v", err)
	}

	var out bytes.Buffer
	if err := Run(context.Background(), Config{File: path, Locale: "en-US"}, nil, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "ok    #1 ScheduledClass Kundalini class with Ana Lee") {
		t.Fatalf("missing class line in %q", got)
	}
	if !strings.Contains(got, "2 of 2 events valid") {
		t.Fatalf("missing summary in %q", got)
	}
}

func TestRunReportsLocalizedFailures(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(), Config{File: StdinPath, Locale: "pt"}, strings.NewReader(mixedDocument), &out)
	if !errors.Is(err, ErrInvalidEvents) {
		t.Fatalf("expected ErrInvalidEvents, got %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "erro  #2 Aula de yoga não encontrada: Pilates") {
		t.Fatalf("missing localized failure in %q", got)
	}
	if !strings.Contains(got, "1 de 2 eventos válidos") {
		t.Fatalf("missing localized summary in %q", got)
	}
}

func TestRunJSON(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(), Config{File: StdinPath, Locale: "en-US", JSON: true}, strings.NewReader(mixedDocument), &out)
	if !errors.Is(err, ErrInvalidEvents) {
		t.Fatalf("expected ErrInvalidEvents, got %v", err)
	}

	var reports []Report
	if err := json.Unmarshal(out.Bytes(), &reports); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("reports = %d, want 2", len(reports))
	}
	if reports[0].Event == nil || reports[0].Event.Kind != "MembersBirthday" {
		t.Fatalf("unexpected first report %+v", reports[0])
	}
	if reports[1].Code != "UNKNOWN_CLASS_KIND" || reports[1].Error != "Yoga class not found: Pilates" {
		t.Fatalf("unexpected second report %+v", reports[1])
	}
	if reports[0].Status != "" || reports[1].Status != "InvalidArgument" {
		t.Fatalf("unexpected statuses %q %q", reports[0].Status, reports[1].Status)
	}
}

func TestDescribeError(t *testing.T) {
	code, msg := describeError(apperrors.WithMetadata(apperrors.CodeUnknownClassKind, "unknown", map[string]string{"Kind": "Pilates"}), "pt-BR")
	if code != "InvalidArgument" || msg != "Aula de yoga não encontrada: Pilates" {
		t.Fatalf("describeError = %q, %q", code, msg)
	}
	code, msg = describeError(errors.New("disk on fire"), "en-US")
	if code != "Internal" || msg != "disk on fire" {
		t.Fatalf("describeError foreign = %q, %q", code, msg)
	}
}

func TestRunInputErrors(t *testing.T) {
	if err := Run(context.Background(), Config{File: StdinPath}, strings.NewReader("x"), nil); err == nil {
		t.Fatal("expected nil output error")
	}
	if err := Run(context.Background(), Config{File: filepath.Join(t.TempDir(), "missing.yaml")}, nil, &bytes.Buffer{}); err == nil {
		t.Fatal("expected missing file error")
	}
	if err := Run(context.Background(), Config{File: StdinPath}, nil, &bytes.Buffer{}); err == nil {
		t.Fatal("expected missing stdin error")
	}
	err := Run(context.Background(), Config{File: StdinPath}, strings.NewReader("events: ["), &bytes.Buffer{})
	if err == nil || errors.Is(err, ErrInvalidEvents) {
		t.Fatalf("expected decode error, got %v", err)
	}
}
