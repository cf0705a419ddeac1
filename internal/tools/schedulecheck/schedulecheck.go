// Package schedulecheck validates a document of event requests and reports
// each event or its localized error.
package schedulecheck

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/status"

	platformcmd "github.com/louisbranch/yogastudio/internal/platform/cmd"
	apperrors "github.com/louisbranch/yogastudio/internal/platform/errors"
	"github.com/louisbranch/yogastudio/internal/platform/i18n/catalog"
	"github.com/louisbranch/yogastudio/internal/schedule/intake"
)

// StdinPath reads the document from standard input.
const StdinPath = "-"

// ErrInvalidEvents reports that at least one event failed validation.
var ErrInvalidEvents = errors.New("some events are invalid")

// Config holds configuration for a schedule check.
type Config struct {
	File   string `env:"SCHEDULE_FILE"`
	Locale string `env:"LOCALE" envDefault:"en-US"`
	JSON   bool   `env:"JSON"`
}

// ParseConfig reads YOGA_STUDIO_* defaults and then flags.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.File, "file", cfg.File, "event document (YAML or JSON); - reads stdin")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale for messages")
	fs.BoolVar(&cfg.JSON, "json", cfg.JSON, "print results as JSON")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if strings.TrimSpace(cfg.File) == "" {
		return Config{}, errors.New("file is required")
	}
	return cfg, nil
}

// Report is the JSON shape of one checked event.
type Report struct {
	Index  int          `json:"index"`
	Event  *intake.View `json:"event,omitempty"`
	Code   string       `json:"code,omitempty"`
	Status string       `json:"status,omitempty"`
	Error  string       `json:"error,omitempty"`
}

// Run checks the configured document and writes results to out. It returns
// ErrInvalidEvents when any event is rejected.
func Run(ctx context.Context, cfg Config, stdin io.Reader, out io.Writer) error {
	if out == nil {
		return errors.New("output is required")
	}
	data, err := readDocument(cfg.File, stdin)
	if err != nil {
		return err
	}
	doc, err := intake.DecodeDocument(data)
	if err != nil {
		return err
	}

	locale := catalog.Default().MatchLocale(cfg.Locale)
	results := intake.NewBuilder().BuildAll(ctx, doc)
	reports := make([]Report, 0, len(results))
	failed := 0
	for _, result := range results {
		report := Report{Index: result.Index + 1}
		if result.Err != nil {
			failed++
			report.Code = string(apperrors.GetCode(result.Err))
			report.Status, report.Error = describeError(result.Err, locale)
		} else {
			view := intake.Describe(result.Event)
			report.Event = &view
		}
		reports = append(reports, report)
	}

	if cfg.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			return fmt.Errorf("encode reports: %w", err)
		}
	} else if err := writeText(out, locale, reports, failed); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrInvalidEvents, failed, len(results))
	}
	return nil
}

func writeText(out io.Writer, locale string, reports []Report, failed int) error {
	p := message.NewPrinter(language.MustParse(locale))
	for _, r := range reports {
		var line string
		if r.Event != nil {
			line = p.Sprintf("cli.event_ok", r.Index, r.Event.String())
		} else {
			line = p.Sprintf("cli.event_failed", r.Index, r.Error)
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(out, p.Sprintf("cli.summary", len(reports)-failed, len(reports)))
	return err
}

// describeError renders err as the status code and localized message an RPC
// client would receive.
func describeError(err error, locale string) (string, string) {
	st := status.Convert(apperrors.HandleError(err, locale))
	for _, detail := range st.Details() {
		if msg, ok := detail.(*errdetails.LocalizedMessage); ok {
			return st.Code().String(), msg.GetMessage()
		}
	}
	return st.Code().String(), err.Error()
}

func readDocument(path string, stdin io.Reader) ([]byte, error) {
	if path == StdinPath {
		if stdin == nil {
			return nil, errors.New("stdin is not available")
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read event document: %w", err)
	}
	return data, nil
}
