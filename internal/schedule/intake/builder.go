package intake

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/louisbranch/yogastudio/internal/platform/errors"
	"github.com/louisbranch/yogastudio/internal/schedule/domain"
)

const tracerName = "github.com/louisbranch/yogastudio/internal/schedule/intake"

// Builder assembles schedule events from requests.
type Builder struct {
	tracer trace.Tracer
}

// Option configures a Builder.
type Option func(*Builder)

// WithTracerProvider records spans with tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(b *Builder) {
		if tp != nil {
			b.tracer = tp.Tracer(tracerName)
		}
	}
}

// NewBuilder returns a Builder that traces with the global provider unless
// overridden.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{tracer: otel.Tracer(tracerName)}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Result pairs a request's position in its document with its outcome.
type Result struct {
	Index int
	Event domain.ScheduledEvent
	Err   error
}

// Build validates req and assembles the event it describes.
func (b *Builder) Build(ctx context.Context, req EventRequest) (domain.ScheduledEvent, error) {
	_, span := b.tracer.Start(ctx, "intake.Build", trace.WithAttributes(
		attribute.String("schedule.event_kind", req.Kind),
	))
	defer span.End()

	event, err := build(req)
	if err != nil {
		span.SetAttributes(attribute.String("schedule.error_code", string(apperrors.GetCode(err))))
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return event, nil
}

// BuildAll builds every request in doc. A failing request does not stop the
// others.
func (b *Builder) BuildAll(ctx context.Context, doc Document) []Result {
	ctx, span := b.tracer.Start(ctx, "intake.BuildAll", trace.WithAttributes(
		attribute.Int("schedule.event_count", len(doc.Events)),
	))
	defer span.End()

	results := make([]Result, 0, len(doc.Events))
	failed := 0
	for i, req := range doc.Events {
		event, err := b.Build(ctx, req)
		if err != nil {
			failed++
		}
		results = append(results, Result{Index: i, Event: event, Err: err})
	}
	span.SetAttributes(attribute.Int("schedule.failed_count", failed))
	return results
}

func build(req EventRequest) (domain.ScheduledEvent, error) {
	switch domain.EventKind(req.Kind) {
	case domain.EventScheduledClass:
		return buildClass(req)
	case domain.EventScheduledWorkshop:
		return buildWorkshop(req)
	case domain.EventMembersBirthday:
		return buildBirthday(req)
	case domain.EventSpecialEvent:
		return buildSpecialEvent(req)
	default:
		return nil, apperrors.WithMetadata(
			apperrors.CodeUnknownEventKind,
			fmt.Sprintf("unknown event kind: %q", req.Kind),
			map[string]string{"Kind": req.Kind},
		)
	}
}

func buildClass(req EventRequest) (domain.ScheduledEvent, error) {
	person, err := buildPerson(req.Instructor)
	if err != nil {
		return nil, err
	}
	class, err := domain.ParseYogaClassKind(req.Class)
	if err != nil {
		return nil, err
	}
	duration, err := buildTimed(req)
	if err != nil {
		return nil, err
	}
	return domain.NewScheduledClass(duration, domain.ToInstructor(person), class), nil
}

func buildWorkshop(req EventRequest) (domain.ScheduledEvent, error) {
	teacher, err := buildTeacher(req.Teacher)
	if err != nil {
		return nil, err
	}
	workshop, err := domain.ParseWorkshopKind(req.Workshop)
	if err != nil {
		return nil, err
	}
	duration, err := buildTimed(req)
	if err != nil {
		return nil, err
	}
	return domain.NewScheduledWorkshop(duration, teacher, workshop), nil
}

func buildBirthday(req EventRequest) (domain.ScheduledEvent, error) {
	person, err := buildPerson(req.Member)
	if err != nil {
		return nil, err
	}
	duration, err := buildFullDay(req)
	if err != nil {
		return nil, err
	}
	return domain.NewMembersBirthday(duration, domain.ToMember(person)), nil
}

func buildSpecialEvent(req EventRequest) (domain.ScheduledEvent, error) {
	hasDate := req.Date != ""
	hasRange := req.Start != "" || req.End != ""

	var (
		duration domain.EventDuration
		err      error
	)
	switch {
	case hasDate && !hasRange:
		duration, err = buildFullDay(req)
	case hasRange && !hasDate:
		duration, err = buildTimed(req)
	default:
		return nil, apperrors.New(apperrors.CodeAmbiguousDuration, "special event needs either a date or a start and end")
	}
	if err != nil {
		return nil, err
	}
	return domain.NewSpecialEvent(duration, req.Description), nil
}

// buildPerson treats a missing person as one with empty names so the domain
// reports the failure.
func buildPerson(req *PersonRequest) (domain.Person, error) {
	if req == nil {
		req = &PersonRequest{}
	}
	return domain.NewPerson(req.FirstName, req.LastName)
}

func buildTeacher(req *PersonRequest) (domain.Teacher, error) {
	person, err := buildPerson(req)
	if err != nil {
		return nil, err
	}
	switch domain.Role(req.Role) {
	case domain.RoleInstructor:
		return domain.ToInstructor(person), nil
	case domain.RoleMember:
		return domain.ToMember(person), nil
	case domain.RoleGuest:
		return domain.ToGuest(person), nil
	default:
		return nil, apperrors.WithMetadata(
			apperrors.CodeUnknownTeacherRole,
			fmt.Sprintf("unknown teacher role: %q", req.Role),
			map[string]string{"Role": req.Role},
		)
	}
}

func buildTimed(req EventRequest) (domain.TimedEvent, error) {
	start, err := ParseTimestamp("start", req.Start)
	if err != nil {
		return domain.TimedEvent{}, err
	}
	end, err := ParseTimestamp("end", req.End)
	if err != nil {
		return domain.TimedEvent{}, err
	}
	return domain.NewTimedEvent(start, end)
}

func buildFullDay(req EventRequest) (domain.FullDayEvent, error) {
	date, err := ParseTimestamp("date", req.Date)
	if err != nil {
		return domain.FullDayEvent{}, err
	}
	return domain.NewFullDayEvent(date)
}
