package domain

// EventKind is the discriminant of a ScheduledEvent.
type EventKind string

const (
	EventScheduledClass    EventKind = "ScheduledClass"
	EventScheduledWorkshop EventKind = "ScheduledWorkshop"
	EventMembersBirthday   EventKind = "MembersBirthday"
	EventSpecialEvent      EventKind = "SpecialEvent"
)

// ScheduledEvent is anything on the studio calendar. The set of
// implementations is closed: ScheduledClass, ScheduledWorkshop,
// MembersBirthday and SpecialEvent.
type ScheduledEvent interface {
	Kind() EventKind
	Duration() EventDuration
	isScheduledEvent()
}

var (
	_ ScheduledEvent = ScheduledClass{}
	_ ScheduledEvent = ScheduledWorkshop{}
	_ ScheduledEvent = MembersBirthday{}
	_ ScheduledEvent = SpecialEvent{}
)

// ScheduledClass is a regular class led by an instructor.
type ScheduledClass struct {
	duration   TimedEvent
	instructor Instructor
	class      YogaClassKind
}

// NewScheduledClass assembles a class from validated parts.
func NewScheduledClass(duration TimedEvent, instructor Instructor, class YogaClassKind) ScheduledClass {
	return ScheduledClass{duration: duration, instructor: instructor, class: class}
}

func (ScheduledClass) Kind() EventKind            { return EventScheduledClass }
func (c ScheduledClass) Duration() EventDuration  { return c.duration }
func (c ScheduledClass) TimedEvent() TimedEvent   { return c.duration }
func (c ScheduledClass) Instructor() Instructor   { return c.instructor }
func (c ScheduledClass) YogaClass() YogaClassKind { return c.class }
func (ScheduledClass) isScheduledEvent()          {}

// ScheduledWorkshop is a workshop led by any Teacher.
type ScheduledWorkshop struct {
	duration TimedEvent
	teacher  Teacher
	workshop WorkshopKind
}

// NewScheduledWorkshop assembles a workshop from validated parts. A nil
// teacher is not a valid workshop.
func NewScheduledWorkshop(duration TimedEvent, teacher Teacher, workshop WorkshopKind) ScheduledWorkshop {
	return ScheduledWorkshop{duration: duration, teacher: teacher, workshop: workshop}
}

func (ScheduledWorkshop) Kind() EventKind           { return EventScheduledWorkshop }
func (w ScheduledWorkshop) Duration() EventDuration { return w.duration }
func (w ScheduledWorkshop) TimedEvent() TimedEvent  { return w.duration }
func (w ScheduledWorkshop) Teacher() Teacher        { return w.teacher }
func (w ScheduledWorkshop) Workshop() WorkshopKind  { return w.workshop }
func (ScheduledWorkshop) isScheduledEvent()         {}

// MembersBirthday marks a member's birthday for the whole day.
type MembersBirthday struct {
	duration FullDayEvent
	member   Member
}

// NewMembersBirthday assembles a birthday from validated parts.
func NewMembersBirthday(duration FullDayEvent, member Member) MembersBirthday {
	return MembersBirthday{duration: duration, member: member}
}

func (MembersBirthday) Kind() EventKind              { return EventMembersBirthday }
func (b MembersBirthday) Duration() EventDuration    { return b.duration }
func (b MembersBirthday) FullDayEvent() FullDayEvent { return b.duration }
func (b MembersBirthday) Member() Member             { return b.member }
func (MembersBirthday) isScheduledEvent()            {}

// SpecialEvent is a free-form event, timed or full-day.
type SpecialEvent struct {
	duration    EventDuration
	description string
}

// NewSpecialEvent assembles a special event. The description is not
// validated; a nil duration is not a valid event.
func NewSpecialEvent(duration EventDuration, description string) SpecialEvent {
	return SpecialEvent{duration: duration, description: description}
}

func (SpecialEvent) Kind() EventKind           { return EventSpecialEvent }
func (s SpecialEvent) Duration() EventDuration { return s.duration }
func (s SpecialEvent) Description() string     { return s.description }
func (SpecialEvent) isScheduledEvent()         {}
