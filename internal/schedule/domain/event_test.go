package domain

import (
	"testing"
	"time"
)

func mustPerson(t *testing.T, first, last string) Person {
	t.Helper()
	p, err := NewPerson(first, last)
	if err != nil {
		t.Fatalf("new person: %v", err)
	}
	return p
}

func mustTimed(t *testing.T, start, end time.Time) TimedEvent {
	t.Helper()
	d, err := NewTimedEvent(start, end)
	if err != nil {
		t.Fatalf("new timed event: %v", err)
	}
	return d
}

func mustFullDay(t *testing.T, date time.Time) FullDayEvent {
	t.Helper()
	d, err := NewFullDayEvent(date)
	if err != nil {
		t.Fatalf("new full day event: %v", err)
	}
	return d
}

func TestNewScheduledClassKeepsFields(t *testing.T) {
	duration := mustTimed(t, day(2024, 3, 1), day(2024, 3, 1).Add(time.Hour))
	instructor := ToInstructor(mustPerson(t, "Ana", "Lee"))

	class := NewScheduledClass(duration, instructor, YogaClassVinyasa)
	if class.Kind() != EventScheduledClass {
		t.Fatalf("kind = %s", class.Kind())
	}
	if class.TimedEvent() != duration || class.Duration() != EventDuration(duration) {
		t.Fatal("expected duration preserved")
	}
	if class.Instructor() != instructor {
		t.Fatal("expected instructor preserved")
	}
	if class.YogaClass() != YogaClassVinyasa {
		t.Fatalf("class = %s", class.YogaClass())
	}
}

func TestNewScheduledWorkshopAcceptsAnyTeacher(t *testing.T) {
	duration := mustTimed(t, day(2024, 4, 2), day(2024, 4, 2).Add(3*time.Hour))
	p := mustPerson(t, "Rui", "Sá")

	for _, teacher := range []Teacher{ToInstructor(p), ToMember(p), ToGuest(p)} {
		workshop := NewScheduledWorkshop(duration, teacher, WorkshopNidra)
		if workshop.Kind() != EventScheduledWorkshop {
			t.Fatalf("kind = %s", workshop.Kind())
		}
		if workshop.Teacher() != teacher {
			t.Fatalf("expected %s teacher preserved", teacher.Role())
		}
		if workshop.Workshop() != WorkshopNidra || workshop.TimedEvent() != duration {
			t.Fatal("expected workshop fields preserved")
		}
	}
}

func TestNewMembersBirthdayKeepsFields(t *testing.T) {
	duration := mustFullDay(t, day(2024, 5, 5))
	member := ToMember(mustPerson(t, "Ana", "Lee"))

	birthday := NewMembersBirthday(duration, member)
	if birthday.Kind() != EventMembersBirthday {
		t.Fatalf("kind = %s", birthday.Kind())
	}
	if birthday.FullDayEvent() != duration || birthday.Member() != member {
		t.Fatal("expected birthday fields preserved")
	}
}

func TestNewSpecialEventAcceptsEitherDuration(t *testing.T) {
	durations := []EventDuration{
		mustTimed(t, day(2024, 6, 21), day(2024, 6, 21).Add(2*time.Hour)),
		mustFullDay(t, day(2024, 6, 21)),
	}
	for _, duration := range durations {
		event := NewSpecialEvent(duration, "")
		if event.Kind() != EventSpecialEvent {
			t.Fatalf("kind = %s", event.Kind())
		}
		if event.Duration() != duration {
			t.Fatalf("expected %s duration preserved", duration.Kind())
		}
		if event.Description() != "" {
			t.Fatal("expected empty description to be kept as is")
		}
	}
}

func TestScheduledEventKinds(t *testing.T) {
	timed := mustTimed(t, day(2024, 1, 1), day(2024, 1, 2))
	p := mustPerson(t, "Ana", "Lee")

	events := []ScheduledEvent{
		NewScheduledClass(timed, ToInstructor(p), YogaClassHatha),
		NewScheduledWorkshop(timed, ToGuest(p), WorkshopIntro),
		NewMembersBirthday(mustFullDay(t, day(2024, 1, 1)), ToMember(p)),
		NewSpecialEvent(timed, "Summer solstice"),
	}
	want := []EventKind{EventScheduledClass, EventScheduledWorkshop, EventMembersBirthday, EventSpecialEvent}
	for i, event := range events {
		if event.Kind() != want[i] {
			t.Fatalf("event %d kind = %s, want %s", i, event.Kind(), want[i])
		}
	}
}
