package intake

import (
	"fmt"
	"time"

	"github.com/louisbranch/yogastudio/internal/schedule/domain"
)

// View is a flat, printable rendering of a scheduled event.
type View struct {
	Kind        string     `json:"kind"`
	Duration    string     `json:"duration"`
	Start       *time.Time `json:"start,omitempty"`
	End         *time.Time `json:"end,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	Leader      string     `json:"leader,omitempty"`
	LeaderRole  string     `json:"leader_role,omitempty"`
	Class       string     `json:"class,omitempty"`
	Workshop    string     `json:"workshop,omitempty"`
	Description string     `json:"description,omitempty"`
}

// Describe renders event as a View. Missing components, such as a nil
// duration or teacher, are left empty.
func Describe(event domain.ScheduledEvent) View {
	if event == nil {
		return View{}
	}
	v := View{Kind: string(event.Kind())}
	v.setDuration(event.Duration())

	switch e := event.(type) {
	case domain.ScheduledClass:
		v.Leader = e.Instructor().String()
		v.LeaderRole = string(e.Instructor().Role())
		v.Class = e.YogaClass().String()
	case domain.ScheduledWorkshop:
		if teacher := e.Teacher(); teacher != nil {
			v.Leader = teacher.Person().String()
			v.LeaderRole = string(teacher.Role())
		}
		v.Workshop = e.Workshop().String()
	case domain.MembersBirthday:
		v.Leader = e.Member().String()
		v.LeaderRole = string(e.Member().Role())
	case domain.SpecialEvent:
		v.Description = e.Description()
	}
	return v
}

func (v *View) setDuration(d domain.EventDuration) {
	if d == nil {
		return
	}
	v.Duration = string(d.Kind())
	switch d := d.(type) {
	case domain.TimedEvent:
		start, end := d.Start(), d.End()
		v.Start, v.End = &start, &end
	case domain.FullDayEvent:
		date := d.Date()
		v.Date = &date
	}
}

// String summarizes the view on one line.
func (v View) String() string {
	var when string
	switch {
	case v.Date != nil:
		when = v.Date.Format(time.DateOnly)
	case v.Start != nil && v.End != nil:
		when = v.Start.Format(time.RFC3339) + " - " + v.End.Format(time.RFC3339)
	}

	switch domain.EventKind(v.Kind) {
	case domain.EventScheduledClass:
		return fmt.Sprintf("%s %s class with %s, %s", v.Kind, v.Class, v.Leader, when)
	case domain.EventScheduledWorkshop:
		return fmt.Sprintf("%s %s workshop with %s (%s), %s", v.Kind, v.Workshop, v.Leader, v.LeaderRole, when)
	case domain.EventMembersBirthday:
		return fmt.Sprintf("%s for %s, %s", v.Kind, v.Leader, when)
	default:
		return fmt.Sprintf("%s %q, %s", v.Kind, v.Description, when)
	}
}
