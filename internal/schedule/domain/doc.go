// Package domain defines the validated value types for the studio schedule.
//
// Every value is built through a constructor that either returns a valid
// value or a structured error; nothing here performs I/O or keeps state.
//
// # People
//
// A Person is a first and last name, each a BoundedString of 1 to 50
// characters. A Person takes one of three roles, Instructor, Member or Guest.
// The roles are distinct types so one cannot stand in for another without an
// explicit conversion. Any role may lead a workshop, which is expressed by the
// Teacher interface.
//
// # Durations
//
// A TimedEvent has a start and an end; a FullDayEvent has a single date. Both
// reject dates before Cutoff, although a TimedEvent only does so when its
// range is also inverted.
//
// # Events
//
// A ScheduledEvent is one of ScheduledClass, ScheduledWorkshop,
// MembersBirthday or SpecialEvent. Assembling an event never fails because its
// parts are already valid.
package domain
