package domain

// Role tags which kind of participant a Person is acting as.
type Role string

const (
	// RoleInstructor is a studio instructor.
	RoleInstructor Role = "Instructor"
	// RoleMember is a studio member.
	RoleMember Role = "Member"
	// RoleGuest is a visiting guest.
	RoleGuest Role = "Guest"
)

// Teacher is anyone allowed to lead a workshop: an Instructor, a Member or a
// Guest. The set is closed.
type Teacher interface {
	Role() Role
	Person() Person
	isTeacher()
}

// Instructor is a Person acting as a studio instructor.
type Instructor struct {
	person Person
}

// Member is a Person acting as a studio member.
type Member struct {
	person Person
}

// Guest is a Person acting as a visiting guest.
type Guest struct {
	person Person
}

var (
	_ Teacher = Instructor{}
	_ Teacher = Member{}
	_ Teacher = Guest{}
)

// ToInstructor labels p as an Instructor.
func ToInstructor(p Person) Instructor { return Instructor{person: p} }

// ToMember labels p as a Member.
func ToMember(p Person) Member { return Member{person: p} }

// ToGuest labels p as a Guest.
func ToGuest(p Person) Guest { return Guest{person: p} }

func (i Instructor) Role() Role     { return RoleInstructor }
func (i Instructor) Person() Person { return i.person }
func (i Instructor) String() string { return i.person.String() }
func (Instructor) isTeacher()       {}

func (m Member) Role() Role     { return RoleMember }
func (m Member) Person() Person { return m.person }
func (m Member) String() string { return m.person.String() }
func (Member) isTeacher()       {}

func (g Guest) Role() Role     { return RoleGuest }
func (g Guest) Person() Person { return g.person }
func (g Guest) String() string { return g.person.String() }
func (Guest) isTeacher()       {}
