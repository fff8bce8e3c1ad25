package models

// Role is the closed set of account roles
type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleInstructor, RoleAdmin:
		return true
	}
	return false
}

// UserStatus is the closed set of account states. Instructor accounts start
// pending and become active on admin approval.
type UserStatus string

const (
	UserPending UserStatus = "pending"
	UserActive  UserStatus = "active"
)

// Valid reports whether s is a known user status
func (s UserStatus) Valid() bool {
	return s == UserPending || s == UserActive
}

// EnrollmentStatus is the closed set of enrollment states. Transitions out of
// pending are admin-only; approved and rejected are terminal.
type EnrollmentStatus string

const (
	EnrollmentPending  EnrollmentStatus = "pending"
	EnrollmentApproved EnrollmentStatus = "approved"
	EnrollmentRejected EnrollmentStatus = "rejected"
)

// Valid reports whether s is a known enrollment status
func (s EnrollmentStatus) Valid() bool {
	switch s {
	case EnrollmentPending, EnrollmentApproved, EnrollmentRejected:
		return true
	}
	return false
}

// Terminal reports whether no further transition is allowed out of s
func (s EnrollmentStatus) Terminal() bool {
	return s == EnrollmentApproved || s == EnrollmentRejected
}

// LectureType is the closed set of lecture content types
type LectureType string

const (
	LectureYoutube LectureType = "youtube"
	LecturePDF     LectureType = "pdf"
	LectureURL     LectureType = "url"
)

// Valid reports whether t is a known lecture type
func (t LectureType) Valid() bool {
	switch t {
	case LectureYoutube, LecturePDF, LectureURL:
		return true
	}
	return false
}
