package models

import "strings"

// MentorKind discriminates the category of a program's mentor
type MentorKind string

const (
	MentorFaculty MentorKind = "faculty"
	MentorAlumni  MentorKind = "alumni"
)

// MentorKinds lists every supported mentor kind in a stable order
var MentorKinds = []MentorKind{MentorFaculty, MentorAlumni}

// ParseMentorKind maps raw (case-insensitive) onto a MentorKind.
func ParseMentorKind(raw string) (MentorKind, bool) {
	kind := MentorKind(strings.ToLower(raw))
	for _, k := range MentorKinds {
		if k == kind {
			return kind, true
		}
	}
	return "", false
}

// MentorKindNames returns the enumeration as plain strings
func MentorKindNames() []string {
	names := make([]string, 0, len(MentorKinds))
	for _, k := range MentorKinds {
		names = append(names, string(k))
	}
	return names
}

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin   RoleType = "ADMIN"
	RoleAlumni  RoleType = "ALUMNI"
	RoleStudent RoleType = "STUDENT"
	RoleFaculty RoleType = "FACULTY"
)

// RoleNames returns the role enumeration as plain strings
func RoleNames() []string {
	return []string{string(RoleAdmin), string(RoleAlumni), string(RoleStudent), string(RoleFaculty)}
}
