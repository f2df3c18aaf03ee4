package services

import (
	"github.com/yigit/alumni/internal/app/models"
	"github.com/yigit/alumni/internal/pkg/apperrors"
)

// mentorColumns is the single place a mentor kind is tied to its column
var mentorColumns = map[models.MentorKind]string{
	models.MentorFaculty: "faculty_mentor_id",
	models.MentorAlumni:  "alumni_mentor_id",
}

// MentorColumns returns every routed mentor column in enumeration order
func MentorColumns() []string {
	columns := make([]string, 0, len(models.MentorKinds))
	for _, kind := range models.MentorKinds {
		columns = append(columns, mentorColumns[kind])
	}
	return columns
}

// RouteMentorLookup selects the lookup strategy for a mentor kind. It is
// pure: an unknown kind fails with apperrors.ErrInvalidMentorType and no
// store is touched.
func RouteMentorLookup(kind string) (models.MentorLookup, error) {
	parsed, ok := models.ParseMentorKind(kind)
	if !ok {
		return models.MentorLookup{}, apperrors.NewInvalidMentorTypeError(kind, models.MentorKindNames())
	}

	column := mentorColumns[parsed]
	others := make([]string, 0, len(mentorColumns)-1)
	for _, c := range MentorColumns() {
		if c != column {
			others = append(others, c)
		}
	}
	return models.MentorLookup{Kind: parsed, Column: column, Clear: others}, nil
}
