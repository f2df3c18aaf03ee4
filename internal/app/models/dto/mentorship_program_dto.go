package dto

import (
	"github.com/yigit/alumni/internal/app/models"
	"github.com/yigit/alumni/internal/pkg/apperrors"
	"github.com/yigit/alumni/internal/pkg/validation"
)

// titleLen matches mentorship_programs.title
const titleLen = 255

// CreateMentorshipProgramSchema declares the create payload
var CreateMentorshipProgramSchema = validation.Schema{
	Name: "CreateMentorshipProgram",
	Fields: map[string]validation.Rule{
		"title":       {Kind: validation.KindString, Required: true, NonEmpty: true, MaxLen: titleLen},
		"description": {Kind: validation.KindString, Required: true, NonEmpty: true},
		"mentorType":  {Kind: validation.KindString, Required: true, NonEmpty: true, OneOf: models.MentorKindNames(), FoldCase: true},
		"mentorId":    {Kind: validation.KindID, Required: true},
		"menteeId":    {Kind: validation.KindID},
	},
}

// UpdateMentorshipProgramSchema declares the partial update payload.
// Nothing is required; present fields keep their create-time shape.
var UpdateMentorshipProgramSchema = validation.Schema{
	Name: "UpdateMentorshipProgram",
	Fields: map[string]validation.Rule{
		"title":       {Kind: validation.KindString, NonEmpty: true, MaxLen: titleLen},
		"description": {Kind: validation.KindString, NonEmpty: true},
		"mentorType":  {Kind: validation.KindString, NonEmpty: true, OneOf: models.MentorKindNames(), FoldCase: true},
		"mentorId":    {Kind: validation.KindID},
		"menteeId":    {Kind: validation.KindID},
	},
}

// CreateMentorshipProgramRequest is a validated create payload
type CreateMentorshipProgramRequest struct {
	Title       string            `json:"title" example:"Backend engineering track"`
	Description string            `json:"description" example:"Weekly sessions on Go services"`
	MentorType  models.MentorKind `json:"mentorType" example:"faculty"`
	MentorID    int64             `json:"mentorId,string" example:"42"`
	MenteeID    *int64            `json:"menteeId,string,omitempty" example:"7"`
}

// UpdateMentorshipProgramRequest documents the partial update payload
type UpdateMentorshipProgramRequest struct {
	Title       *string            `json:"title,omitempty"`
	Description *string            `json:"description,omitempty"`
	MentorType  *models.MentorKind `json:"mentorType,omitempty" example:"alumni"`
	MentorID    *int64             `json:"mentorId,string,omitempty" example:"42"`
	MenteeID    *int64             `json:"menteeId,string,omitempty" example:"7"`
}

// BindCreateMentorshipProgram validates body and maps it to a create request
func BindCreateMentorshipProgram(body validation.Object, strict bool) (*CreateMentorshipProgramRequest, error) {
	if err := CreateMentorshipProgramSchema.Check(body, strict); err != nil {
		return nil, err
	}

	rawKind, _ := body.String("mentorType")
	kind, _ := models.ParseMentorKind(rawKind)
	mentorID, _ := body.ID("mentorId")

	return &CreateMentorshipProgramRequest{
		Title:       mustString(body, "title"),
		Description: mustString(body, "description"),
		MentorType:  kind,
		MentorID:    mentorID,
		MenteeID:    body.IDPtr("menteeId"),
	}, nil
}

// BindUpdateMentorshipProgram validates body and maps it to a partial update.
// mentorType and mentorId move a program to another mentor and must be
// given together.
func BindUpdateMentorshipProgram(body validation.Object, strict bool) (models.MentorshipProgramUpdate, error) {
	violations := UpdateMentorshipProgramSchema.Validate(body, strict)

	hasKind, hasMentor := body.Has("mentorType"), body.Has("mentorId")
	if hasKind && !hasMentor {
		violations = append(violations, apperrors.FieldViolation{
			Field: "mentorId", Message: "mentorId is required when mentorType is set",
		})
	}
	if hasMentor && !hasKind {
		violations = append(violations, apperrors.FieldViolation{
			Field: "mentorType", Message: "mentorType is required when mentorId is set",
		})
	}
	if len(violations) > 0 {
		return models.MentorshipProgramUpdate{}, apperrors.NewValidationError(violations)
	}

	update := models.MentorshipProgramUpdate{
		Title:       body.StringPtr("title"),
		Description: body.StringPtr("description"),
		MentorID:    body.IDPtr("mentorId"),
		MenteeID:    body.IDPtr("menteeId"),
	}
	if rawKind, ok := body.String("mentorType"); ok {
		kind, _ := models.ParseMentorKind(rawKind)
		update.MentorType = &kind
	}
	return update, nil
}

// ToModel converts the request into a program ready to be stored
func (r *CreateMentorshipProgramRequest) ToModel() *models.MentorshipProgram {
	return &models.MentorshipProgram{
		Title:       r.Title,
		Description: r.Description,
		MentorType:  r.MentorType,
		MentorID:    r.MentorID,
		MenteeID:    r.MenteeID,
	}
}

// MentorshipProgramListResponse is one page of programs
type MentorshipProgramListResponse struct {
	Items      []*models.MentorshipProgram `json:"items"`
	Pagination PaginationInfo              `json:"pagination"`
}

func mustString(body validation.Object, key string) string {
	s, _ := body.String(key)
	return s
}
