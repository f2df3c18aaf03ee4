package dto

import (
	"math"

	"github.com/yigit/alumni/internal/app/models"
	"github.com/yigit/alumni/internal/pkg/auth"
	"github.com/yigit/alumni/internal/pkg/validation"
)

// Lengths follow the users table columns.
const (
	nameLen  = 100
	phoneLen = 20
	longLen  = 255
)

// text is a required, non-empty string of at most max characters
func text(max int) validation.Rule {
	return validation.Rule{Kind: validation.KindString, Required: true, NonEmpty: true, MaxLen: max}
}

var (
	numericStr = validation.Rule{Kind: validation.KindNumericString, Required: true, NonEmpty: true, MaxLen: phoneLen}
	integer    = validation.Rule{Kind: validation.KindInteger, Required: true}
	// passing_year is an INTEGER column
	year = validation.Rule{Kind: validation.KindInteger, Required: true, Range: &validation.Range{Min: 1, Max: math.MaxInt32}}
	role = validation.Rule{Kind: validation.KindString, Required: true, NonEmpty: true, OneOf: models.RoleNames()}
	// bcrypt reads at most 72 bytes
	password = text(auth.MaxPasswordBytes)
)

// CreateUserSchema declares the user creation payload
var CreateUserSchema = validation.Schema{
	Name: "CreateUser",
	Fields: map[string]validation.Rule{
		"firstName":        text(nameLen),
		"lastName":         text(nameLen),
		"email":            text(longLen),
		"mobile":           numericStr,
		"branch":           text(nameLen),
		"enrollmentNumber": integer,
		"password":         password,
		"role":             role,
		"section":          text(phoneLen),
		"passingYear":      year,
		"fathersName":      text(nameLen),
		"mothersName":      text(nameLen),
		"hobby":            text(longLen),
		"parentsPhone":     numericStr,
		"facultyId":        integer,
		"societyId":        integer,
	},
}

// userUpdateField ties an update payload field to its column and rule
type userUpdateField struct {
	column string
	rule   validation.Rule
}

func optional(r validation.Rule) validation.Rule {
	r.Required = false
	return r
}

func optionalText() validation.Rule {
	return validation.Rule{Kind: validation.KindString}
}

// userUpdateFields lists every field the update path may change.
// The profile URLs and approval flags can only be set here.
var userUpdateFields = map[string]userUpdateField{
	"firstName":             {"first_name", optional(text(nameLen))},
	"lastName":              {"last_name", optional(text(nameLen))},
	"email":                 {"email", optional(text(longLen))},
	"mobile":                {"mobile", optional(numericStr)},
	"section":               {"section", optional(text(phoneLen))},
	"passingYear":           {"passing_year", optional(year)},
	"enrollmentNumber":      {"enrollment_number", optional(integer)},
	"role":                  {"role", optional(role)},
	"fathersName":           {"fathers_name", optional(text(nameLen))},
	"mothersName":           {"mothers_name", optional(text(nameLen))},
	"parentsPhone":          {"parents_phone", optional(numericStr)},
	"hobby":                 {"hobby", optional(text(longLen))},
	"isApproved":            {"is_approved", validation.Rule{Kind: validation.KindBoolean}},
	"isVerified":            {"is_verified", validation.Rule{Kind: validation.KindBoolean}},
	"profilePictureUrl":     {"profile_picture_url", optionalText()},
	"githubProfileUrl":      {"github_profile_url", optionalText()},
	"linkedInProfileUrl":    {"linkedin_profile_url", optionalText()},
	"twitterProfileUrl":     {"twitter_profile_url", optionalText()},
	"gfgProfileUrl":         {"gfg_profile_url", optionalText()},
	"codingNinjaProfileUrl": {"coding_ninja_profile_url", optionalText()},
	"leetcodeProfileUrl":    {"leetcode_profile_url", optionalText()},
	"codeforcesProfileUrl":  {"codeforces_profile_url", optionalText()},
	"instagramProfileUrl":   {"instagram_profile_url", optionalText()},
	"branch":                {"branch", optional(text(nameLen))},
	"facultyId":             {"faculty_id", optional(integer)},
	"societyId":             {"society_id", optional(integer)},
}

// UpdateUserSchema declares the partial user update payload
var UpdateUserSchema = func() validation.Schema {
	fields := make(map[string]validation.Rule, len(userUpdateFields))
	for name, f := range userUpdateFields {
		fields[name] = f.rule
	}
	return validation.Schema{Name: "UpdateUser", Fields: fields}
}()

// CreateUserRequest is a validated user creation payload
type CreateUserRequest struct {
	FirstName        string          `json:"firstName" example:"Ada"`
	LastName         string          `json:"lastName" example:"Lovelace"`
	Email            string          `json:"email" example:"ada@alumni.example.edu"`
	Mobile           string          `json:"mobile" example:"09876543210"`
	Branch           string          `json:"branch" example:"CSE"`
	EnrollmentNumber int64           `json:"enrollmentNumber" example:"2019001"`
	Password         string          `json:"password" example:"s3cret-pass"`
	Role             models.RoleType `json:"role" example:"ALUMNI"`
	Section          string          `json:"section" example:"A"`
	PassingYear      int             `json:"passingYear" example:"2023"`
	FathersName      string          `json:"fathersName"`
	MothersName      string          `json:"mothersName"`
	Hobby            string          `json:"hobby"`
	ParentsPhone     string          `json:"parentsPhone" example:"09123456789"`
	FacultyID        int64           `json:"facultyId" example:"1"`
	SocietyID        int64           `json:"societyId" example:"1"`
}

// BindCreateUser validates body and maps it to a create request
func BindCreateUser(body validation.Object, strict bool) (*CreateUserRequest, error) {
	if err := CreateUserSchema.Check(body, strict); err != nil {
		return nil, err
	}

	enrollment, _ := body.Int64("enrollmentNumber")
	passingYear, _ := body.Int64("passingYear")
	facultyID, _ := body.Int64("facultyId")
	societyID, _ := body.Int64("societyId")

	return &CreateUserRequest{
		FirstName:        mustString(body, "firstName"),
		LastName:         mustString(body, "lastName"),
		Email:            mustString(body, "email"),
		Mobile:           mustString(body, "mobile"),
		Branch:           mustString(body, "branch"),
		EnrollmentNumber: enrollment,
		Password:         mustString(body, "password"),
		Role:             models.RoleType(mustString(body, "role")),
		Section:          mustString(body, "section"),
		PassingYear:      int(passingYear),
		FathersName:      mustString(body, "fathersName"),
		MothersName:      mustString(body, "mothersName"),
		Hobby:            mustString(body, "hobby"),
		ParentsPhone:     mustString(body, "parentsPhone"),
		FacultyID:        facultyID,
		SocietyID:        societyID,
	}, nil
}

// ToModel converts the request into a user; passwordHash replaces the
// plain password.
func (r *CreateUserRequest) ToModel(passwordHash string) *models.User {
	return &models.User{
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		Email:            r.Email,
		Mobile:           r.Mobile,
		Branch:           r.Branch,
		EnrollmentNumber: r.EnrollmentNumber,
		Password:         passwordHash,
		Role:             r.Role,
		Section:          r.Section,
		PassingYear:      r.PassingYear,
		FathersName:      r.FathersName,
		MothersName:      r.MothersName,
		Hobby:            r.Hobby,
		ParentsPhone:     r.ParentsPhone,
		FacultyID:        r.FacultyID,
		SocietyID:        r.SocietyID,
	}
}

// BindUpdateUser validates body and returns the columns to change
func BindUpdateUser(body validation.Object, strict bool) (models.UserUpdate, error) {
	if err := UpdateUserSchema.Check(body, strict); err != nil {
		return nil, err
	}

	update := models.UserUpdate{}
	for name, f := range userUpdateFields {
		if !body.Has(name) {
			continue
		}
		switch f.rule.Kind {
		case validation.KindInteger:
			v, _ := body.Int64(name)
			update[f.column] = v
		case validation.KindBoolean:
			v, _ := body.Bool(name)
			update[f.column] = v
		default:
			update[f.column] = mustString(body, name)
		}
	}
	return update, nil
}

// UserListResponse is one page of users
type UserListResponse struct {
	Items      []*models.User `json:"items"`
	Pagination PaginationInfo `json:"pagination"`
}
