package dto

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/alumni/internal/app/models"
)

const validUserBody = `{
	"firstName": "Ada",
	"lastName": "Lovelace",
	"email": "ada@alumni.example.edu",
	"mobile": "09876543210",
	"branch": "CSE",
	"enrollmentNumber": 2019001,
	"password": "s3cret-pass",
	"role": "ALUMNI",
	"section": "A",
	"passingYear": 2023,
	"fathersName": "Byron",
	"mothersName": "Anne",
	"hobby": "Mathematics",
	"parentsPhone": "01234567890",
	"facultyId": 1,
	"societyId": 2
}`

func TestBindCreateUser(t *testing.T) {
	req, err := BindCreateUser(object(t, validUserBody), false)

	require.NoError(t, err)
	assert.Equal(t, "09876543210", req.Mobile, "leading zero must survive")
	assert.Equal(t, int64(2019001), req.EnrollmentNumber)
	assert.Equal(t, 2023, req.PassingYear)
	assert.Equal(t, models.RoleAlumni, req.Role)

	user := req.ToModel("hashed")
	assert.Equal(t, "hashed", user.Password)
	assert.Equal(t, int64(2), user.SocietyID)
	assert.False(t, user.IsApproved)
}

func TestBindCreateUserReportsEveryMissingField(t *testing.T) {
	_, err := BindCreateUser(object(t, `{"firstName": "Ada", "mobile": "98-76"}`), false)

	require.Error(t, err)
	assert.Equal(t, []string{
		"branch", "email", "enrollmentNumber", "facultyId", "fathersName", "hobby",
		"lastName", "mobile", "mothersName", "parentsPhone", "passingYear", "password",
		"role", "section", "societyId",
	}, violatedFields(t, err))
}

func TestBindCreateUserEnforcesColumnLimits(t *testing.T) {
	body := object(t, validUserBody)
	body["firstName"] = strings.Repeat("a", 500)
	body["section"] = strings.Repeat("b", 21)
	body["mobile"] = strings.Repeat("9", 21)
	body["password"] = strings.Repeat("p", 73)
	body["passingYear"] = json.Number("99999999999")

	_, err := BindCreateUser(body, false)

	require.Error(t, err)
	assert.Equal(t, []string{"firstName", "mobile", "passingYear", "password", "section"}, violatedFields(t, err))
}

func TestBindUpdateUserEnforcesColumnLimits(t *testing.T) {
	_, err := BindUpdateUser(object(t, `{"lastName": "`+strings.Repeat("x", 101)+`", "passingYear": -1}`), false)

	require.Error(t, err)
	assert.Equal(t, []string{"lastName", "passingYear"}, violatedFields(t, err))
}

func TestBindCreateUserRejectsUpdateOnlyFieldsInStrictMode(t *testing.T) {
	body := object(t, validUserBody)
	body["isApproved"] = true

	_, err := BindCreateUser(body, true)
	require.Error(t, err)
	assert.Equal(t, []string{"isApproved"}, violatedFields(t, err))

	_, err = BindCreateUser(body, false)
	assert.NoError(t, err)
}

func TestBindUpdateUser(t *testing.T) {
	t.Run("empty body", func(t *testing.T) {
		update, err := BindUpdateUser(object(t, `{}`), false)
		require.NoError(t, err)
		assert.True(t, update.IsEmpty())
	})

	t.Run("maps fields to columns", func(t *testing.T) {
		update, err := BindUpdateUser(object(t, `{
			"isApproved": true,
			"githubProfileUrl": "https://github.com/ada",
			"passingYear": 2024,
			"mobile": "0123"
		}`), false)
		require.NoError(t, err)
		assert.Equal(t, models.UserUpdate{
			"is_approved":        true,
			"github_profile_url": "https://github.com/ada",
			"passing_year":       int64(2024),
			"mobile":             "0123",
		}, update)
	})

	t.Run("present fields keep their shape", func(t *testing.T) {
		_, err := BindUpdateUser(object(t, `{"isVerified": "yes", "mobile": 123, "facultyId": 1.5}`), false)
		require.Error(t, err)
		assert.Equal(t, []string{"facultyId", "isVerified", "mobile"}, violatedFields(t, err))
	})

	t.Run("password cannot be changed here", func(t *testing.T) {
		update, err := BindUpdateUser(object(t, `{"password": "x"}`), false)
		require.NoError(t, err)
		assert.True(t, update.IsEmpty())
	})
}
