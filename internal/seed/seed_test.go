package seed

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type plainHasher struct{}

func (plainHasher) Hash(p string) (string, error) { return "hashed:" + p, nil }

var userCols = []string{
	"id", "first_name", "last_name", "email", "mobile", "branch", "enrollment_number",
	"password", "role", "section", "passing_year", "fathers_name", "mothers_name", "hobby",
	"parents_phone", "faculty_id", "society_id", "is_approved", "is_verified",
	"profile_picture_url", "github_profile_url", "linkedin_profile_url", "twitter_profile_url",
	"gfg_profile_url", "coding_ninja_profile_url", "leetcode_profile_url",
	"codeforces_profile_url", "instagram_profile_url", "created_at", "updated_at",
}

func userRow(mock pgxmock.PgxPoolIface, id int64, role string) *pgxmock.Rows {
	now := time.Now()
	none := (*string)(nil)
	return mock.NewRows(userCols).AddRow(
		id, "f", "l", "e", "0", "CSE", id, "h", role, "A", 2000, "-", "-", "-",
		"0", int64(1), int64(1), false, false,
		none, none, none, none, none, none, none, none, none, now, now,
	)
}

func TestCreateDemoDataSkipsWhenPresent(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
		WithArgs(marker).
		WillReturnRows(userRow(mock, 1, "FACULTY"))
	mock.ExpectCommit()

	require.NoError(t, CreateDemoData(context.Background(), mock, plainHasher{}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDemoDataInsertsOneProgramPerKind(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	programCols := []string{"id", "title", "description", "mentor_type", "mentor_id", "mentee_id", "created_at", "updated_at"}
	mentee := int64(3)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).WillReturnError(pgx.ErrNoRows)
	for i, role := range []string{"FACULTY", "ALUMNI", "STUDENT"} {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).WillReturnRows(userRow(mock, int64(i+1), role))
	}
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO mentorship_programs (title,description,mentor_type,faculty_mentor_id,mentee_id)")).
		WithArgs("Research mentorship", "Seeded demo program", "faculty", int64(1), &mentee).
		WillReturnRows(mock.NewRows(programCols).AddRow(int64(1), "Research mentorship", "d", "faculty", int64(1), &mentee, now, now))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO mentorship_programs (title,description,mentor_type,alumni_mentor_id,mentee_id)")).
		WithArgs("Industry mentorship", "Seeded demo program", "alumni", int64(2), &mentee).
		WillReturnRows(mock.NewRows(programCols).AddRow(int64(2), "Industry mentorship", "d", "alumni", int64(2), &mentee, now, now))
	mock.ExpectCommit()

	require.NoError(t, CreateDemoData(context.Background(), mock, plainHasher{}))
	assert.NoError(t, mock.ExpectationsWereMet())
}
