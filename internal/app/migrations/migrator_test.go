package migrations

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriverURL(t *testing.T) {
	assert.Equal(t, "pgx5://u:p@localhost:5432/alumni?sslmode=disable",
		DriverURL("postgres://u:p@localhost:5432/alumni?sslmode=disable"))
	assert.Equal(t, "pgx5://h/db", DriverURL("postgresql://h/db"))
	assert.Equal(t, "pgx5://h/db", DriverURL("pgx5://h/db"))
}

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	src, err := Source()
	require.NoError(t, err)
	defer src.Close()

	version, err := src.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)

	for {
		up, _, err := src.ReadUp(version)
		require.NoError(t, err, "version %d has no up file", version)
		body, err := io.ReadAll(up)
		up.Close()
		require.NoError(t, err)
		assert.NotEmpty(t, body)

		down, _, err := src.ReadDown(version)
		require.NoError(t, err, "version %d has no down file", version)
		down.Close()

		next, err := src.Next(version)
		if err != nil {
			break
		}
		version = next
	}
}

func TestInitialSchemaDeclaresMentorColumns(t *testing.T) {
	body, err := files.ReadFile("sql/000001_init.up.sql")
	require.NoError(t, err)

	for _, column := range []string{"faculty_mentor_id", "alumni_mentor_id", "users_email_key", "users_enrollment_number_key"} {
		assert.Contains(t, string(body), column)
	}
}
