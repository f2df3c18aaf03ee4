package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/alumni/internal/app/models"
	"github.com/yigit/alumni/internal/pkg/apperrors"
)

func newUserRepo(t *testing.T) (*UserRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewUserRepository(mock), mock
}

func userRow(mock pgxmock.PgxPoolIface, id int64, email string) *pgxmock.Rows {
	none := (*string)(nil)
	return mock.NewRows(userColumns).AddRow(
		id, "Ada", "Lovelace", email, "09876543210", "CSE", int64(2019001),
		"$2a$hash", "ALUMNI", "A", 2023, "Byron", "Anne", "Maths",
		"01234567890", int64(1), int64(2), false, false,
		none, strPtr("https://github.com/ada"), none, none,
		none, none, none,
		none, none, fixedTime, fixedTime,
	)
}

func TestUserRepositoryCreate(t *testing.T) {
	repo, mock := newUserRepo(t)
	user := &models.User{FirstName: "Ada", Email: "ada@alumni.example.edu", Password: "$2a$hash", Role: models.RoleAlumni}

	mock.ExpectQuery(q("INSERT INTO users (first_name,last_name,email,")).
		WillReturnRows(userRow(mock, 1, "ada@alumni.example.edu"))

	created, err := repo.Create(context.Background(), user)

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, models.RoleAlumni, created.Role)
	require.NotNil(t, created.GithubProfileURL)
	assert.Nil(t, created.ProfilePictureURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryCreateConflicts(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		want       error
	}{
		{"email", usersEmailKey, apperrors.ErrEmailAlreadyExists},
		{"enrollment number", usersEnrollmentNumberKey, apperrors.ErrEnrollmentNumberExists},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newUserRepo(t)
			mock.ExpectQuery(q("INSERT INTO users")).
				WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: tt.constraint})

			_, err := repo.Create(context.Background(), &models.User{})

			assert.ErrorIs(t, err, tt.want)
			assert.True(t, errors.Is(err, apperrors.ErrResourceAlreadyExists))
		})
	}
}

func TestUserRepositoryValueDoesNotFit(t *testing.T) {
	for _, code := range []string{"22001", "22003"} {
		t.Run(code, func(t *testing.T) {
			repo, mock := newUserRepo(t)
			mock.ExpectQuery(q("UPDATE users SET")).
				WillReturnError(&pgconn.PgError{Code: code})

			_, err := repo.Update(context.Background(), 1, models.UserUpdate{"hobby": "x"})

			assert.ErrorIs(t, err, apperrors.ErrValueDoesNotFit)
			assert.True(t, errors.Is(err, apperrors.ErrBadRequest))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepositoryFindAll(t *testing.T) {
	repo, mock := newUserRepo(t)

	mock.ExpectQuery(q("FROM users ORDER BY id ASC LIMIT 10 OFFSET 0")).
		WillReturnRows(userRow(mock, 1, "a@x.edu"))

	users, err := repo.FindAll(context.Background(), 0, 10)

	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "a@x.edu", users[0].Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryUpdateOrdersColumns(t *testing.T) {
	repo, mock := newUserRepo(t)

	mock.ExpectQuery(q("UPDATE users SET github_profile_url = $1, is_approved = $2, updated_at = NOW() WHERE id = $3")).
		WithArgs("https://github.com/ada", true, int64(1)).
		WillReturnRows(userRow(mock, 1, "a@x.edu"))

	_, err := repo.Update(context.Background(), 1, models.UserUpdate{
		"is_approved":        true,
		"github_profile_url": "https://github.com/ada",
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryNotFound(t *testing.T) {
	repo, mock := newUserRepo(t)

	mock.ExpectQuery(q("FROM users WHERE id = $1")).WithArgs(int64(9)).WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery(q("DELETE FROM users WHERE id = $1")).WithArgs(int64(9)).WillReturnError(pgx.ErrNoRows)

	_, err := repo.FindOne(context.Background(), 9)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	_, err = repo.Remove(context.Background(), 9)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryFindByEmail(t *testing.T) {
	repo, mock := newUserRepo(t)

	mock.ExpectQuery(q("FROM users WHERE email = $1")).
		WithArgs("ada@alumni.example.edu").
		WillReturnRows(userRow(mock, 3, "ada@alumni.example.edu"))

	user, err := repo.FindByEmail(context.Background(), "ada@alumni.example.edu")

	require.NoError(t, err)
	assert.Equal(t, int64(3), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
