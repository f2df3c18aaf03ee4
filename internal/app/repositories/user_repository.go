package repositories

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/alumni/internal/app/models"
	"github.com/yigit/alumni/internal/pkg/apperrors"
	"github.com/yigit/alumni/internal/pkg/dberrors"
	"github.com/yigit/alumni/internal/pkg/logger"
)

const usersTable = "users"

// Unique constraints on the users table
const (
	usersEmailKey            = "users_email_key"
	usersEnrollmentNumberKey = "users_enrollment_number_key"
)

var userColumns = []string{
	"id", "first_name", "last_name", "email", "mobile", "branch", "enrollment_number",
	"password", "role", "section", "passing_year", "fathers_name", "mothers_name", "hobby",
	"parents_phone", "faculty_id", "society_id", "is_approved", "is_verified",
	"profile_picture_url", "github_profile_url", "linkedin_profile_url", "twitter_profile_url",
	"gfg_profile_url", "coding_ninja_profile_url", "leetcode_profile_url",
	"codeforces_profile_url", "instagram_profile_url", "created_at", "updated_at",
}

// UserRepository handles user database operations
type UserRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db, sb: statementBuilder()}
}

func scanUser(row pgx.Row) (*models.User, error) {
	var (
		u    models.User
		role string
	)
	err := row.Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Mobile, &u.Branch, &u.EnrollmentNumber,
		&u.Password, &role, &u.Section, &u.PassingYear, &u.FathersName, &u.MothersName, &u.Hobby,
		&u.ParentsPhone, &u.FacultyID, &u.SocietyID, &u.IsApproved, &u.IsVerified,
		&u.ProfilePictureURL, &u.GithubProfileURL, &u.LinkedInProfileURL, &u.TwitterProfileURL,
		&u.GfgProfileURL, &u.CodingNinjaProfileURL, &u.LeetcodeProfileURL,
		&u.CodeforcesProfileURL, &u.InstagramProfileURL, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	u.Role = models.RoleType(role)
	return &u, nil
}

func (r *UserRepository) classify(err error, op string) error {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return apperrors.ErrUserNotFound
	case dberrors.IsDuplicateConstraintError(err, usersEmailKey):
		return apperrors.ErrEmailAlreadyExists
	case dberrors.IsDuplicateConstraintError(err, usersEnrollmentNumberKey):
		return apperrors.ErrEnrollmentNumberExists
	case dberrors.IsUniqueViolation(err):
		return apperrors.NewConflictError("User already exists")
	case dberrors.IsForeignKeyViolation(err):
		return apperrors.ErrReferencedRecordMissing
	case dberrors.IsDataException(err):
		return apperrors.ErrValueDoesNotFit
	}
	logger.Error().Err(err).Str("op", op).Msg("User query failed")
	return fmt.Errorf("error executing %s: %w", op, err)
}

func (r *UserRepository) queryOne(ctx context.Context, op string, q squirrel.Sqlizer) (*models.User, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		logger.Error().Err(err).Str("op", op).Msg("Error building SQL")
		return nil, fmt.Errorf("failed to build %s query: %w", op, err)
	}
	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, r.classify(err, op)
	}
	return user, nil
}

func returningUser() string {
	return "RETURNING " + joinColumns(userColumns)
}

// Create inserts a user; user.Password must already be hashed
func (r *UserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	q := r.sb.Insert(usersTable).
		Columns(
			"first_name", "last_name", "email", "mobile", "branch", "enrollment_number",
			"password", "role", "section", "passing_year", "fathers_name", "mothers_name",
			"hobby", "parents_phone", "faculty_id", "society_id",
		).
		Values(
			user.FirstName, user.LastName, user.Email, user.Mobile, user.Branch, user.EnrollmentNumber,
			user.Password, string(user.Role), user.Section, user.PassingYear, user.FathersName, user.MothersName,
			user.Hobby, user.ParentsPhone, user.FacultyID, user.SocietyID,
		).
		Suffix(returningUser())
	return r.queryOne(ctx, "create user", q)
}

// Count returns the number of stored users
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From(usersTable).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count users query: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, r.classify(err, "count users")
	}
	return total, nil
}

// FindAll returns one page of users ordered by id
func (r *UserRepository) FindAll(ctx context.Context, offset, limit uint64) ([]*models.User, error) {
	sql, args, err := r.sb.Select(userColumns...).
		From(usersTable).
		OrderBy("id ASC").
		Offset(offset).
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list users query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, r.classify(err, "list users")
	}
	defer rows.Close()

	users := make([]*models.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, r.classify(err, "list users")
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, r.classify(err, "list users")
	}
	return users, nil
}

// FindOne returns the user with the given id
func (r *UserRepository) FindOne(ctx context.Context, id int64) (*models.User, error) {
	q := r.sb.Select(userColumns...).From(usersTable).Where(squirrel.Eq{"id": id}).Limit(1)
	return r.queryOne(ctx, "get user", q)
}

// FindByEmail returns the user registered with email
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	q := r.sb.Select(userColumns...).From(usersTable).Where(squirrel.Eq{"email": email}).Limit(1)
	return r.queryOne(ctx, "get user by email", q)
}

// Update writes the columns in update. Columns are applied in name order.
func (r *UserRepository) Update(ctx context.Context, id int64, update models.UserUpdate) (*models.User, error) {
	columns := make([]string, 0, len(update))
	for c := range update {
		columns = append(columns, c)
	}
	sort.Strings(columns)

	q := r.sb.Update(usersTable).Where(squirrel.Eq{"id": id})
	for _, c := range columns {
		q = q.Set(c, update[c])
	}
	q = q.Set("updated_at", squirrel.Expr("NOW()")).Suffix(returningUser())
	return r.queryOne(ctx, "update user", q)
}

// Remove deletes the user and returns it as it was
func (r *UserRepository) Remove(ctx context.Context, id int64) (*models.User, error) {
	q := r.sb.Delete(usersTable).Where(squirrel.Eq{"id": id}).Suffix(returningUser())
	return r.queryOne(ctx, "delete user", q)
}
