package repositories

import (
	"context"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of pgxpool.Pool the repositories use. pgx.Tx and
// pgxmock pools satisfy it too.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository              *UserRepository
	MentorshipProgramRepository *MentorshipProgramRepository
}

// NewRepositories initializes all repositories. mentorColumns lists every
// column a program's mentor id may live in.
func NewRepositories(db DBTX, mentorColumns []string) *Repositories {
	return &Repositories{
		UserRepository:              NewUserRepository(db),
		MentorshipProgramRepository: NewMentorshipProgramRepository(db, mentorColumns),
	}
}

func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
