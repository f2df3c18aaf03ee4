package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/alumni/internal/app/models"
	"github.com/yigit/alumni/internal/pkg/apperrors"
	"github.com/yigit/alumni/internal/pkg/dberrors"
	"github.com/yigit/alumni/internal/pkg/logger"
)

const programsTable = "mentorship_programs"

// MentorshipProgramRepository handles mentorship program database operations.
// A program stores its mentor id in exactly one of the mentor columns; the
// caller decides which through a models.MentorLookup.
type MentorshipProgramRepository struct {
	db      DBTX
	sb      squirrel.StatementBuilderType
	columns []string
}

// NewMentorshipProgramRepository creates a new MentorshipProgramRepository
func NewMentorshipProgramRepository(db DBTX, mentorColumns []string) *MentorshipProgramRepository {
	return &MentorshipProgramRepository{
		db: db,
		sb: statementBuilder(),
		columns: []string{
			"id", "title", "description", "mentor_type",
			fmt.Sprintf("COALESCE(%s) AS mentor_id", strings.Join(mentorColumns, ", ")),
			"mentee_id", "created_at", "updated_at",
		},
	}
}

func scanProgram(row pgx.Row) (*models.MentorshipProgram, error) {
	var (
		p    models.MentorshipProgram
		kind string
	)
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &kind, &p.MentorID, &p.MenteeID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.MentorType = models.MentorKind(kind)
	return &p, nil
}

// classify maps store errors onto application errors
func (r *MentorshipProgramRepository) classify(err error, op string) error {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return apperrors.ErrMentorshipProgramNotFound
	case dberrors.IsForeignKeyViolation(err):
		return apperrors.ErrReferencedRecordMissing
	case dberrors.IsDataException(err):
		return apperrors.ErrValueDoesNotFit
	case dberrors.IsUniqueViolation(err):
		return apperrors.NewConflictError("Mentorship program already exists")
	}
	logger.Error().Err(err).Str("op", op).Msg("Mentorship program query failed")
	return fmt.Errorf("error executing %s: %w", op, err)
}

func (r *MentorshipProgramRepository) queryOne(ctx context.Context, op string, q squirrel.Sqlizer) (*models.MentorshipProgram, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		logger.Error().Err(err).Str("op", op).Msg("Error building SQL")
		return nil, fmt.Errorf("failed to build %s query: %w", op, err)
	}
	program, err := scanProgram(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, r.classify(err, op)
	}
	return program, nil
}

func (r *MentorshipProgramRepository) queryMany(ctx context.Context, op string, q squirrel.Sqlizer) ([]*models.MentorshipProgram, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		logger.Error().Err(err).Str("op", op).Msg("Error building SQL")
		return nil, fmt.Errorf("failed to build %s query: %w", op, err)
	}
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, r.classify(err, op)
	}
	defer rows.Close()

	programs := make([]*models.MentorshipProgram, 0)
	for rows.Next() {
		p, err := scanProgram(rows)
		if err != nil {
			return nil, r.classify(err, op)
		}
		programs = append(programs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, r.classify(err, op)
	}
	return programs, nil
}

func (r *MentorshipProgramRepository) returning() string {
	return "RETURNING " + joinColumns(r.columns)
}

// Create stores a program with its mentor id in lookup.Column
func (r *MentorshipProgramRepository) Create(ctx context.Context, program *models.MentorshipProgram, lookup models.MentorLookup) (*models.MentorshipProgram, error) {
	q := r.sb.Insert(programsTable).
		Columns("title", "description", "mentor_type", lookup.Column, "mentee_id").
		Values(program.Title, program.Description, string(lookup.Kind), program.MentorID, program.MenteeID).
		Suffix(r.returning())
	return r.queryOne(ctx, "create mentorship program", q)
}

// Count returns the number of stored programs
func (r *MentorshipProgramRepository) Count(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From(programsTable).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count mentorship programs query: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, r.classify(err, "count mentorship programs")
	}
	return total, nil
}

// FindAll returns one page of programs ordered by id
func (r *MentorshipProgramRepository) FindAll(ctx context.Context, offset, limit uint64) ([]*models.MentorshipProgram, error) {
	q := r.sb.Select(r.columns...).
		From(programsTable).
		OrderBy("id ASC").
		Offset(offset).
		Limit(limit)
	return r.queryMany(ctx, "list mentorship programs", q)
}

// FindOne returns the program with the given id
func (r *MentorshipProgramRepository) FindOne(ctx context.Context, id int64) (*models.MentorshipProgram, error) {
	q := r.sb.Select(r.columns...).
		From(programsTable).
		Where(squirrel.Eq{"id": id}).
		Limit(1)
	return r.queryOne(ctx, "get mentorship program", q)
}

// FindByMentor returns every program whose lookup.Column equals mentorID.
// No match yields an empty slice.
func (r *MentorshipProgramRepository) FindByMentor(ctx context.Context, mentorID int64, lookup models.MentorLookup) ([]*models.MentorshipProgram, error) {
	q := r.sb.Select(r.columns...).
		From(programsTable).
		Where(squirrel.Eq{lookup.Column: mentorID}).
		OrderBy("id ASC")
	return r.queryMany(ctx, "list mentorship programs by mentor", q)
}

// Update applies the non-nil fields of update. When lookup is set the
// mentor moves to lookup.Column and the other mentor columns are cleared.
func (r *MentorshipProgramRepository) Update(ctx context.Context, id int64, update models.MentorshipProgramUpdate, lookup *models.MentorLookup) (*models.MentorshipProgram, error) {
	q := r.sb.Update(programsTable).Where(squirrel.Eq{"id": id})
	if update.Title != nil {
		q = q.Set("title", *update.Title)
	}
	if update.Description != nil {
		q = q.Set("description", *update.Description)
	}
	if lookup != nil && update.MentorID != nil {
		q = q.Set("mentor_type", string(lookup.Kind)).Set(lookup.Column, *update.MentorID)
		for _, c := range lookup.Clear {
			q = q.Set(c, nil)
		}
	}
	if update.MenteeID != nil {
		q = q.Set("mentee_id", *update.MenteeID)
	}
	q = q.Set("updated_at", squirrel.Expr("NOW()")).Suffix(r.returning())
	return r.queryOne(ctx, "update mentorship program", q)
}

// Remove deletes the program and returns it as it was
func (r *MentorshipProgramRepository) Remove(ctx context.Context, id int64) (*models.MentorshipProgram, error) {
	q := r.sb.Delete(programsTable).
		Where(squirrel.Eq{"id": id}).
		Suffix(r.returning())
	return r.queryOne(ctx, "delete mentorship program", q)
}
