package services

import (
	"context"
	"fmt"

	"github.com/yigit/alumni/internal/app/models"
	"github.com/yigit/alumni/internal/app/models/dto"
	"github.com/yigit/alumni/internal/pkg/helpers"
	"github.com/yigit/alumni/internal/pkg/logger"
)

// MentorshipProgramStore is the persistence the program service needs.
// *repositories.MentorshipProgramRepository implements it.
type MentorshipProgramStore interface {
	Create(ctx context.Context, program *models.MentorshipProgram, lookup models.MentorLookup) (*models.MentorshipProgram, error)
	Count(ctx context.Context) (int64, error)
	FindAll(ctx context.Context, offset, limit uint64) ([]*models.MentorshipProgram, error)
	FindOne(ctx context.Context, id int64) (*models.MentorshipProgram, error)
	FindByMentor(ctx context.Context, mentorID int64, lookup models.MentorLookup) ([]*models.MentorshipProgram, error)
	Update(ctx context.Context, id int64, update models.MentorshipProgramUpdate, lookup *models.MentorLookup) (*models.MentorshipProgram, error)
	Remove(ctx context.Context, id int64) (*models.MentorshipProgram, error)
}

// MentorshipProgramService defines mentorship program operations
type MentorshipProgramService interface {
	Create(ctx context.Context, req *dto.CreateMentorshipProgramRequest) (*models.MentorshipProgram, error)
	FindAll(ctx context.Context, page, size int) (*dto.MentorshipProgramListResponse, error)
	FindOne(ctx context.Context, id int64) (*models.MentorshipProgram, error)
	FindByMentor(ctx context.Context, mentorID int64, kind string) ([]*models.MentorshipProgram, error)
	Update(ctx context.Context, id int64, update models.MentorshipProgramUpdate) (*models.MentorshipProgram, error)
	Remove(ctx context.Context, id int64) (*models.MentorshipProgram, error)
}

type mentorshipProgramServiceImpl struct {
	store MentorshipProgramStore
}

// NewMentorshipProgramService creates a new mentorship program service
func NewMentorshipProgramService(store MentorshipProgramStore) MentorshipProgramService {
	return &mentorshipProgramServiceImpl{store: store}
}

// Create stores a program, writing the mentor id into the column its kind routes to
func (s *mentorshipProgramServiceImpl) Create(ctx context.Context, req *dto.CreateMentorshipProgramRequest) (*models.MentorshipProgram, error) {
	lookup, err := RouteMentorLookup(string(req.MentorType))
	if err != nil {
		return nil, err
	}

	program, err := s.store.Create(ctx, req.ToModel(), lookup)
	if err != nil {
		return nil, fmt.Errorf("error creating mentorship program: %w", err)
	}

	logger.Info().Int64("programId", program.ID).Str("mentorType", string(lookup.Kind)).Msg("Mentorship program created")
	return program, nil
}

// FindAll returns one page of programs with pagination metadata
func (s *mentorshipProgramServiceImpl) FindAll(ctx context.Context, page, size int) (*dto.MentorshipProgramListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	total, err := s.store.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting mentorship programs: %w", err)
	}

	programs, err := s.store.FindAll(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing mentorship programs: %w", err)
	}

	return &dto.MentorshipProgramListResponse{
		Items:      programs,
		Pagination: helpers.NewPaginationInfo(total, page, int(limit)),
	}, nil
}

// FindOne returns a single program
func (s *mentorshipProgramServiceImpl) FindOne(ctx context.Context, id int64) (*models.MentorshipProgram, error) {
	program, err := s.store.FindOne(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting mentorship program: %w", err)
	}
	return program, nil
}

// FindByMentor lists the programs of one mentor. The kind is routed first
// so an unknown kind never reaches the store.
func (s *mentorshipProgramServiceImpl) FindByMentor(ctx context.Context, mentorID int64, kind string) ([]*models.MentorshipProgram, error) {
	lookup, err := RouteMentorLookup(kind)
	if err != nil {
		return nil, err
	}

	programs, err := s.store.FindByMentor(ctx, mentorID, lookup)
	if err != nil {
		return nil, fmt.Errorf("error listing programs for mentor: %w", err)
	}
	if programs == nil {
		programs = []*models.MentorshipProgram{}
	}
	return programs, nil
}

// Update applies a partial update. An empty update writes nothing and
// returns the current record.
func (s *mentorshipProgramServiceImpl) Update(ctx context.Context, id int64, update models.MentorshipProgramUpdate) (*models.MentorshipProgram, error) {
	if update.IsEmpty() {
		return s.FindOne(ctx, id)
	}

	var lookup *models.MentorLookup
	if update.MentorType != nil {
		routed, err := RouteMentorLookup(string(*update.MentorType))
		if err != nil {
			return nil, err
		}
		lookup = &routed
	}

	program, err := s.store.Update(ctx, id, update, lookup)
	if err != nil {
		return nil, fmt.Errorf("error updating mentorship program: %w", err)
	}
	return program, nil
}

// Remove deletes a program and returns the deleted record
func (s *mentorshipProgramServiceImpl) Remove(ctx context.Context, id int64) (*models.MentorshipProgram, error) {
	program, err := s.store.Remove(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error deleting mentorship program: %w", err)
	}
	logger.Info().Int64("programId", id).Msg("Mentorship program deleted")
	return program, nil
}
