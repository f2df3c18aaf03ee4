package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	appModels "github.com/yigit/alumni/internal/app/models"
	appRepos "github.com/yigit/alumni/internal/app/repositories"
	appServices "github.com/yigit/alumni/internal/app/services"
	"github.com/yigit/alumni/internal/db"
	"github.com/yigit/alumni/internal/pkg/apperrors"
	"github.com/yigit/alumni/internal/pkg/logger"
)

// Hasher hashes the demo passwords
type Hasher interface {
	Hash(password string) (string, error)
}

// DemoPassword is the password of every seeded account
const DemoPassword = "alumni-demo"

// marker is the account whose presence means the demo data exists
const marker = "faculty.mentor@alumni.example.edu"

func demoUsers() []*appModels.User {
	base := func(first, last, email string, enrollment int64, role appModels.RoleType, year int) *appModels.User {
		return &appModels.User{
			FirstName: first, LastName: last, Email: email, Mobile: "09000000000",
			Branch: "CSE", EnrollmentNumber: enrollment, Role: role, Section: "A",
			PassingYear: year, FathersName: "-", MothersName: "-", Hobby: "-",
			ParentsPhone: "09000000001", FacultyID: 1, SocietyID: 1,
		}
	}
	return []*appModels.User{
		base("Grace", "Hopper", marker, 1000001, appModels.RoleFaculty, 1934),
		base("Linus", "Torvalds", "alumni.mentor@alumni.example.edu", 1000002, appModels.RoleAlumni, 1996),
		base("Margaret", "Hamilton", "student.mentee@alumni.example.edu", 1000003, appModels.RoleStudent, 2027),
	}
}

// CreateDemoData inserts a faculty mentor, an alumni mentor, a student and
// one program per mentor kind. It runs in one transaction and does nothing
// when the demo data is already there.
func CreateDemoData(ctx context.Context, b db.Beginner, hasher Hasher) error {
	hash, err := hasher.Hash(DemoPassword)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	return db.WithTransaction(ctx, b, func(ctx context.Context, tx pgx.Tx) error {
		repos := appRepos.NewRepositories(tx, appServices.MentorColumns())

		_, err := repos.UserRepository.FindByEmail(ctx, marker)
		if err == nil {
			logger.Info().Msg("Demo data already present, skipping seed")
			return nil
		}
		if !errors.Is(err, apperrors.ErrResourceNotFound) {
			return err
		}

		created := make([]*appModels.User, 0, 3)
		for _, u := range demoUsers() {
			u.Password = hash
			user, err := repos.UserRepository.Create(ctx, u)
			if err != nil {
				return fmt.Errorf("seed user %s: %w", u.Email, err)
			}
			created = append(created, user)
		}
		faculty, alumni, student := created[0], created[1], created[2]

		programs := []struct {
			title  string
			kind   appModels.MentorKind
			mentor int64
		}{
			{"Research mentorship", appModels.MentorFaculty, faculty.ID},
			{"Industry mentorship", appModels.MentorAlumni, alumni.ID},
		}
		for _, p := range programs {
			lookup, err := appServices.RouteMentorLookup(string(p.kind))
			if err != nil {
				return err
			}
			mentee := student.ID
			program := &appModels.MentorshipProgram{
				Title:       p.title,
				Description: "Seeded demo program",
				MentorType:  p.kind,
				MentorID:    p.mentor,
				MenteeID:    &mentee,
			}
			if _, err := repos.MentorshipProgramRepository.Create(ctx, program, lookup); err != nil {
				return fmt.Errorf("seed program %q: %w", p.title, err)
			}
		}

		logger.Info().Int("users", len(created)).Int("programs", len(programs)).Msg("Demo data created")
		return nil
	})
}
