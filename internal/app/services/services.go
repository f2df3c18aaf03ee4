package services

import (
	"github.com/yigit/alumni/internal/app/repositories"
)

// Services holds every application service
type Services struct {
	MentorshipProgram MentorshipProgramService
	User              UserService
}

// NewServices wires the services onto their repositories
func NewServices(repos *repositories.Repositories, hasher PasswordHasher) *Services {
	return &Services{
		MentorshipProgram: NewMentorshipProgramService(repos.MentorshipProgramRepository),
		User:              NewUserService(repos.UserRepository, hasher),
	}
}
