package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID               int64    `json:"id,string" db:"id" example:"1"`
	FirstName        string   `json:"firstName" db:"first_name" example:"Ada"`
	LastName         string   `json:"lastName" db:"last_name" example:"Lovelace"`
	Email            string   `json:"email" db:"email" example:"ada@alumni.example.edu"`
	Mobile           string   `json:"mobile" db:"mobile" example:"09876543210"`
	Branch           string   `json:"branch" db:"branch" example:"CSE"`
	EnrollmentNumber int64    `json:"enrollmentNumber" db:"enrollment_number" example:"2019001"`
	Password         string   `json:"-" db:"password"` // bcrypt hash, never serialized
	Role             RoleType `json:"role" db:"role" example:"ALUMNI"`
	Section          string   `json:"section" db:"section" example:"A"`
	PassingYear      int      `json:"passingYear" db:"passing_year" example:"2023"`
	FathersName      string   `json:"fathersName" db:"fathers_name"`
	MothersName      string   `json:"mothersName" db:"mothers_name"`
	Hobby            string   `json:"hobby" db:"hobby"`
	ParentsPhone     string   `json:"parentsPhone" db:"parents_phone"`
	FacultyID        int64    `json:"facultyId" db:"faculty_id" example:"1"`
	SocietyID        int64    `json:"societyId" db:"society_id" example:"1"`

	// Set only through updates
	IsApproved            bool    `json:"isApproved" db:"is_approved"`
	IsVerified            bool    `json:"isVerified" db:"is_verified"`
	ProfilePictureURL     *string `json:"profilePictureUrl,omitempty" db:"profile_picture_url"`
	GithubProfileURL      *string `json:"githubProfileUrl,omitempty" db:"github_profile_url"`
	LinkedInProfileURL    *string `json:"linkedInProfileUrl,omitempty" db:"linkedin_profile_url"`
	TwitterProfileURL     *string `json:"twitterProfileUrl,omitempty" db:"twitter_profile_url"`
	GfgProfileURL         *string `json:"gfgProfileUrl,omitempty" db:"gfg_profile_url"`
	CodingNinjaProfileURL *string `json:"codingNinjaProfileUrl,omitempty" db:"coding_ninja_profile_url"`
	LeetcodeProfileURL    *string `json:"leetcodeProfileUrl,omitempty" db:"leetcode_profile_url"`
	CodeforcesProfileURL  *string `json:"codeforcesProfileUrl,omitempty" db:"codeforces_profile_url"`
	InstagramProfileURL   *string `json:"instagramProfileUrl,omitempty" db:"instagram_profile_url"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// UserUpdate maps column names to new values for a partial update.
// Only present fields end up in the map.
type UserUpdate map[string]interface{}

// IsEmpty reports whether the update changes nothing
func (u UserUpdate) IsEmpty() bool {
	return len(u) == 0
}
