package models

import "time"

// MentorshipProgram pairs one mentor of a given kind with a mentee.
// Identifiers are serialized as decimal strings so clients with
// float64-only number decoding do not lose precision.
type MentorshipProgram struct {
	ID          int64      `json:"id,string" db:"id" example:"1"`
	Title       string     `json:"title" db:"title" example:"Backend engineering track"`
	Description string     `json:"description" db:"description" example:"Weekly sessions on Go services"`
	MentorType  MentorKind `json:"mentorType" db:"mentor_type" example:"faculty"`
	MentorID    int64      `json:"mentorId,string" db:"mentor_id" example:"42"`
	MenteeID    *int64     `json:"menteeId,string,omitempty" db:"mentee_id" example:"7"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}

// MentorshipProgramUpdate holds the fields of a partial update. A nil
// field is left unchanged.
type MentorshipProgramUpdate struct {
	Title       *string
	Description *string
	MentorType  *MentorKind
	MentorID    *int64
	MenteeID    *int64
}

// IsEmpty reports whether the update changes nothing
func (u MentorshipProgramUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.MentorType == nil &&
		u.MentorID == nil && u.MenteeID == nil
}

// MentorLookup tells the store which mentor column a kind lives in.
// Clear lists the columns of the other kinds, which must be NULL when a
// program is written with this kind.
type MentorLookup struct {
	Kind   MentorKind
	Column string
	Clear  []string
}
