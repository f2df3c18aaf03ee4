// Package identifier converts path parameters into the int64 identifiers
// used by the store.
package identifier

import (
	"strconv"

	"github.com/yigit/alumni/internal/pkg/apperrors"
)

// Client-facing messages for rejected identifiers.
const (
	MsgInvalidProgramID = "Invalid program ID"
	MsgInvalidMentorID  = "Invalid mentor ID"
	MsgInvalidUserID    = "Invalid user ID"
)

// Parse returns raw as an int64. Only a decimal literal with an optional
// sign is accepted; surrounding whitespace, other bases and values outside
// the int64 range are rejected with apperrors.ErrInvalidIdentifier.
func Parse(raw string) (int64, error) {
	return parse(raw, "Invalid identifier")
}

// ParseProgramID parses a mentorship program id.
func ParseProgramID(raw string) (int64, error) {
	return parse(raw, MsgInvalidProgramID)
}

// ParseMentorID parses a mentor id.
func ParseMentorID(raw string) (int64, error) {
	return parse(raw, MsgInvalidMentorID)
}

// ParseUserID parses a user id.
func ParseUserID(raw string) (int64, error) {
	return parse(raw, MsgInvalidUserID)
}

func parse(raw, message string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperrors.NewInvalidIdentifierError(message, raw)
	}
	return id, nil
}
