package rating

import (
	"strings"
	"unicode/utf8"

	"fervo/internal/pkg/errs"
)

const (
	MinScore         = 1
	MaxScore         = 5
	MaxCommentLength = 1000
)

var (
	ErrInvalidScore     = errs.New("rating must be between 1 and 5")
	ErrCommentTooLong   = errs.New("comment exceeds maximum length")
	ErrNotEligible      = errs.New("only checked-in guests can rate this event")
	ErrRatingNotFound   = errs.New("rating not found")
	ErrEmptyAggregate   = errs.New("cannot remove a rating from an empty aggregate")
	ErrInvalidAggregate = errs.New("invalid rating aggregate")
)

type Score struct {
	value int
}

func NewScore(v int) (Score, error) {
	if v < MinScore || v > MaxScore {
		return Score{}, ErrInvalidScore
	}
	return Score{value: v}, nil
}

func (s Score) Value() int { return s.value }

// Comment is optional; the zero value is an empty comment.
type Comment struct {
	text string
}

func NewComment(s string) (Comment, error) {
	t := strings.TrimSpace(s)
	if utf8.RuneCountInString(t) > MaxCommentLength {
		return Comment{}, ErrCommentTooLong
	}
	return Comment{text: t}, nil
}

func (c Comment) String() string { return c.text }
func (c Comment) IsEmpty() bool  { return c.text == "" }
