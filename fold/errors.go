package fold

import "github.com/pkg/errors"

var (
	// ErrEmptyUnseeded is returned when a fold without a seed is requested
	// over an empty array or an empty innermost dimension.
	ErrEmptyUnseeded = errors.New("fold without seed over empty input")

	// ErrRankMismatch is returned when a fold is requested over an array
	// whose rank does not fit the requested kernel family.
	ErrRankMismatch = errors.New("rank mismatch")

	// ErrInvalidRank is returned by Select for negative ranks.
	ErrInvalidRank = errors.New("invalid rank")
)
