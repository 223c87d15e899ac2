package frameseq

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSyntax  = errors.New("invalid clause syntax")
	ErrInvalidInteger = errors.New("invalid integer")
	ErrInvalidStep    = errors.New("invalid step")
)

// ParseError is the error type returned by Parse. Err is one of the Err*
// sentinels, so errors.Is selects on the failure kind; Token is the clause
// or token text that failed.
type ParseError struct {
	Err   error
	Token string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %q", e.Err, e.Token)
}

func (e *ParseError) Unwrap() error { return e.Err }

func syntaxErr(clause string) error {
	return &ParseError{Err: ErrInvalidSyntax, Token: clause}
}

// Unique drops repeated frames, keeping the first occurrence of each.
// Parse never deduplicates on its own; callers that want set semantics
// across overlapping clauses apply Unique to its result.
func Unique(frames []int64) []int64 {
	seen := make(map[int64]struct{}, len(frames))
	out := make([]int64, 0, len(frames))
	for _, f := range frames {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}
