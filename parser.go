package frameseq

import (
	"strconv"
	"strings"
)

// Parse expands a frame sequence string into the frames it denotes.
//
// The input is a comma-separated list of clauses; each clause is either a
// single frame number or a range with an optional step (see the package
// documentation for the grammar). Clause outputs are concatenated in
// writing order with duplicates preserved. Parsing is all-or-nothing: the
// first invalid clause aborts with a *ParseError and no frames are
// returned.
func Parse(input string) ([]int64, error) {
	clauses := strings.Split(input, ",")
	frames := make([]int64, 0, len(clauses))
	for _, clause := range clauses {
		expanded, err := evalClause(strings.Trim(clause, " \t"))
		if err != nil {
			return nil, err
		}
		frames = append(frames, expanded...)
	}
	return frames, nil
}

// evalClause expands one comma-delimited clause.
func evalClause(clause string) ([]int64, error) {
	if clause == "" {
		return nil, syntaxErr(clause)
	}

	// a '-' past the leading sign position separates the bounds of a range;
	// without one the whole clause is a single frame literal.
	sep := strings.IndexByte(clause[1:], '-')
	if sep < 0 {
		f, err := parseFrame(clause)
		if err != nil {
			return nil, err
		}
		return []int64{f}, nil
	}
	sep++

	rest := clause[sep+1:]
	endTok, stepTok, hasStep := strings.Cut(rest, "@")
	switch {
	case endTok == "":
		// missing second bound: "10-" or "10-@2"
		return nil, syntaxErr(clause)
	case strings.IndexByte(endTok[1:], '-') >= 0:
		// a second bound may carry a leading sign but no further '-'
		return nil, syntaxErr(clause)
	case hasStep && stepTok == "":
		// dangling '@'
		return nil, syntaxErr(clause)
	}

	start, err := parseFrame(clause[:sep])
	if err != nil {
		return nil, err
	}
	end, err := parseFrame(endTok)
	if err != nil {
		return nil, err
	}

	if !hasStep {
		return expandStride(start, end, 1), nil
	}
	if stepTok == "b" {
		return expandBinary(start, end), nil
	}
	step, err := strconv.ParseInt(stepTok, 10, 64)
	if err != nil || step <= 0 || stepTok[0] == '+' {
		return nil, &ParseError{Err: ErrInvalidStep, Token: stepTok}
	}
	return expandStride(start, end, step), nil
}

func parseFrame(tok string) (int64, error) {
	// the grammar admits a leading '-' only, but strconv also takes '+'
	if strings.HasPrefix(tok, "+") {
		return 0, &ParseError{Err: ErrInvalidInteger, Token: tok}
	}
	f, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, &ParseError{Err: ErrInvalidInteger, Token: tok}
	}
	return f, nil
}

// expandStride emits start, start±step, ... stopping at the last value that
// does not pass end; end itself appears only when the step lands on it
// exactly. Offsets are carried in uint64 so a range spanning the whole
// int64 domain cannot wrap.
func expandStride(start, end, step int64) []int64 {
	if start == end {
		return []int64{start}
	}

	asc := start < end
	var dist uint64
	if asc {
		dist = uint64(end) - uint64(start)
	} else {
		dist = uint64(start) - uint64(end)
	}

	s := uint64(step)
	frames := make([]int64, 0, dist/s+1)
	for off := uint64(0); ; off += s {
		if asc {
			frames = append(frames, int64(uint64(start)+off))
		} else {
			frames = append(frames, int64(uint64(start)-off))
		}
		if dist-off < s {
			break
		}
	}
	return frames
}

type interval struct{ lo, hi int64 }

// expandBinary emits both endpoints and then interval midpoints in
// breadth-first order, so every prefix of the result spreads roughly
// evenly across the range. A FIFO worklist rather than recursion keeps
// emission ordered by depth and the stack flat on huge ranges.
func expandBinary(start, end int64) []int64 {
	if start == end {
		return []int64{start}
	}

	frames := []int64{start, end}
	worklist := []interval{{start, end}}
	for len(worklist) > 0 {
		iv := worklist[0]
		worklist = worklist[1:]

		mid := midpoint(iv.lo, iv.hi)
		if mid == iv.lo || mid == iv.hi {
			continue
		}
		frames = append(frames, mid)
		worklist = append(worklist, interval{iv.lo, mid}, interval{mid, iv.hi})
	}
	return frames
}

// midpoint moves from lo toward hi by half the distance, truncating toward
// lo. Computed through uint64 because |hi-lo| may exceed MaxInt64.
func midpoint(lo, hi int64) int64 {
	if lo < hi {
		return int64(uint64(lo) + (uint64(hi)-uint64(lo))/2)
	}
	return int64(uint64(lo) - (uint64(lo)-uint64(hi))/2)
}
