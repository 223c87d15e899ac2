package frameseq

import (
	"math"
	"strconv"
	"strings"
)

// Format renders frames in the compact notation understood by Parse.
//
// Runs of three or more frames spaced by a uniform stride collapse into a
// range clause, ascending or descending as written; all other frames are
// written individually. Binary-split clauses are never produced, so any
// frame slice round-trips: Parse(Format(frames)) returns frames exactly.
func Format(frames []int64) string {
	var sb strings.Builder
	for i := 0; i < len(frames); {
		if i > 0 {
			sb.WriteByte(',')
		}
		if n := runLength(frames[i:]); n >= 3 {
			writeRange(&sb, frames[i], frames[i+n-1], frames[i+1]-frames[i])
			i += n
			continue
		}
		sb.WriteString(strconv.FormatInt(frames[i], 10))
		i++
	}
	return sb.String()
}

// runLength counts the leading frames spaced by one repeated stride. A
// zero stride never forms a run ("5-5" expands to a single frame, not a
// repeated one), and neither does a stride whose magnitude cannot be
// written as a positive step.
func runLength(frames []int64) int {
	if len(frames) < 2 {
		return len(frames)
	}
	d := frames[1] - frames[0]
	if d == 0 || d == math.MinInt64 || (d > 0) != (frames[1] > frames[0]) {
		return 1
	}

	n := 2
	for n < len(frames) {
		next := frames[n-1] + d
		// stop at the int64 boundary instead of wrapping past it
		if (d > 0 && next < frames[n-1]) || (d < 0 && next > frames[n-1]) {
			break
		}
		if frames[n] != next {
			break
		}
		n++
	}
	return n
}

func writeRange(sb *strings.Builder, first, last, stride int64) {
	sb.WriteString(strconv.FormatInt(first, 10))
	sb.WriteByte('-')
	sb.WriteString(strconv.FormatInt(last, 10))
	if stride < 0 {
		stride = -stride
	}
	if stride != 1 {
		sb.WriteByte('@')
		sb.WriteString(strconv.FormatInt(stride, 10))
	}
}
