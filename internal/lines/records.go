// Package lines computes how every line of a code listing moves from one
// step to the next.
//
// The pipeline is Recordize -> Align -> FadeOrder / Classify -> Build. The
// result of Build depends only on the two steps and the options, so callers
// may cache it per step pair and evaluate it once per animation frame.
package lines

import "github.com/pstuifzand/tui-codesurfer/internal/model"

// Recordize turns a step into one record per line, in document order
func Recordize(step model.Step) []model.LineRecord {
	records := make([]model.LineRecord, len(step.Lines))
	for i, id := range step.Lines {
		inside := insideSkip(step.SkipRows, i)
		records[i] = model.LineRecord{
			ID:           id,
			LineNumber:   i + 1,
			Focus:        step.FocusAt(i),
			InsideSkip:   inside,
			IsTransition: inside && (i == 0 || !records[i-1].InsideSkip),
		}
	}
	return records
}

// insideSkip reports whether the zero-based line index falls in any skip
// range. Ranges hold 1-based positions, so the index is shifted by one here
// and nowhere else.
func insideSkip(ranges []model.SkipRange, index int) bool {
	pos := index + 1
	for _, r := range ranges {
		if r.Contains(pos) {
			return true
		}
	}
	return false
}

// SkippedRows returns the sorted, de-duplicated 1-based positions covered by
// the step's skip ranges that refer to existing lines
func SkippedRows(step model.Step) []int {
	var rows []int
	for i := range step.Lines {
		if insideSkip(step.SkipRows, i) {
			rows = append(rows, i+1)
		}
	}
	return rows
}

// TransitionRows counts the maximal contiguous runs of skipped rows. Each
// run is drawn as a single gap row.
func TransitionRows(step model.Step) int {
	count := 0
	for _, r := range Recordize(step) {
		if r.IsTransition {
			count++
		}
	}
	return count
}
