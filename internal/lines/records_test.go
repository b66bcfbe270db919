package lines

import (
	"testing"

	"github.com/pstuifzand/tui-codesurfer/internal/model"
	"github.com/stretchr/testify/assert"
)

func newStep(ids ...int) model.Step {
	step := model.Step{Focus: map[int]model.Focus{}}
	for _, id := range ids {
		step.Lines = append(step.Lines, model.LineID(id))
	}
	return step
}

func withSkip(step model.Step, ranges ...[2]int) model.Step {
	for _, r := range ranges {
		step.SkipRows = append(step.SkipRows, model.SkipRange{Start: r[0], End: r[1]})
	}
	return step
}

func skipFlags(records []model.LineRecord) (inside, markers []bool) {
	for _, r := range records {
		inside = append(inside, r.InsideSkip)
		markers = append(markers, r.IsTransition)
	}
	return inside, markers
}

func TestRecordizeBasics(t *testing.T) {
	step := newStep(10, 11, 12)
	step.Focus[1] = model.LineFocus

	records := Recordize(step)

	assert.Len(t, records, 3)
	for i, r := range records {
		assert.Equal(t, step.Lines[i], r.ID)
		assert.Equal(t, i+1, r.LineNumber)
		assert.False(t, r.InsideSkip)
		assert.False(t, r.IsTransition)
	}
	assert.Equal(t, model.NoFocus, records[0].Focus)
	assert.Equal(t, model.LineFocus, records[1].Focus)
}

func TestRecordizeSkipRanges(t *testing.T) {
	tests := []struct {
		name    string
		lines   int
		ranges  [][2]int
		inside  []bool
		markers []bool
	}{
		{
			name:    "single range marks its first line",
			lines:   4,
			ranges:  [][2]int{{2, 3}},
			inside:  []bool{false, true, true, false},
			markers: []bool{false, true, false, false},
		},
		{
			name:    "overlapping ranges collapse into one run",
			lines:   6,
			ranges:  [][2]int{{1, 3}, {2, 5}},
			inside:  []bool{true, true, true, true, true, false},
			markers: []bool{true, false, false, false, false, false},
		},
		{
			name:    "adjacent ranges collapse into one run",
			lines:   5,
			ranges:  [][2]int{{1, 2}, {3, 4}},
			inside:  []bool{true, true, true, true, false},
			markers: []bool{true, false, false, false, false},
		},
		{
			name:    "separate ranges get a marker each",
			lines:   4,
			ranges:  [][2]int{{1, 1}, {3, 4}},
			inside:  []bool{true, false, true, true},
			markers: []bool{true, false, true, false},
		},
		{
			name:    "inverted range skips nothing",
			lines:   3,
			ranges:  [][2]int{{3, 1}},
			inside:  []bool{false, false, false},
			markers: []bool{false, false, false},
		},
		{
			name:    "range beyond the listing skips nothing",
			lines:   3,
			ranges:  [][2]int{{7, 9}},
			inside:  []bool{false, false, false},
			markers: []bool{false, false, false},
		},
		{
			name:    "zero position never matches a line",
			lines:   3,
			ranges:  [][2]int{{0, 0}},
			inside:  []bool{false, false, false},
			markers: []bool{false, false, false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids := make([]int, tt.lines)
			for i := range ids {
				ids[i] = i
			}
			inside, markers := skipFlags(Recordize(withSkip(newStep(ids...), tt.ranges...)))
			assert.Equal(t, tt.inside, inside)
			assert.Equal(t, tt.markers, markers)
		})
	}
}

func TestSkippedAndTransitionRows(t *testing.T) {
	step := withSkip(newStep(0, 1, 2, 3, 4, 5, 6), [2]int{2, 3}, [2]int{3, 4}, [2]int{6, 6}, [2]int{9, 12})

	assert.Equal(t, []int{2, 3, 4, 6}, SkippedRows(step))
	assert.Equal(t, 2, TransitionRows(step))

	assert.Empty(t, SkippedRows(newStep(0, 1)))
	assert.Equal(t, 0, TransitionRows(newStep()))
}
