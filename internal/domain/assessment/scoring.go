package assessment

import (
	"errors"
	"fmt"
)

// ErrScoreOutOfRange is returned by ClassifySeverity when the score cannot
// have been produced by the instrument. Scores are never clamped.
var ErrScoreOutOfRange = errors.New("score out of range")

// Score sums the answer values for the given instrument. Every answer must
// reference a known question id and use a value on the response scale.
// Completeness is not checked here; that is the session's concern.
func Score(inst *Instrument, answers map[string]int) (int, error) {
	total := 0
	for questionID, value := range answers {
		if _, ok := inst.item(questionID); !ok {
			return 0, fmt.Errorf("unknown question id %q for %s", questionID, inst.Code)
		}
		if _, ok := inst.optionLabel(value); !ok {
			return 0, fmt.Errorf("answer value %d for %q is not on the response scale", value, questionID)
		}
		total += value
	}
	return total, nil
}

// MaxScore returns the highest score the instrument can produce.
func (inst *Instrument) MaxScore() int {
	maxOption := 0
	for _, o := range inst.Options {
		if o.Value > maxOption {
			maxOption = o.Value
		}
	}
	return maxOption * len(inst.Items)
}

type severityBand struct {
	min   int
	max   int
	label string
}

// Published severity bands. Lookup is by inclusive lower and upper bound.
var severityBands = map[string][]severityBand{
	CodePHQ9: {
		{0, 4, "None-Minimal"},
		{5, 9, "Mild"},
		{10, 14, "Moderate"},
		{15, 19, "Moderately Severe"},
		{20, 27, "Severe"},
	},
	CodeGAD7: {
		{0, 4, "Minimal Anxiety"},
		{5, 9, "Mild Anxiety"},
		{10, 14, "Moderate Anxiety"},
		{15, 21, "Severe Anxiety"},
	},
}

// ClassifySeverity maps a total score to its severity label for the given
// test type. A negative score or one above the instrument maximum is an
// error wrapping ErrScoreOutOfRange.
func ClassifySeverity(testType string, score int) (string, error) {
	bands, ok := severityBands[testType]
	if !ok {
		return "", fmt.Errorf("unknown instrument %q", testType)
	}
	for _, b := range bands {
		if score >= b.min && score <= b.max {
			return b.label, nil
		}
	}
	return "", fmt.Errorf("%w: %d for %s", ErrScoreOutOfRange, score, testType)
}
