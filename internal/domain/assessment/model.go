package assessment

import "time"

// AnswerRecord is a snapshot of one answered question inside a submitted
// result. It carries the question text and option label as they were at
// submission time, so stored results stay readable even if wording changes.
type AnswerRecord struct {
	Question string `json:"question"`
	Option   string `json:"answer"`
	Score    int    `json:"score"`
}

// Result is an immutable record of one completed assessment.
//
// Invariants: Score equals the sum of the answer scores, Answers has one
// record per instrument item in display order, and Severity equals
// ClassifySeverity(TestType, Score).
type Result struct {
	TestType string         `json:"test_type"`
	Score    int            `json:"score"`
	Severity string         `json:"severity"`
	Answers  []AnswerRecord `json:"answers"`
	Date     time.Time      `json:"date"`
}
