package assessment

import "fmt"

// QuestionItem is a single screening question. Items are defined at build
// time and their slice order is the display order.
type QuestionItem struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// ResponseOption is one point on the shared frequency scale.
type ResponseOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// Instrument is an immutable screening questionnaire definition.
type Instrument struct {
	Code    string           `json:"code"`
	Title   string           `json:"title"`
	Prompt  string           `json:"prompt"`
	Items   []QuestionItem   `json:"items"`
	Options []ResponseOption `json:"options"`
}

const (
	CodePHQ9 = "PHQ-9"
	CodeGAD7 = "GAD-7"
)

const screeningPrompt = "Over the last 2 weeks, how often have you been bothered by any of the following problems?"

// frequencyScale is the 4-point scale shared by both instruments.
var frequencyScale = []ResponseOption{
	{Value: 0, Label: "Not at all"},
	{Value: 1, Label: "Several days"},
	{Value: 2, Label: "More than half the days"},
	{Value: 3, Label: "Nearly every day"},
}

var phq9 = Instrument{
	Code:   CodePHQ9,
	Title:  "Patient Health Questionnaire-9",
	Prompt: screeningPrompt,
	Items: []QuestionItem{
		{ID: "phq9-1", Text: "Little interest or pleasure in doing things"},
		{ID: "phq9-2", Text: "Feeling down, depressed, or hopeless"},
		{ID: "phq9-3", Text: "Trouble falling or staying asleep, or sleeping too much"},
		{ID: "phq9-4", Text: "Feeling tired or having little energy"},
		{ID: "phq9-5", Text: "Poor appetite or overeating"},
		{ID: "phq9-6", Text: "Feeling bad about yourself or that you are a failure or have let yourself or your family down"},
		{ID: "phq9-7", Text: "Trouble concentrating on things, such as reading the newspaper or watching television"},
		{ID: "phq9-8", Text: "Moving or speaking so slowly that other people could have noticed, or the opposite being so fidgety or restless that you have been moving around a lot more than usual"},
		{ID: "phq9-9", Text: "Thoughts that you would be better off dead, or of hurting yourself"},
	},
	Options: frequencyScale,
}

var gad7 = Instrument{
	Code:   CodeGAD7,
	Title:  "Generalized Anxiety Disorder-7",
	Prompt: screeningPrompt,
	Items: []QuestionItem{
		{ID: "gad7-1", Text: "Feeling nervous, anxious, or on edge"},
		{ID: "gad7-2", Text: "Not being able to stop or control worrying"},
		{ID: "gad7-3", Text: "Worrying too much about different things"},
		{ID: "gad7-4", Text: "Trouble relaxing"},
		{ID: "gad7-5", Text: "Being so restless that it is hard to sit still"},
		{ID: "gad7-6", Text: "Becoming easily annoyed or irritable"},
		{ID: "gad7-7", Text: "Feeling afraid, as if something awful might happen"},
	},
	Options: frequencyScale,
}

var instruments = map[string]*Instrument{
	CodePHQ9: &phq9,
	CodeGAD7: &gad7,
}

// InstrumentByCode returns the instrument registered under code.
func InstrumentByCode(code string) (*Instrument, error) {
	inst, ok := instruments[code]
	if !ok {
		return nil, fmt.Errorf("unknown instrument %q", code)
	}
	return inst, nil
}

// Instruments returns all registered instruments in a stable order.
func Instruments() []*Instrument {
	return []*Instrument{&phq9, &gad7}
}

// item returns the question with the given id, if it belongs to the instrument.
func (inst *Instrument) item(questionID string) (QuestionItem, bool) {
	for _, q := range inst.Items {
		if q.ID == questionID {
			return q, true
		}
	}
	return QuestionItem{}, false
}

// optionLabel returns the scale label for a response value.
func (inst *Instrument) optionLabel(value int) (string, bool) {
	for _, o := range inst.Options {
		if o.Value == value {
			return o.Label, true
		}
	}
	return "", false
}
