package mood

import "math"

// Frame is one facial-expression detection: a confidence per basic emotion,
// each in [0,1]. The channel set matches common browser-side expression
// detectors, which emit all seven on every detection.
type Frame struct {
	Neutral   float64 `json:"neutral"`
	Happy     float64 `json:"happy"`
	Sad       float64 `json:"sad"`
	Angry     float64 `json:"angry"`
	Fearful   float64 `json:"fearful"`
	Disgusted float64 `json:"disgusted"`
	Surprised float64 `json:"surprised"`
}

// Emotions lists the channel names in wire order.
var Emotions = []string{"neutral", "happy", "sad", "angry", "fearful", "disgusted", "surprised"}

func (f Frame) channels() [7]float64 {
	return [7]float64{f.Neutral, f.Happy, f.Sad, f.Angry, f.Fearful, f.Disgusted, f.Surprised}
}

// valid reports whether every channel is a finite value in [0,1].
func (f Frame) valid() bool {
	for _, v := range f.channels() {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > 1 {
			return false
		}
	}
	return true
}

// Result is a point-in-time mood estimate derived from recent frames. Each
// snapshot supersedes the previous one; nothing is accumulated here. The
// scores are heuristic wellbeing indicators, not clinical measurements.
type Result struct {
	DominantMood    string             `json:"dominant_mood"`
	Confidence      float64            `json:"confidence"`
	DepressionScore float64            `json:"depression_score"`
	AnxietyScore    float64            `json:"anxiety_score"`
	Expressions     map[string]float64 `json:"expressions"`
}
