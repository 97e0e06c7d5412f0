package mood

import (
	"math"
	"testing"

	"github.com/rs/zerolog"
)

func newTestAggregator(window int, alpha float64) *Aggregator {
	return NewAggregator(window, alpha, zerolog.Nop())
}

func TestSnapshot_EmptyWindow(t *testing.T) {
	a := newTestAggregator(10, 0.2)
	if _, ok := a.Snapshot(); ok {
		t.Error("expected no snapshot before any frames")
	}
}

func TestAddFrame_DropsNaN(t *testing.T) {
	a := newTestAggregator(10, 0.2)

	if a.AddFrame(Frame{Sad: math.NaN()}) {
		t.Error("expected NaN frame to be dropped")
	}
	if a.AddFrame(Frame{Happy: math.Inf(1)}) {
		t.Error("expected Inf frame to be dropped")
	}
	if a.AddFrame(Frame{Fearful: -0.1}) {
		t.Error("expected negative channel to be dropped")
	}
	if a.AddFrame(Frame{Surprised: 1.5}) {
		t.Error("expected out-of-range channel to be dropped")
	}
	if a.Dropped() != 4 {
		t.Errorf("expected 4 dropped frames, got %d", a.Dropped())
	}
	if _, ok := a.Snapshot(); ok {
		t.Error("dropped frames must not enter the window")
	}
}

func TestAddFrame_InvalidNeverPoisonsWindow(t *testing.T) {
	a := newTestAggregator(10, 1.0)
	a.AddFrame(Frame{Sad: 0.5, Happy: 0.5, Neutral: 0.5})
	a.AddFrame(Frame{Sad: math.NaN()})

	result, ok := a.Snapshot()
	if !ok {
		t.Fatal("expected snapshot from the valid frame")
	}
	if math.IsNaN(result.DepressionScore) || math.IsNaN(result.AnxietyScore) {
		t.Error("scores must stay finite after an invalid frame")
	}
}

func TestSnapshot_ScoreWeights(t *testing.T) {
	// With alpha=1 the EMA equals the raw window value, so the formula is
	// directly observable.
	a := newTestAggregator(10, 1.0)
	a.AddFrame(Frame{Sad: 1, Happy: 0, Fearful: 1, Surprised: 1})

	result, ok := a.Snapshot()
	if !ok {
		t.Fatal("expected snapshot")
	}

	// depression = 20*1 + 15*(1-0) = 35
	if math.Abs(result.DepressionScore-35) > 1e-9 {
		t.Errorf("expected depression 35, got %g", result.DepressionScore)
	}
	// anxiety = 25*1 + 15*1 = 40
	if math.Abs(result.AnxietyScore-40) > 1e-9 {
		t.Errorf("expected anxiety 40, got %g", result.AnxietyScore)
	}
}

func TestSnapshot_NeutralFaceBaseline(t *testing.T) {
	a := newTestAggregator(10, 1.0)
	a.AddFrame(Frame{Neutral: 1})

	result, _ := a.Snapshot()
	// depression = 20*0 + 15*(1-0) = 15; absence of happiness alone keeps a
	// small floor on the score.
	if math.Abs(result.DepressionScore-15) > 1e-9 {
		t.Errorf("expected depression 15, got %g", result.DepressionScore)
	}
	if result.AnxietyScore != 0 {
		t.Errorf("expected anxiety 0, got %g", result.AnxietyScore)
	}
	if result.DominantMood != "neutral" {
		t.Errorf("expected dominant neutral, got %s", result.DominantMood)
	}
	if result.Confidence != 1 {
		t.Errorf("expected confidence 1, got %g", result.Confidence)
	}
}

func TestSnapshot_WindowAverages(t *testing.T) {
	a := newTestAggregator(10, 1.0)
	a.AddFrame(Frame{Sad: 1, Happy: 1})
	a.AddFrame(Frame{Sad: 0, Happy: 0})

	result, _ := a.Snapshot()
	// avg(sad)=0.5, avg(happy)=0.5 -> 20*0.5 + 15*0.5 = 17.5
	if math.Abs(result.DepressionScore-17.5) > 1e-9 {
		t.Errorf("expected depression 17.5, got %g", result.DepressionScore)
	}
	if math.Abs(result.Expressions["sad"]-0.5) > 1e-9 {
		t.Errorf("expected avg sad 0.5, got %g", result.Expressions["sad"])
	}
}

func TestSnapshot_WindowEvictsOldest(t *testing.T) {
	a := newTestAggregator(2, 1.0)
	a.AddFrame(Frame{Sad: 1})
	a.AddFrame(Frame{Sad: 0})
	a.AddFrame(Frame{Sad: 0})

	result, _ := a.Snapshot()
	// The sad=1 frame fell out of the 2-frame window.
	if math.Abs(result.Expressions["sad"]) > 1e-9 {
		t.Errorf("expected avg sad 0 after eviction, got %g", result.Expressions["sad"])
	}
}

func TestSnapshot_SmoothingConverges(t *testing.T) {
	a := newTestAggregator(1, 0.2)
	a.AddFrame(Frame{Fearful: 1})

	var last Result
	for i := 0; i < 100; i++ {
		last, _ = a.Snapshot()
	}

	// Constant input: the EMA must converge to the raw value 25.
	if math.Abs(last.AnxietyScore-25) > 0.01 {
		t.Errorf("expected anxiety to converge to 25, got %g", last.AnxietyScore)
	}
}

func TestSnapshot_SmoothingDamps(t *testing.T) {
	a := newTestAggregator(1, 0.2)
	a.AddFrame(Frame{Sad: 0})
	first, _ := a.Snapshot() // seeds EMA at depression=15

	a.AddFrame(Frame{Sad: 1})
	second, _ := a.Snapshot()

	// Raw jumped to 35 but the smoothed value moves only part way.
	if second.DepressionScore <= first.DepressionScore {
		t.Error("expected depression to rise")
	}
	if second.DepressionScore >= 35 {
		t.Errorf("expected smoothing to damp the jump below 35, got %g", second.DepressionScore)
	}
}

func TestSnapshot_ScoresClamped(t *testing.T) {
	a := newTestAggregator(10, 1.0)
	a.AddFrame(Frame{Sad: 1, Happy: 0, Fearful: 1, Surprised: 1})

	result, _ := a.Snapshot()
	if result.DepressionScore < 0 || result.DepressionScore > 100 {
		t.Errorf("depression out of range: %g", result.DepressionScore)
	}
	if result.AnxietyScore < 0 || result.AnxietyScore > 100 {
		t.Errorf("anxiety out of range: %g", result.AnxietyScore)
	}
}

func TestSnapshot_DominantMood(t *testing.T) {
	a := newTestAggregator(10, 1.0)
	a.AddFrame(Frame{Happy: 0.9, Neutral: 0.1})
	a.AddFrame(Frame{Happy: 0.7, Sad: 0.2})

	result, _ := a.Snapshot()
	if result.DominantMood != "happy" {
		t.Errorf("expected happy, got %s", result.DominantMood)
	}
	if math.Abs(result.Confidence-0.8) > 1e-9 {
		t.Errorf("expected confidence 0.8, got %g", result.Confidence)
	}
}

func TestReset(t *testing.T) {
	a := newTestAggregator(10, 0.2)
	a.AddFrame(Frame{Sad: 1})
	a.Snapshot()
	a.Reset()

	if _, ok := a.Snapshot(); ok {
		t.Error("expected empty window after reset")
	}
}
