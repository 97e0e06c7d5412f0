package mood

import (
	"sync"

	"github.com/rs/zerolog"
)

// Score weights. Sadness and absent happiness drive the depression score;
// fear and surprise drive the anxiety score.
const (
	depressionSadWeight     = 20.0
	depressionUnhappyWeight = 15.0
	anxietyFearWeight       = 25.0
	anxietySurpriseWeight   = 15.0
)

// Aggregator keeps a rolling window of recent expression frames and derives
// smoothed depression/anxiety scores from it. Safe for concurrent use.
type Aggregator struct {
	logger zerolog.Logger
	window int
	alpha  float64

	mu       sync.Mutex
	frames   []Frame
	depEMA   float64
	anxEMA   float64
	emaReady bool
	dropped  uint64
}

// NewAggregator creates an aggregator with the given rolling window size and
// exponential smoothing factor alpha in (0,1]. A higher alpha tracks the
// latest window averages more closely.
func NewAggregator(window int, alpha float64, logger zerolog.Logger) *Aggregator {
	if window <= 0 {
		window = 30
	}
	if alpha <= 0 || alpha > 1 {
		alpha = 0.2
	}
	return &Aggregator{logger: logger, window: window, alpha: alpha}
}

// AddFrame appends a frame to the window, evicting the oldest when full.
// Frames with NaN, infinite or out-of-range channels are dropped; they never
// enter the window and never cause an error.
func (a *Aggregator) AddFrame(f Frame) bool {
	if !f.valid() {
		a.mu.Lock()
		a.dropped++
		dropped := a.dropped
		a.mu.Unlock()
		a.logger.Debug().Uint64("dropped_total", dropped).Msg("dropped invalid expression frame")
		return false
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.frames = append(a.frames, f)
	if len(a.frames) > a.window {
		a.frames = a.frames[1:]
	}
	return true
}

// AddFrames adds a batch and reports how many were accepted and dropped.
func (a *Aggregator) AddFrames(frames []Frame) (accepted, dropped int) {
	for _, f := range frames {
		if a.AddFrame(f) {
			accepted++
		} else {
			dropped++
		}
	}
	return accepted, dropped
}

// Snapshot derives the current mood estimate from the window and advances
// the smoothing state. It returns false when no frames have been accepted.
func (a *Aggregator) Snapshot() (Result, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(a.frames) == 0 {
		return Result{}, false
	}

	var sums [7]float64
	for _, f := range a.frames {
		for i, v := range f.channels() {
			sums[i] += v
		}
	}

	n := float64(len(a.frames))
	avgs := make(map[string]float64, len(Emotions))
	dominant := Emotions[0]
	best := -1.0
	for i, name := range Emotions {
		avg := sums[i] / n
		avgs[name] = avg
		if avg > best {
			best = avg
			dominant = name
		}
	}

	depression := depressionSadWeight*avgs["sad"] + depressionUnhappyWeight*(1-avgs["happy"])
	anxiety := anxietyFearWeight*avgs["fearful"] + anxietySurpriseWeight*avgs["surprised"]

	if !a.emaReady {
		a.depEMA = depression
		a.anxEMA = anxiety
		a.emaReady = true
	} else {
		a.depEMA = a.alpha*depression + (1-a.alpha)*a.depEMA
		a.anxEMA = a.alpha*anxiety + (1-a.alpha)*a.anxEMA
	}

	return Result{
		DominantMood:    dominant,
		Confidence:      best,
		DepressionScore: clamp(a.depEMA, 0, 100),
		AnxietyScore:    clamp(a.anxEMA, 0, 100),
		Expressions:     avgs,
	}, true
}

// Dropped returns the total number of frames rejected so far.
func (a *Aggregator) Dropped() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.dropped
}

// Reset clears the window and smoothing state, e.g. when a new analysis
// session starts.
func (a *Aggregator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.frames = nil
	a.depEMA = 0
	a.anxEMA = 0
	a.emaReady = false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
