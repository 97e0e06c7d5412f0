package resources

import "strings"

// Resource is one entry in the curated self-help catalog. The catalog is
// compiled in; there is no write path.
type Resource struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	URL         string `json:"url"`
}

// Categories lists the catalog categories in display order.
var Categories = []string{
	"Stress", "Anxiety", "Mindfulness", "Sleep", "Depression", "Motivation", "Self-Care",
}

var catalog = []Resource{
	{
		ID:          "stress-basics",
		Title:       "Understanding Stress",
		Description: "How stress affects the body and mind, and the first steps to managing it.",
		Category:    "Stress",
		URL:         "https://www.nimh.nih.gov/health/publications/stress",
	},
	{
		ID:          "box-breathing",
		Title:       "Box Breathing Technique",
		Description: "A four-count breathing exercise used to calm the nervous system in minutes.",
		Category:    "Stress",
		URL:         "https://www.health.harvard.edu/mind-and-mood/relaxation-techniques-breath-control-helps-quell-errant-stress-response",
	},
	{
		ID:          "anxiety-disorders",
		Title:       "Anxiety Disorders Overview",
		Description: "Signs, symptoms, and evidence-based treatments for anxiety disorders.",
		Category:    "Anxiety",
		URL:         "https://www.nimh.nih.gov/health/topics/anxiety-disorders",
	},
	{
		ID:          "grounding-54321",
		Title:       "The 5-4-3-2-1 Grounding Exercise",
		Description: "A sensory grounding technique for interrupting spiraling anxious thoughts.",
		Category:    "Anxiety",
		URL:         "https://www.urmc.rochester.edu/behavioral-health-partners/bhp-blog/april-2018/5-4-3-2-1-coping-technique-for-anxiety",
	},
	{
		ID:          "mindfulness-intro",
		Title:       "Getting Started with Mindfulness",
		Description: "A beginner's guide to mindfulness meditation and everyday practice.",
		Category:    "Mindfulness",
		URL:         "https://www.mindful.org/meditation/mindfulness-getting-started/",
	},
	{
		ID:          "body-scan",
		Title:       "Body Scan Meditation",
		Description: "A guided practice for releasing tension one part of the body at a time.",
		Category:    "Mindfulness",
		URL:         "https://ggia.berkeley.edu/practice/body_scan_meditation",
	},
	{
		ID:          "sleep-hygiene",
		Title:       "Healthy Sleep Habits",
		Description: "Practical sleep hygiene rules that improve sleep quality within weeks.",
		Category:    "Sleep",
		URL:         "https://www.sleepfoundation.org/sleep-hygiene",
	},
	{
		ID:          "depression-overview",
		Title:       "Depression: What You Need to Know",
		Description: "Recognizing depression and understanding the paths to treatment.",
		Category:    "Depression",
		URL:         "https://www.nimh.nih.gov/health/topics/depression",
	},
	{
		ID:          "behavioral-activation",
		Title:       "Behavioral Activation",
		Description: "Using small scheduled activities to break the inertia of low mood.",
		Category:    "Depression",
		URL:         "https://www.psychologytools.com/self-help/behavioral-activation/",
	},
	{
		ID:          "tiny-habits",
		Title:       "Building Motivation with Tiny Habits",
		Description: "Why shrinking a goal makes it achievable, and how to stack new habits.",
		Category:    "Motivation",
		URL:         "https://tinyhabits.com/",
	},
	{
		ID:          "self-compassion",
		Title:       "Self-Compassion Exercises",
		Description: "Guided practices for treating yourself with the kindness you give others.",
		Category:    "Self-Care",
		URL:         "https://self-compassion.org/category/exercises/",
	},
	{
		ID:          "crisis-lines",
		Title:       "Crisis and Helpline Directory",
		Description: "International directory of crisis lines available 24/7.",
		Category:    "Self-Care",
		URL:         "https://findahelpline.com/",
	},
}

// All returns the full catalog.
func All() []Resource {
	out := make([]Resource, len(catalog))
	copy(out, catalog)
	return out
}

// ByCategory returns the catalog entries for one category. The match is
// case-insensitive; an unknown category yields an empty slice.
func ByCategory(category string) []Resource {
	var out []Resource
	for _, r := range catalog {
		if strings.EqualFold(r.Category, category) {
			out = append(out, r)
		}
	}
	return out
}
