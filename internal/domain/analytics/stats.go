package analytics

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/katalon/insights/internal/domain/conversation"
	"github.com/katalon/insights/internal/shared/biztime"
)

type Ratings struct {
	Good     int `json:"good"`
	Bad      int `json:"bad"`
	NotRated int `json:"notRated"`
}

type ModelCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type WeekBucket struct {
	Name string `json:"name"`
	Week int    `json:"week"`
	Ratings
}

type Stats struct {
	TotalQuestions    int          `json:"totalQuestions"`
	Ratings           Ratings      `json:"ratings"`
	ModelUsage        []ModelCount `json:"modelUsage"`
	WeeklyTrend       []WeekBucket `json:"weeklyTrend"`
	ActiveFilterCount int          `json:"activeFilterCount"`
	Window            Window       `json:"window"`
}

// modelFamilies are matched as case-insensitive substrings of the model name,
// in chart order.
var modelFamilies = []struct {
	name, token string
}{
	{"GPT", "GPT"},
	{"Grok", "GROK"},
	{"Gemini", "GEMINI"},
	{"Claude", "CLAUDE"},
}

// Compute aggregates assistant messages and feedback inside the window that
// f resolves to at now.
func Compute(messages []*conversation.Message, feedback []*conversation.Feedback, f Filter, now time.Time) Stats {
	w := f.Resolve(now)

	questions := make([]*conversation.Message, 0, len(messages))
	byID := make(map[string]*conversation.Message, len(messages))
	for _, m := range messages {
		byID[m.ID] = m
		if m.IsAssistant() && w.Contains(m.Timestamp) {
			questions = append(questions, m)
		}
	}

	stats := Stats{
		TotalQuestions:    len(questions),
		ModelUsage:        modelUsage(questions),
		ActiveFilterCount: f.ActiveCount(),
		Window:            w,
	}

	rated := 0
	for _, fb := range feedback {
		if !w.Contains(conversation.FeedbackTime(fb, byID)) {
			continue
		}
		rated++
		switch fb.Type {
		case conversation.FeedbackGood:
			stats.Ratings.Good++
		case conversation.FeedbackBad:
			stats.Ratings.Bad++
		}
	}
	stats.Ratings.NotRated = max(stats.TotalQuestions-rated, 0)
	stats.WeeklyTrend = weeklyTrend(questions, conversation.IndexFeedback(feedback))

	return stats
}

func modelUsage(questions []*conversation.Message) []ModelCount {
	out := make([]ModelCount, 0, len(modelFamilies))
	for _, fam := range modelFamilies {
		n := 0
		for _, m := range questions {
			if strings.Contains(strings.ToUpper(m.Model), fam.token) {
				n++
			}
		}
		out = append(out, ModelCount{Name: fam.name, Count: n})
	}
	return out
}

func weeklyTrend(questions []*conversation.Message, index map[string]conversation.Annotation) []WeekBucket {
	buckets := map[int]*WeekBucket{}
	for _, m := range questions {
		if m.Timestamp.IsZero() {
			continue
		}
		week := biztime.WeekOfMonth(m.Timestamp)
		b, ok := buckets[week]
		if !ok {
			b = &WeekBucket{Name: fmt.Sprintf("Week %d", week), Week: week}
			buckets[week] = b
		}
		switch conversation.FeedbackType(index[m.ID].Type) {
		case conversation.FeedbackGood:
			b.Good++
		case conversation.FeedbackBad:
			b.Bad++
		default:
			b.NotRated++
		}
	}

	out := make([]WeekBucket, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	slices.SortFunc(out, func(a, b WeekBucket) int { return a.Week - b.Week })
	return out
}
