// Package stats aggregates answer outcomes for the dashboard. Nothing is
// persisted; a Tracker lives as long as the process.
package stats

import (
	"math"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// TopicScore is the accuracy on one topic, in percent.
type TopicScore struct {
	Topic string
	Score int
}

// UserStats is a point-in-time view of the tracker.
type UserStats struct {
	QuestionsSolved int

	// Accuracy is the share of correct answers, in percent.
	Accuracy int

	// StreakDays counts consecutive calendar days with at least one
	// answer, ending today.
	StreakDays int

	TopicPerformance []TopicScore
}

type topicCounts struct {
	attempted int
	correct   int
}

// Tracker records answers. It is safe for concurrent use.
type Tracker struct {
	mu      sync.Mutex
	log     zerolog.Logger
	now     func() time.Time
	solved  int
	correct int
	topics  map[string]*topicCounts
	days    map[string]bool
}

// NewTracker creates an empty tracker.
func NewTracker(log zerolog.Logger) *Tracker {
	return newTracker(log, time.Now)
}

func newTracker(log zerolog.Logger, now func() time.Time) *Tracker {
	return &Tracker{
		log:    log,
		now:    now,
		topics: make(map[string]*topicCounts),
		days:   make(map[string]bool),
	}
}

// Record adds one answer on topic.
func (t *Tracker) Record(topic string, correct bool) {
	topic = strings.TrimSpace(topic)

	t.mu.Lock()
	defer t.mu.Unlock()

	t.solved++
	tc := t.topics[topic]
	if tc == nil {
		tc = &topicCounts{}
		t.topics[topic] = tc
	}
	tc.attempted++
	if correct {
		t.correct++
		tc.correct++
	}
	t.days[dayKey(t.now())] = true

	t.log.Debug().
		Str("topic", topic).
		Bool("correct", correct).
		Int("solved", t.solved).
		Msg("answer recorded")
}

// Snapshot returns the current aggregate. Topics are sorted by name. A nil
// tracker reports empty stats.
func (t *Tracker) Snapshot() UserStats {
	if t == nil {
		return UserStats{}
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	s := UserStats{
		QuestionsSolved:  t.solved,
		Accuracy:         percent(t.correct, t.solved),
		StreakDays:       t.streak(),
		TopicPerformance: make([]TopicScore, 0, len(t.topics)),
	}
	for name, tc := range t.topics {
		s.TopicPerformance = append(s.TopicPerformance, TopicScore{
			Topic: name,
			Score: percent(tc.correct, tc.attempted),
		})
	}
	slices.SortFunc(s.TopicPerformance, func(a, b TopicScore) int {
		return strings.Compare(a.Topic, b.Topic)
	})
	return s
}

func (t *Tracker) streak() int {
	n := 0
	for d := t.now(); t.days[dayKey(d)]; d = d.AddDate(0, 0, -1) {
		n++
	}
	return n
}

func dayKey(t time.Time) string {
	return t.Format(time.DateOnly)
}

func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) * 100 / float64(total)))
}
