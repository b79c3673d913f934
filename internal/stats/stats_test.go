package stats

import (
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func TestTracker_Empty(t *testing.T) {
	s := NewTracker(zerolog.Nop()).Snapshot()
	assert.Zero(t, s.QuestionsSolved)
	assert.Zero(t, s.Accuracy)
	assert.Zero(t, s.StreakDays)
	assert.NotNil(t, s.TopicPerformance)
	assert.Empty(t, s.TopicPerformance)
}

func TestTracker_Record(t *testing.T) {
	tr := NewTracker(zerolog.Nop())
	tr.Record("Direito Penal", true)
	tr.Record("Direito Penal", false)
	tr.Record("Direito Penal", true)
	tr.Record(" Direito Civil ", true)

	s := tr.Snapshot()
	assert.Equal(t, 4, s.QuestionsSolved)
	assert.Equal(t, 75, s.Accuracy)
	assert.Equal(t, 1, s.StreakDays)
	assert.Equal(t, []TopicScore{
		{Topic: "Direito Civil", Score: 100},
		{Topic: "Direito Penal", Score: 67},
	}, s.TopicPerformance)
}

func TestTracker_Streak(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 3, 10, 22, 0, 0, 0, time.UTC)}
	tr := newTracker(zerolog.Nop(), clock.Now)

	tr.Record("a", true)
	clock.t = clock.t.Add(3 * time.Hour) // next day
	tr.Record("a", true)
	clock.t = clock.t.AddDate(0, 0, 1)
	tr.Record("a", false)
	assert.Equal(t, 3, tr.Snapshot().StreakDays)

	clock.t = clock.t.AddDate(0, 0, 1)
	assert.Equal(t, 0, tr.Snapshot().StreakDays, "no answer today")

	tr.Record("a", true)
	assert.Equal(t, 4, tr.Snapshot().StreakDays, "answering today extends the run")

	clock.t = clock.t.AddDate(0, 0, 2)
	tr.Record("a", true)
	assert.Equal(t, 1, tr.Snapshot().StreakDays, "a skipped day breaks the run")
}

func TestTracker_Concurrent(t *testing.T) {
	tr := NewTracker(zerolog.Nop())
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				tr.Record("topic", j%2 == 0)
				_ = tr.Snapshot()
			}
		}(i)
	}
	wg.Wait()

	s := tr.Snapshot()
	require.Equal(t, 800, s.QuestionsSolved)
	assert.Equal(t, 50, s.Accuracy)
}

func TestNilTrackerSnapshot(t *testing.T) {
	var tr *Tracker
	assert.Equal(t, UserStats{}, tr.Snapshot())
}
