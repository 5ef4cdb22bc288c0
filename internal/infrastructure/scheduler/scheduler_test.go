package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManualSchedulerFiresOnlyWhenDue(t *testing.T) {
	sched := NewManualScheduler()

	var fired []string
	sched.Schedule(3, func() { fired = append(fired, "late") })
	sched.Schedule(1, func() { fired = append(fired, "early") })

	assert.Empty(t, fired)

	sched.Advance(1)
	assert.Equal(t, []string{"early"}, fired)

	sched.Advance(1)
	assert.Equal(t, []string{"early"}, fired)

	sched.Advance(1)
	assert.Equal(t, []string{"early", "late"}, fired)
}

func TestManualSchedulerAdvanceCoversMultipleDeadlines(t *testing.T) {
	sched := NewManualScheduler()

	var count int
	sched.Schedule(1, func() { count++ })
	sched.Schedule(2, func() { count++ })
	sched.Schedule(5, func() { count++ })

	sched.Advance(3)
	assert.Equal(t, 2, count)

	sched.Advance(2)
	assert.Equal(t, 3, count)
}

func TestManualSchedulerTaskMaySchedule(t *testing.T) {
	sched := NewManualScheduler()

	var chained bool
	sched.Schedule(1, func() {
		sched.Schedule(1, func() { chained = true })
	})

	sched.Advance(1)
	assert.False(t, chained)

	sched.Advance(1)
	assert.True(t, chained)
}

func TestManualSchedulerZeroDelayFiresOnNextAdvance(t *testing.T) {
	sched := NewManualScheduler()

	var fired bool
	sched.Schedule(0, func() { fired = true })

	sched.Advance(0)
	assert.True(t, fired)
}
