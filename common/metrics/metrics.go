package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	statusLabel = "status"
	modeLabel   = "mode"
)

type Collector struct {
	JudgeJobsSubmitted prometheus.Counter
	JudgeErrors        prometheus.Counter
	PollRounds         prometheus.Counter
	PollTimeouts       prometheus.Counter

	Executions           *prometheus.CounterVec
	SubmissionsPersisted *prometheus.CounterVec
	StreakIncrements     prometheus.Counter
	StreakResets         prometheus.Counter
}

func NewCollector() *Collector {
	c := &Collector{}

	c.JudgeJobsSubmitted = createCounter(
		"judge_jobs_submitted_count",
		"Number of jobs submitted to the remote judge",
	)
	c.JudgeErrors = createCounter(
		"judge_errors_count",
		"Number of failed judge round trips",
	)
	c.PollRounds = createCounter(
		"poll_rounds_count",
		"Number of judge poll rounds performed",
	)
	c.PollTimeouts = createCounter(
		"poll_timeouts_count",
		"Number of jobs that never reached a terminal status within the poll budget",
	)

	c.Executions = createCounterVec(
		"executions_count",
		"Number of execution requests served",
		modeLabel,
	)
	c.SubmissionsPersisted = createCounterVec(
		"submissions_persisted_count",
		"Number of submissions persisted",
		statusLabel,
	)
	c.StreakIncrements = createCounter(
		"streak_increments_count",
		"Number of daily streak increments",
	)
	c.StreakResets = createCounter(
		"streak_resets_count",
		"Number of streaks reset by the stale-streak sweep",
	)

	return c
}

func (c *Collector) Register(registry prometheus.Registerer) {
	registry.MustRegister(
		c.JudgeJobsSubmitted,
		c.JudgeErrors,
		c.PollRounds,
		c.PollTimeouts,
		c.Executions,
		c.SubmissionsPersisted,
		c.StreakIncrements,
		c.StreakResets,
	)
}

func createCounter(name, help string) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "dcode",
		Subsystem: "execution",
		Name:      name,
		Help:      help,
	})
}

func createCounterVec(name, help string, labels ...string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dcode",
		Subsystem: "execution",
		Name:      name,
		Help:      help,
	}, labels)
}
