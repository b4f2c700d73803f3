package config

import "time"

type OrchestratorConfig struct {
	// PollInterval is the initial delay between judge poll rounds; the poller
	// backs off exponentially from it.
	PollInterval time.Duration `yaml:"PollInterval"`
	// MaxPollRounds and MaxPollTime bound a single batch poll. Whichever is
	// exhausted first marks the unresolved jobs as timed out.
	MaxPollRounds int           `yaml:"MaxPollRounds"`
	MaxPollTime   time.Duration `yaml:"MaxPollTime"`

	// Timezone defines the civil day used for streak bucketing.
	Timezone string `yaml:"Timezone"`

	// StreakSweepInterval is how often stale streaks are reset. Zero disables
	// the sweep loop.
	StreakSweepInterval time.Duration `yaml:"StreakSweepInterval"`
}

func fillInOrchestratorConfig(config *OrchestratorConfig) {
	if config.PollInterval == 0 {
		config.PollInterval = time.Second
	}
	if config.MaxPollRounds == 0 {
		config.MaxPollRounds = 30
	}
	if config.MaxPollTime == 0 {
		config.MaxPollTime = 2 * time.Minute
	}
	if config.Timezone == "" {
		config.Timezone = "Asia/Kolkata"
	}
	if config.StreakSweepInterval == 0 {
		config.StreakSweepInterval = time.Hour
	}
}
