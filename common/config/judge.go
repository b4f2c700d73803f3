package config

import "os"

type JudgeConfig struct {
	Address string `yaml:"Address"`

	// AuthToken is sent as X-Auth-Token when set. May also come from the
	// JUDGE_AUTH_TOKEN environment variable.
	AuthToken string `yaml:"AuthToken,omitempty"`
}

func fillInJudgeConfig(config *JudgeConfig) {
	if config.Address == "" {
		config.Address = "http://localhost:2358"
	}
	if token := os.Getenv("JUDGE_AUTH_TOKEN"); token != "" {
		config.AuthToken = token
	}
}
