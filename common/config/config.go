package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/xorcare/pointer"
	"gopkg.in/yaml.v3"

	"github.com/srujandivakar/DCode/lib/logger"
)

type Config struct {
	Port int     `yaml:"Port"`
	Host *string `yaml:"Host,omitempty"` // leave empty for localhost

	Logger *logger.Config `yaml:"Logger,omitempty"`

	Judge        JudgeConfig        `yaml:"Judge"`
	Orchestrator OrchestratorConfig `yaml:"Orchestrator"`

	DB DBConfig `yaml:"DB"`
}

func ReadConfig(configPath string) *Config {
	// .env is optional; when present it can carry the DSN and judge
	// credentials so they stay out of the yaml file.
	_ = godotenv.Load()

	content, err := os.ReadFile(configPath)
	if err != nil {
		panic(err)
	}

	config := new(Config)
	err = yaml.Unmarshal(content, config)
	if err != nil {
		panic(err)
	}

	fillInConfig(config)

	return config
}

func fillInConfig(config *Config) {
	if config.Host == nil {
		config.Host = pointer.String("localhost")
	}
	if config.Port == 0 {
		config.Port = 8080
	}

	if dsn := os.Getenv("DCODE_DB_DSN"); dsn != "" {
		config.DB.Dsn = dsn
	}

	fillInJudgeConfig(&config.Judge)
	fillInOrchestratorConfig(&config.Orchestrator)
}
