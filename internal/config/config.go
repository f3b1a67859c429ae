package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type LotteryConfig struct {
	Env           string `yaml:"env"`
	HTTPServer    `yaml:"http_server"`
	MetricsServer `yaml:"metrics_server"`
	LotteryDB     `yaml:"lottery_db"`
	LogConfig     `yaml:"log_config"`
	KafkaService  `yaml:"kafka-service"`
	DrawConfig    `yaml:"draw"`
	RetryConfig   `yaml:"retry"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type MetricsServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type LotteryDB struct {
	Dsn            string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type KafkaService struct {
	Host  string `yaml:"host"`
	Port  string `yaml:"port"`
	Topic string `yaml:"topic" env-default:"draw-events"`
}

type DrawConfig struct {
	SweepInterval     time.Duration `yaml:"sweep_interval" env-default:"30s"`
	StuckRoundAge     time.Duration `yaml:"stuck_round_age" env-default:"10m"`
	MaxRoundsPerSweep int           `yaml:"max_rounds_per_sweep" env-default:"10"`
	MinSweepDelay     time.Duration `yaml:"min_sweep_delay" env-default:"100ms"`
	MaxSweepDelay     time.Duration `yaml:"max_sweep_delay" env-default:"500ms"`
	WinnerCallbackURL string        `yaml:"winner_callback_url"`
}

type RetryConfig struct {
	MaxAttempts int           `yaml:"max_attempts" env-default:"5"`
	MinJitter   time.Duration `yaml:"min_jitter" env-default:"10ms"`
	MaxJitter   time.Duration `yaml:"max_jitter" env-default:"50ms"`
}

func MustLoad() *LotteryConfig {

	// Processing env config variable and file
	configPath := os.Getenv("LOTTERY_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("LOTTERY_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg LotteryConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
