package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type RekberConfig struct {
	Env        string `yaml:"env" env-default:"local"`
	Telegram   `yaml:"telegram"`
	RekberDB   `yaml:"rekber_db"`
	Migrations `yaml:"migrations"`
	Kafka      `yaml:"kafka"`
	Metrics    `yaml:"metrics"`
	Proofs     `yaml:"proofs"`
	LogConfig  `yaml:"log_config"`
}

type Telegram struct {
	Token      string `yaml:"token" env:"BOT_TOKEN"`
	OperatorID int64  `yaml:"operator_id" env:"OPERATOR_ID"`
	Channel    string `yaml:"channel" env:"CHANNEL" env-default:"@rekberinx"`
}

type RekberDB struct {
	Dsn string `yaml:"dsn" env:"REKBER_DB_DSN"`
}

type Migrations struct {
	Path string `yaml:"path"`
}

type Kafka struct {
	Host  string `yaml:"host"`
	Port  string `yaml:"port"`
	Topic string `yaml:"topic" env-default:"transaction-events"`
}

type Metrics struct {
	Addr string `yaml:"addr" env-default:":9091"`
}

type Proofs struct {
	Dir string `yaml:"dir" env-default:"proofs"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

func MustLoad() *RekberConfig {

	// Processing env config variable and file
	configPath := os.Getenv("REKBER_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("REKBER_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg RekberConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
