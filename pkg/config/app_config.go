package config

import (
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// DefaultAPIURL is the backend origin used when no config file or
// environment override is present.
const DefaultAPIURL = "http://localhost:5000"

type AppConfig struct {
	APIURL   string       `yaml:"api_url" env:"FINMIND_API_URL"`
	LogLevel string       `yaml:"log_level" env:"FINMIND_LOG_LEVEL"`
	Voice    VoiceConfig  `yaml:"voice"`
	Report   ReportConfig `yaml:"report"`
}

// VoiceConfig selects the external commands used for microphone capture
// and audio playback. The record command must write the clip to the path
// substituted for {file} and stop on SIGINT.
type VoiceConfig struct {
	RecordCommand string `yaml:"record_command" env:"FINMIND_VOICE_RECORD_COMMAND"`
	PlayCommand   string `yaml:"play_command" env:"FINMIND_VOICE_PLAY_COMMAND"`
}

type ReportConfig struct {
	Dir string `yaml:"dir" env:"FINMIND_REPORT_DIR"`
}

func GetConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "finmind"), nil
}

func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// LoadAppConfig reads config.yaml if it exists, applies defaults for
// missing fields, and finally applies FINMIND_* environment overrides.
// Environment variables always win over the file.
func LoadAppConfig() (*AppConfig, error) {
	cfg := defaultConfig()

	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	applyDefaults(cfg)
	return cfg, nil
}

func SaveAppConfig(cfg *AppConfig) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		APIURL:   DefaultAPIURL,
		LogLevel: "info",
		Voice: VoiceConfig{
			RecordCommand: "ffmpeg -y -f alsa -i default -t 60 {file}",
			PlayCommand:   "ffplay -nodisp -autoexit {file}",
		},
	}
}

// applyDefaults fills fields a hand-edited config file may have blanked.
func applyDefaults(cfg *AppConfig) {
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Voice.RecordCommand == "" {
		cfg.Voice.RecordCommand = "ffmpeg -y -f alsa -i default -t 60 {file}"
	}
	if cfg.Voice.PlayCommand == "" {
		cfg.Voice.PlayCommand = "ffplay -nodisp -autoexit {file}"
	}
}
