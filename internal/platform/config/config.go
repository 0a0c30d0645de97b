package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	EngineNone    = "none"
	EngineCommand = "command"
	EnginePlugin  = "plugin"
	EngineGCP     = "gcp"
)

type APIConfig struct {
	BaseURL     string
	LessonsPath string
	WordsPath   string
	Timeout     time.Duration
}

type SpeechConfig struct {
	Engine           string
	Locale           string
	RoundTimeout     time.Duration
	RecognizeCommand []string
	SpeakCommand     []string
	RecordCommand    []string
	Plugin           string
	GCPCredentials   string
}

type Config struct {
	Home             string
	DBPath           string
	LogPath          string
	LogLevel         string
	API              APIConfig
	Speech           SpeechConfig
	AutoAdvanceDelay time.Duration
}

// NewViper returns a viper instance with defaults and HINDIDRILL_* env
// bindings. Callers bind cobra flags onto it before Load.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("log_level", "info")
	v.SetDefault("api.base_url", "http://localhost:5000")
	v.SetDefault("api.lessons_path", "/api/categories")
	v.SetDefault("api.words_path", "/api/words/category/{id}")
	v.SetDefault("api.timeout", 10*time.Second)
	v.SetDefault("speech.engine", EngineCommand)
	v.SetDefault("speech.locale", "hi-IN")
	v.SetDefault("speech.round_timeout", 15*time.Second)
	v.SetDefault("speech.speak_command", []string{"espeak-ng", "-v", "hi", "{text}"})
	v.SetDefault("speech.record_command", []string{"arecord", "-q", "-d", "3", "-f", "S16_LE", "-r", "16000", "-c", "1", "-t", "raw"})
	v.SetDefault("drill.auto_advance_delay", time.Second)
	v.SetEnvPrefix("HINDIDRILL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load resolves the home directory, merges <home>/config.yaml (or the file
// named by the "config" key) and returns the validated config.
func Load(v *viper.Viper) (Config, error) {
	home := v.GetString("home")
	if home == "" {
		userHome, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home dir: %w", err)
		}
		home = filepath.Join(userHome, ".hindidrill")
	}
	file := v.GetString("config")
	if file == "" {
		file = filepath.Join(home, "config.yaml")
	}
	v.SetConfigFile(file)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	cfg := Config{
		Home:     home,
		DBPath:   filepath.Join(home, "hindidrill.db"),
		LogPath:  filepath.Join(home, "hindidrill.log"),
		LogLevel: v.GetString("log_level"),
		API: APIConfig{
			BaseURL:     strings.TrimRight(v.GetString("api.base_url"), "/"),
			LessonsPath: v.GetString("api.lessons_path"),
			WordsPath:   v.GetString("api.words_path"),
			Timeout:     v.GetDuration("api.timeout"),
		},
		Speech: SpeechConfig{
			Engine:           strings.ToLower(v.GetString("speech.engine")),
			Locale:           v.GetString("speech.locale"),
			RoundTimeout:     v.GetDuration("speech.round_timeout"),
			RecognizeCommand: v.GetStringSlice("speech.recognize_command"),
			SpeakCommand:     v.GetStringSlice("speech.speak_command"),
			RecordCommand:    v.GetStringSlice("speech.record_command"),
			Plugin:           v.GetString("speech.plugin"),
			GCPCredentials:   v.GetString("speech.gcp_credentials"),
		},
		AutoAdvanceDelay: v.GetDuration("drill.auto_advance_delay"),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Home == "" {
		return fmt.Errorf("home directory is required")
	}
	if c.API.BaseURL == "" {
		return fmt.Errorf("api base url is required")
	}
	if _, err := url.ParseRequestURI(c.API.BaseURL); err != nil {
		return fmt.Errorf("invalid api base url: %w", err)
	}
	if !strings.Contains(c.API.WordsPath, "{id}") {
		return fmt.Errorf("api words path must contain {id}")
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api timeout must be positive")
	}
	switch c.Speech.Engine {
	case EngineNone, EngineCommand, EngineGCP:
	case EnginePlugin:
		if c.Speech.Plugin == "" {
			return fmt.Errorf("speech plugin name is required for the plugin engine")
		}
	default:
		return fmt.Errorf("unknown speech engine: %s", c.Speech.Engine)
	}
	if c.Speech.Locale == "" {
		return fmt.Errorf("speech locale is required")
	}
	if c.Speech.RoundTimeout <= 0 {
		return fmt.Errorf("speech round timeout must be positive")
	}
	if c.AutoAdvanceDelay < 0 {
		return fmt.Errorf("auto advance delay must not be negative")
	}
	return nil
}
