// Package config loads and saves the quill configuration.
//
// Configuration is read from ~/.quill/config.toml with built-in defaults and
// environment variable overrides. The loaded Config is passed explicitly to
// the components that need it; there is no ambient global.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the complete quill configuration.
type Config struct {
	// Vault is the root directory of the note vault.
	Vault string `toml:"vault"`

	// Progress configures the writing-progress tracker.
	Progress ProgressConfig `toml:"progress"`

	// Edit configures the LLM-backed edit menu.
	Edit EditConfig `toml:"edit"`

	// Transcribe configures audio transcription.
	Transcribe TranscribeConfig `toml:"transcribe"`
}

// ProgressConfig configures the writing-progress tracker.
type ProgressConfig struct {
	// Folder is the tracked folder, relative to the vault root. Empty tracks
	// the whole vault.
	Folder string `toml:"folder"`
	// DailyGoal is the daily word goal. 0 disables the goal display.
	DailyGoal int `toml:"daily_goal"`
}

// EditConfig configures the LLM-backed edit menu.
type EditConfig struct {
	// Model is the chat model used for edit actions.
	Model string `toml:"model"`
	// APIKey is the OpenAI API key. Empty falls back to $OPENAI_API_KEY.
	APIKey string `toml:"api_key"`
	// BaseURL overrides the API endpoint, for compatible providers.
	BaseURL string `toml:"base_url"`
	// MaxPromptTokens caps the prompt size sent per edit request.
	MaxPromptTokens int `toml:"max_prompt_tokens"`
}

// TranscribeConfig configures audio transcription.
type TranscribeConfig struct {
	// Model is the transcription model.
	Model string `toml:"model"`
	// Language is an optional ISO-639-1 hint (ex: "en").
	Language string `toml:"language"`
}

// Default returns a Config with the built-in defaults.
func Default() *Config {
	return &Config{
		Progress: ProgressConfig{
			DailyGoal: 0,
		},
		Edit: EditConfig{
			Model:           "gpt-4o-mini",
			MaxPromptTokens: 8000,
		},
		Transcribe: TranscribeConfig{
			Model: "whisper-1",
		},
	}
}

// Dir returns the quill configuration directory (~/.quill).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".quill"), nil
}

// Path returns the path of the TOML config file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config file at the default path, applies environment
// overrides, and validates. A missing file is not an error; defaults apply.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath is Load with an explicit file path.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if _, statErr := os.Stat(path); statErr == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("could not decode %s: %w", path, err)
		}
	}
	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
//
// Supported variables:
//   - QUILL_VAULT: overrides vault
//   - QUILL_MODEL: overrides edit.model
//   - QUILL_DAILY_GOAL: overrides progress.daily_goal
//   - OPENAI_API_KEY: used when edit.api_key is empty (handled downstream)
func (c *Config) applyEnvOverrides() {
	if vault := os.Getenv("QUILL_VAULT"); vault != "" {
		c.Vault = vault
	}
	if model := os.Getenv("QUILL_MODEL"); model != "" {
		c.Edit.Model = model
	}
	if goal := os.Getenv("QUILL_DAILY_GOAL"); goal != "" {
		if n, err := strconv.Atoi(goal); err == nil {
			c.Progress.DailyGoal = n
		}
	}
}

// Validate checks field values and returns an error describing every problem.
func (c *Config) Validate() error {
	var problems []string
	if c.Progress.DailyGoal < 0 {
		problems = append(problems, "progress.daily_goal cannot be negative")
	}
	if c.Edit.MaxPromptTokens < 0 {
		problems = append(problems, "edit.max_prompt_tokens cannot be negative")
	}
	if c.Edit.Model == "" {
		problems = append(problems, "edit.model cannot be empty")
	}
	if c.Transcribe.Model == "" {
		problems = append(problems, "transcribe.model cannot be empty")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%s", strings.Join(problems, "; "))
	}
	return nil
}

// Save writes the config to the default path, creating ~/.quill if needed.
// The file is written 0600 since it may hold an API key.
func Save(cfg *Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	return SaveToPath(cfg, path)
}

// SaveToPath is Save with an explicit file path.
func SaveToPath(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("could not create config directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("could not create config file: %w", err)
	}
	defer file.Close()

	fmt.Fprintln(file, "# quill configuration file")
	fmt.Fprintln(file, "")
	if err := toml.NewEncoder(file).Encode(cfg); err != nil {
		return fmt.Errorf("could not encode config: %w", err)
	}
	return nil
}

// TrackedDir resolves the folder the progress tracker watches.
func (c *Config) TrackedDir() string {
	if c.Progress.Folder == "" {
		return c.Vault
	}
	return filepath.Join(c.Vault, c.Progress.Folder)
}
