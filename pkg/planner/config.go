package planner

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"lessonapi/pkg/confkit"
)

const defaultPromptTemplate = "prompts/lesson.tmpl"

// Config controls runtime behaviour for the planner module.
type Config struct {
	// PromptTemplate is the lesson prompt template path. Relative paths are
	// resolved against the directory of the config file.
	PromptTemplate string `yaml:"prompt_template"`
	// Model overrides the client's default model when set.
	Model       string   `yaml:"model"`
	Temperature *float64 `yaml:"temperature,omitempty"`
	MaxTokens   *int     `yaml:"max_tokens,omitempty"`
}

// LoadConfig reads configuration from disk and resolves the prompt template
// path against the config file's directory.
func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open planner config: %w", err)
	}
	defer file.Close()

	cfg, err := LoadConfigFromReader(file)
	if err != nil {
		return nil, err
	}
	cfg.PromptTemplate = confkit.ResolvePath(filepath.Dir(path), cfg.PromptTemplate)
	return cfg, nil
}

// LoadConfigFromReader constructs a Config from a reader.
func LoadConfigFromReader(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read planner config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal planner config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.PromptTemplate) == "" {
		return errors.New("planner config: prompt_template is required")
	}
	if c.Temperature != nil && (*c.Temperature < 0 || *c.Temperature > 2) {
		return errors.New("planner config: temperature must be within [0, 2]")
	}
	if c.MaxTokens != nil && *c.MaxTokens <= 0 {
		return errors.New("planner config: max_tokens must be positive")
	}
	return nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.PromptTemplate) == "" {
		c.PromptTemplate = defaultPromptTemplate
	}
}
