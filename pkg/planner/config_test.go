package planner

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromReaderDefaults(t *testing.T) {
	cfg, err := LoadConfigFromReader(strings.NewReader(""))
	require.NoError(t, err)

	assert.Equal(t, defaultPromptTemplate, cfg.PromptTemplate)
	assert.Empty(t, cfg.Model)
	assert.Nil(t, cfg.Temperature)
	assert.Nil(t, cfg.MaxTokens)
}

func TestLoadConfigFromReaderFull(t *testing.T) {
	yamlCfg := `
prompt_template: prompts/custom.tmpl
model: gemini-pro-latest
temperature: 0.4
max_tokens: 2048
`
	cfg, err := LoadConfigFromReader(strings.NewReader(yamlCfg))
	require.NoError(t, err)

	assert.Equal(t, "prompts/custom.tmpl", cfg.PromptTemplate)
	assert.Equal(t, "gemini-pro-latest", cfg.Model)
	require.NotNil(t, cfg.Temperature)
	assert.Equal(t, 0.4, *cfg.Temperature)
	require.NotNil(t, cfg.MaxTokens)
	assert.Equal(t, 2048, *cfg.MaxTokens)
}

func TestLoadConfigResolvesTemplatePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "planner.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prompt_template: prompts/lesson.tmpl\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "prompts", "lesson.tmpl"), cfg.PromptTemplate)
}

func TestLoadConfigKeepsAbsoluteTemplatePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "planner.yaml")
	abs := filepath.Join(dir, "elsewhere", "lesson.tmpl")
	require.NoError(t, os.WriteFile(path, []byte("prompt_template: "+abs+"\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, abs, cfg.PromptTemplate)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	temp := func(v float64) *float64 { return &v }
	tokens := func(v int) *int { return &v }

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "valid",
			cfg:  Config{PromptTemplate: "prompts/lesson.tmpl", Temperature: temp(0.7), MaxTokens: tokens(1024)},
		},
		{
			name:    "missing template",
			cfg:     Config{PromptTemplate: "  "},
			wantErr: "prompt_template is required",
		},
		{
			name:    "temperature too high",
			cfg:     Config{PromptTemplate: "p.tmpl", Temperature: temp(2.5)},
			wantErr: "temperature",
		},
		{
			name:    "temperature negative",
			cfg:     Config{PromptTemplate: "p.tmpl", Temperature: temp(-0.1)},
			wantErr: "temperature",
		},
		{
			name:    "max tokens zero",
			cfg:     Config{PromptTemplate: "p.tmpl", MaxTokens: tokens(0)},
			wantErr: "max_tokens",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfigFromReaderInvalidYAML(t *testing.T) {
	_, err := LoadConfigFromReader(strings.NewReader("prompt_template: [nope"))
	require.Error(t, err)
}
