package planner

import (
	"fmt"

	"lessonapi/pkg/llm"
)

// PromptInputs carries the three user-provided values substituted into the
// lesson prompt template. All must be non-empty; blank days never reach the
// renderer.
type PromptInputs struct {
	Topic     string
	Knowledge string
	Skill     string
}

// PromptRenderer renders the lesson prompt template.
type PromptRenderer struct {
	template *llm.PromptTemplate
}

// NewPromptRenderer parses the template at the provided path.
func NewPromptRenderer(path string) (*PromptRenderer, error) {
	tpl, err := llm.NewPromptTemplate(path)
	if err != nil {
		return nil, err
	}
	return &PromptRenderer{template: tpl}, nil
}

// Render executes the template with the supplied inputs. The template is
// static for the process lifetime, so identical inputs always produce
// byte-identical prompts.
func (r *PromptRenderer) Render(inputs PromptInputs) (string, error) {
	if r == nil || r.template == nil {
		return "", fmt.Errorf("planner: prompt renderer not initialised")
	}
	return r.template.Render(inputs)
}

// Digest exposes the template digest for version tracking.
func (r *PromptRenderer) Digest() string {
	if r == nil || r.template == nil {
		return ""
	}
	return r.template.Digest()
}
