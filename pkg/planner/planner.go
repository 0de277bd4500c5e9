package planner

import (
	"context"
	"errors"

	"github.com/zeromicro/go-zero/core/logx"

	"lessonapi/pkg/llm"
)

// DayInput is one day's worth of lesson-plan input.
type DayInput struct {
	Topic     string
	Knowledge string
	Skill     string
}

// Blank reports whether any of the three fields is missing. A partially
// filled day is treated the same as an empty one: no generation call is made.
func (d DayInput) Blank() bool {
	return d.Topic == "" || d.Knowledge == "" || d.Skill == ""
}

// Planner builds lesson plans by rendering the lesson prompt per day and
// parsing the generated response. It holds no per-request state.
type Planner struct {
	cfg      *Config
	client   llm.GenerativeClient
	renderer *PromptRenderer
}

// New constructs a Planner from configuration and a generative client.
func New(cfg *Config, client llm.GenerativeClient) (*Planner, error) {
	if cfg == nil {
		return nil, errors.New("planner: config is required")
	}
	if client == nil {
		return nil, errors.New("planner: llm client is required")
	}
	renderer, err := NewPromptRenderer(cfg.PromptTemplate)
	if err != nil {
		return nil, err
	}
	return &Planner{cfg: cfg, client: client, renderer: renderer}, nil
}

// PromptDigest returns the sha256 digest of the loaded prompt template.
func (p *Planner) PromptDigest() string {
	return p.renderer.Digest()
}

// BuildPlans produces one LessonRecord per submitted day, in input order.
// Days are processed strictly sequentially. A blank day yields a blank record
// without any external call; a day whose generation call fails is logged and
// degrades to the same blank shape, and processing continues with the next
// day. The returned slice always has len(days) entries.
func (p *Planner) BuildPlans(ctx context.Context, days []DayInput) []LessonRecord {
	results := make([]LessonRecord, 0, len(days))
	for i, day := range days {
		if day.Blank() {
			results = append(results, BlankRecord(day.Knowledge, day.Skill))
			continue
		}

		rec, err := p.buildDay(ctx, day)
		if err != nil {
			logx.WithContext(ctx).Errorf("planner: day %d topic %q failed: %v", i, day.Topic, err)
			results = append(results, BlankRecord(day.Knowledge, day.Skill))
			continue
		}
		results = append(results, rec)
	}
	return results
}

func (p *Planner) buildDay(ctx context.Context, day DayInput) (LessonRecord, error) {
	prompt, err := p.renderer.Render(PromptInputs{
		Topic:     day.Topic,
		Knowledge: day.Knowledge,
		Skill:     day.Skill,
	})
	if err != nil {
		return LessonRecord{}, err
	}

	resp, err := p.client.Chat(ctx, &llm.ChatRequest{
		Model:       p.cfg.Model,
		Messages:    []llm.Message{{Role: "user", Content: prompt}},
		Temperature: p.cfg.Temperature,
		MaxTokens:   p.cfg.MaxTokens,
	})
	if err != nil {
		return LessonRecord{}, err
	}

	return ParseResponse(resp.Text(), day.Knowledge, day.Skill), nil
}
