package svc

import (
	"log"
	"strings"

	"lessonapi/internal/config"
	"lessonapi/pkg/confkit"
	llmpkg "lessonapi/pkg/llm"
	plannerpkg "lessonapi/pkg/planner"
)

type ServiceContext struct {
	Config config.Config

	LLMConfig *llmpkg.Config
	LLM       llmpkg.GenerativeClient

	PlannerConfig *plannerpkg.Config
	Planner       *plannerpkg.Planner
	PromptDigest  string
}

func NewServiceContext(c config.Config) *ServiceContext {
	svc := &ServiceContext{Config: c}

	// LLM section is optional on disk: with no file, defaults plus the
	// GEMINI_* environment supply everything (the API key is required).
	llmCfg := c.LLM.Value
	if llmCfg == nil {
		cfg, err := llmpkg.LoadConfigFromReader(strings.NewReader(""))
		if err != nil {
			log.Fatalf("failed to load llm config from environment: %v", err)
		}
		llmCfg = cfg
	}
	svc.LLMConfig = llmCfg

	client, err := llmpkg.NewClient(llmCfg)
	if err != nil {
		log.Fatalf("failed to init llm client: %v", err)
	}
	svc.LLM = client

	plannerCfg := c.Planner.Value
	if plannerCfg == nil {
		plannerCfg = &plannerpkg.Config{
			PromptTemplate: confkit.ResolvePath(c.BaseDir(), "prompts/lesson.tmpl"),
		}
	}
	svc.PlannerConfig = plannerCfg

	pl, err := plannerpkg.New(plannerCfg, client)
	if err != nil {
		log.Fatalf("failed to init planner: %v", err)
	}
	svc.Planner = pl
	svc.PromptDigest = pl.PromptDigest()

	return svc
}
