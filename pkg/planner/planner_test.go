package planner

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lessonapi/pkg/llm"
)

type fakeClient struct {
	responses []string
	errs      []error
	calls     int
	requests  []*llm.ChatRequest
}

func (f *fakeClient) Chat(ctx context.Context, req *llm.ChatRequest) (*llm.ChatResponse, error) {
	idx := f.calls
	f.calls++
	f.requests = append(f.requests, req)
	if idx < len(f.errs) && f.errs[idx] != nil {
		return nil, f.errs[idx]
	}
	content := ""
	if idx < len(f.responses) {
		content = f.responses[idx]
	}
	return &llm.ChatResponse{
		Choices: []llm.Choice{{Message: llm.Message{Role: "assistant", Content: content}}},
	}, nil
}

func (f *fakeClient) GetConfig() *llm.Config { return &llm.Config{} }
func (f *fakeClient) Close() error           { return nil }

func writeTemplate(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lesson.tmpl")
	content := `Topic: "{{.Topic}}" Knowledge: "{{.Knowledge}}" Skill: "{{.Skill}}"`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestPlanner(t *testing.T, client llm.GenerativeClient) *Planner {
	t.Helper()
	p, err := New(&Config{PromptTemplate: writeTemplate(t)}, client)
	require.NoError(t, err)
	return p
}

func TestNewValidation(t *testing.T) {
	client := &fakeClient{}

	_, err := New(nil, client)
	require.Error(t, err)

	_, err = New(&Config{PromptTemplate: writeTemplate(t)}, nil)
	require.Error(t, err)

	_, err = New(&Config{PromptTemplate: "no-such.tmpl"}, client)
	require.Error(t, err)
}

func TestBuildPlansSingleDay(t *testing.T) {
	client := &fakeClient{responses: []string{`{"rvw": "generated review"}`}}
	p := newTestPlanner(t, client)

	results := p.BuildPlans(context.Background(), []DayInput{
		{Topic: "Poultry", Knowledge: "identify poultry", Skill: "cook poultry"},
	})

	require.Len(t, results, 1)
	assert.Equal(t, "generated review", results[0].Review)
	assert.Equal(t, ErrorPlaceholder, results[0].Focus)
	assert.Equal(t, "identify poultry", results[0].Knowledge)
	assert.Equal(t, "cook poultry", results[0].Skill)
	assert.Equal(t, 1, client.calls)

	require.Len(t, client.requests, 1)
	req := client.requests[0]
	require.Len(t, req.Messages, 1)
	assert.Equal(t, "user", req.Messages[0].Role)
	assert.Contains(t, req.Messages[0].Content, `Topic: "Poultry"`)
}

func TestBuildPlansBlankDaysSkipGeneration(t *testing.T) {
	client := &fakeClient{}
	p := newTestPlanner(t, client)

	days := []DayInput{
		{},
		{Topic: "t", Knowledge: "k"},
		{Topic: "t", Skill: "s"},
		{Knowledge: "k", Skill: "s"},
	}

	results := p.BuildPlans(context.Background(), days)

	require.Len(t, results, 4)
	assert.Equal(t, 0, client.calls, "blank days must not reach the client")
	assert.Equal(t, BlankRecord("", ""), results[0])
	assert.Equal(t, BlankRecord("k", ""), results[1])
	assert.Equal(t, BlankRecord("", "s"), results[2])
	assert.Equal(t, BlankRecord("k", "s"), results[3])
}

func TestBuildPlansFailureIsolation(t *testing.T) {
	client := &fakeClient{
		responses: []string{`{"fcs": "first"}`, "", `{"fcs": "third"}`},
		errs:      []error{nil, errors.New("upstream unavailable"), nil},
	}
	p := newTestPlanner(t, client)

	days := []DayInput{
		{Topic: "a", Knowledge: "ka", Skill: "sa"},
		{Topic: "b", Knowledge: "kb", Skill: "sb"},
		{Topic: "c", Knowledge: "kc", Skill: "sc"},
	}

	results := p.BuildPlans(context.Background(), days)

	require.Len(t, results, 3)
	assert.Equal(t, "first", results[0].Focus)
	assert.Equal(t, BlankRecord("kb", "sb"), results[1], "failed day degrades to a blank record")
	assert.Equal(t, "third", results[2].Focus, "later days continue after a failure")
	assert.Equal(t, 3, client.calls)
}

func TestBuildPlansOrderPreserved(t *testing.T) {
	client := &fakeClient{responses: []string{
		`{"rvw": "day one"}`,
		`{"rvw": "day two"}`,
	}}
	p := newTestPlanner(t, client)

	results := p.BuildPlans(context.Background(), []DayInput{
		{Topic: "one", Knowledge: "k1", Skill: "s1"},
		{Topic: "two", Knowledge: "k2", Skill: "s2"},
	})

	require.Len(t, results, 2)
	assert.Equal(t, "day one", results[0].Review)
	assert.Equal(t, "day two", results[1].Review)
}

func TestBuildPlansNoDays(t *testing.T) {
	p := newTestPlanner(t, &fakeClient{})

	results := p.BuildPlans(context.Background(), nil)
	require.NotNil(t, results)
	assert.Empty(t, results)
}

func TestBuildPlansMalformedResponse(t *testing.T) {
	client := &fakeClient{responses: []string{"not json at all"}}
	p := newTestPlanner(t, client)

	results := p.BuildPlans(context.Background(), []DayInput{
		{Topic: "t", Knowledge: "k", Skill: "s"},
	})

	require.Len(t, results, 1)
	assert.Equal(t, ErrorPlaceholder, results[0].Review)
	assert.Equal(t, "k", results[0].Knowledge)
	assert.Equal(t, "s", results[0].Skill)
}

func TestBuildPlansAppliesConfigOverrides(t *testing.T) {
	temp := 0.4
	maxTokens := 2048
	client := &fakeClient{responses: []string{`{}`}}
	p, err := New(&Config{
		PromptTemplate: writeTemplate(t),
		Model:          "gemini-pro-latest",
		Temperature:    &temp,
		MaxTokens:      &maxTokens,
	}, client)
	require.NoError(t, err)

	p.BuildPlans(context.Background(), []DayInput{
		{Topic: "t", Knowledge: "k", Skill: "s"},
	})

	require.Len(t, client.requests, 1)
	req := client.requests[0]
	assert.Equal(t, "gemini-pro-latest", req.Model)
	require.NotNil(t, req.Temperature)
	assert.Equal(t, temp, *req.Temperature)
	require.NotNil(t, req.MaxTokens)
	assert.Equal(t, maxTokens, *req.MaxTokens)
}

func TestPromptDigest(t *testing.T) {
	p := newTestPlanner(t, &fakeClient{})
	assert.Len(t, p.PromptDigest(), 64)
}

func TestDayInputBlank(t *testing.T) {
	assert.True(t, DayInput{}.Blank())
	assert.True(t, DayInput{Topic: "t"}.Blank())
	assert.True(t, DayInput{Topic: "t", Knowledge: "k"}.Blank())
	assert.False(t, DayInput{Topic: "t", Knowledge: "k", Skill: "s"}.Blank())
}
