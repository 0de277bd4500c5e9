package planner

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/zeromicro/go-zero/core/logx"
)

// ErrorPlaceholder is substituted for any AI field that is missing from the
// decoded payload or is not a string.
const ErrorPlaceholder = "(AI Error)"

// ParseResponse turns the raw generated text into a LessonRecord. It never
// fails: an undecodable payload degrades every AI field to ErrorPlaceholder,
// a decodable one fills whatever string fields it carries and defaults the
// rest. Knowledge and skill are passed through unchanged.
func ParseResponse(raw, knowledge, skill string) LessonRecord {
	data := decodePayload(raw)

	rec := LessonRecord{Knowledge: knowledge, Skill: skill}
	for key, dst := range rec.aiFields() {
		*dst = stringField(data, key)
	}
	return rec
}

// decodePayload sanitizes and decodes the generated text. On decode failure
// it returns a single-key error object so every field lookup falls back to
// the placeholder.
func decodePayload(raw string) map[string]any {
	text := sanitizeResponse(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(text), &data); err != nil {
		logx.Errorf("lesson response decode failed: %v | text=%s", err, text)
		return map[string]any{"error": fmt.Sprintf("AI Response Error: %v", err)}
	}
	return data
}

// sanitizeResponse strips whitespace, a UTF-8 BOM and a markdown code fence
// the service sometimes wraps its JSON in.
func sanitizeResponse(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\ufeff")
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func stringField(data map[string]any, key string) string {
	if v, ok := data[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ErrorPlaceholder
}
