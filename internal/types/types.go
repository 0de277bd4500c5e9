package types

import "lessonapi/pkg/planner"

// DayRequest is one day's lesson-plan input. All three fields are optional;
// a day with any field missing is treated as blank.
type DayRequest struct {
	Topic     string `json:"topic,optional"`
	Knowledge string `json:"knowledge,optional"`
	Skill     string `json:"skill,optional"`
}

// GenerateContentRequest is the POST /generate-content payload. The days key
// itself is required: a payload that cannot enumerate day entries fails the
// whole batch.
type GenerateContentRequest struct {
	Days []DayRequest `json:"days"`
}

// GenerateContentResponse carries one record per submitted day, in order.
type GenerateContentResponse struct {
	Results []planner.LessonRecord `json:"results"`
}

// ErrorResponse is the batch-level failure shape.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the liveness probe shape.
type HealthResponse struct {
	Status string `json:"status"`
}
