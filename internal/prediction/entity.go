package prediction

import "time"

// Prediction is the persisted output of a prioritization run for one task,
// keyed by task id. Upserting overwrites the previous run's record.
type Prediction struct {
	TaskID              string    `yaml:"task_id"`
	PriorityScore       int       `yaml:"priority_score"`
	SuggestedPriority   string    `yaml:"suggested_priority"`
	PredictedHours      float64   `yaml:"predicted_hours"`
	RecommendedAssignee string    `yaml:"recommended_assignee,omitempty"`
	ConfidenceScore     int       `yaml:"confidence_score"`
	ModelVersion        string    `yaml:"model_version"`
	UpdatedAt           time.Time `yaml:"updated_at"`
}
