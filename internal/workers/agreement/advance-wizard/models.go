// internal/workers/agreement/advance-wizard/models.go
package advancewizard

// Actions accepted by the worker. Selection actions carry their value in the
// matching input field; navigation actions carry nothing extra.
const (
	ActionNext           = "next"
	ActionBack           = "back"
	ActionSelectTemplate = "select-template"
	ActionSelectPlan     = "select-plan"
	ActionSelectDuration = "select-duration"
)

type Input struct {
	SessionID      string `json:"sessionId"`
	Action         string `json:"action"`
	TemplateID     string `json:"templateId,omitempty"`
	PlanID         string `json:"planId,omitempty"`
	DurationMonths int    `json:"durationMonths,omitempty"`
}

// Output is the session state after the action was applied.
type Output struct {
	SessionID      string `json:"sessionId"`
	Family         string `json:"family"`
	Step           int    `json:"step"`
	StepName       string `json:"stepName"`
	TemplateID     string `json:"templateId,omitempty"`
	PlanID         string `json:"planId,omitempty"`
	DurationMonths int    `json:"durationMonths,omitempty"`
	Complete       bool   `json:"complete"`
}
