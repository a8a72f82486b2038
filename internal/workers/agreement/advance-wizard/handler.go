// internal/workers/agreement/advance-wizard/handler.go
package advancewizard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"agreement-workers/internal/agreement/catalog"
	"agreement-workers/internal/agreement/wizard"
	"agreement-workers/internal/common/logger"
	"agreement-workers/internal/common/metrics"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "advance-wizard"
)

var (
	ErrSessionNotFound     = errors.New("SESSION_NOT_FOUND")
	ErrInvalidAction       = errors.New("INVALID_ACTION")
	ErrSelectionIncomplete = errors.New("SELECTION_INCOMPLETE")
	ErrUnknownSelection    = errors.New("UNKNOWN_SELECTION")
	ErrSessionStoreFailed  = errors.New("SESSION_STORE_FAILED")
)

type Handler struct {
	config  *Config
	store   *wizard.Store
	catalog *catalog.Catalog
	logger  logger.Logger
}

func NewHandler(config *Config, store *wizard.Store, cat *catalog.Catalog, log logger.Logger) *Handler {
	return &Handler{
		config:  config,
		store:   store,
		catalog: cat,
		logger:  log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	startTime := time.Now()
	metrics.WorkerJobsActive.WithLabelValues(TaskType).Inc()
	defer metrics.WorkerJobsActive.WithLabelValues(TaskType).Dec()

	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.failJob(client, job, "PARSE_ERROR", fmt.Sprintf("parse input: %v", err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		errorCode := "UNKNOWN_ERROR"
		switch {
		case errors.Is(err, ErrSessionNotFound):
			errorCode = ErrSessionNotFound.Error()
		case errors.Is(err, ErrInvalidAction):
			errorCode = ErrInvalidAction.Error()
		case errors.Is(err, ErrSelectionIncomplete):
			errorCode = ErrSelectionIncomplete.Error()
		case errors.Is(err, ErrUnknownSelection):
			errorCode = ErrUnknownSelection.Error()
		case errors.Is(err, ErrSessionStoreFailed):
			errorCode = ErrSessionStoreFailed.Error()
		}
		h.failJob(client, job, errorCode, err.Error())
		return
	}

	h.completeJob(client, job, output)
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(startTime).Seconds())
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if input.SessionID == "" {
		return nil, fmt.Errorf("%w: sessionId is required", ErrSessionNotFound)
	}

	session, err := h.store.Get(ctx, input.SessionID)
	if err != nil {
		if errors.Is(err, wizard.ErrSessionNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, input.SessionID)
		}
		return nil, fmt.Errorf("%w: %v", ErrSessionStoreFailed, err)
	}

	if err := h.apply(session, input); err != nil {
		return nil, err
	}

	if err := h.store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionStoreFailed, err)
	}

	metrics.WizardTransitions.WithLabelValues(input.Action).Inc()

	return &Output{
		SessionID:      session.ID,
		Family:         session.Family,
		Step:           int(session.Step),
		StepName:       session.Step.String(),
		TemplateID:     session.TemplateID,
		PlanID:         session.PlanID,
		DurationMonths: session.DurationMonths,
		Complete:       session.Complete(),
	}, nil
}

// apply runs one action against the session. Selection actions are checked
// against the catalog before the session accepts them, so a session never
// carries an id the renderer would not recognize.
func (h *Handler) apply(session *wizard.Session, input *Input) error {
	switch input.Action {
	case ActionNext:
		return mapWizardErr(session.Next())
	case ActionBack:
		session.Back()
		return nil
	case ActionSelectTemplate:
		if _, ok := h.catalog.FindTemplate(session.Family, input.TemplateID); !ok {
			return fmt.Errorf("%w: template %q for %s", ErrUnknownSelection, input.TemplateID, session.Family)
		}
		return mapWizardErr(session.SelectTemplate(input.TemplateID))
	case ActionSelectPlan:
		if _, ok := h.catalog.FindPlan(input.PlanID); !ok {
			return fmt.Errorf("%w: plan %q", ErrUnknownSelection, input.PlanID)
		}
		return mapWizardErr(session.SelectPlan(input.PlanID))
	case ActionSelectDuration:
		if _, ok := h.catalog.FindDuration(input.DurationMonths); !ok {
			return fmt.Errorf("%w: duration %d months", ErrUnknownSelection, input.DurationMonths)
		}
		return mapWizardErr(session.SelectDuration(input.DurationMonths))
	}
	return fmt.Errorf("%w: unsupported action %q", ErrInvalidAction, input.Action)
}

func mapWizardErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, wizard.ErrSelectionIncomplete):
		return fmt.Errorf("%w: %v", ErrSelectionIncomplete, err)
	case errors.Is(err, wizard.ErrInvalidAction):
		return fmt.Errorf("%w: %v", ErrInvalidAction, err)
	}
	return err
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	_, err = cmd.Send(context.Background())
	if err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (h *Handler) failJob(client worker.JobClient, job entities.Job, errorCode, errorMessage string) {
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, errorCode).Inc()
	h.logger.Error("job failed", map[string]interface{}{
		"jobKey":       job.Key,
		"errorCode":    errorCode,
		"errorMessage": errorMessage,
	})

	_, err := client.NewThrowErrorCommand().
		JobKey(job.Key).
		ErrorCode(errorCode).
		ErrorMessage(errorMessage).
		Send(context.Background())
	if err != nil {
		h.logger.Error("failed to throw error", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
