// internal/workers/agreement/start-wizard/handler.go
package startwizard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"agreement-workers/internal/agreement/wizard"
	"agreement-workers/internal/common/logger"
	"agreement-workers/internal/common/metrics"
	"agreement-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
)

const (
	TaskType = "start-wizard"
)

var (
	ErrInvalidInput       = errors.New("INVALID_INPUT")
	ErrSessionStoreFailed = errors.New("SESSION_STORE_FAILED")
)

type Handler struct {
	config *Config
	store  *wizard.Store
	logger logger.Logger
	now    func() time.Time
}

func NewHandler(config *Config, store *wizard.Store, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		store:  store,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
		now:    time.Now,
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
		if errors.Is(err, ErrInvalidInput) {
			errorCode = ErrInvalidInput.Error()
		} else if errors.Is(err, ErrSessionStoreFailed) {
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
	if input.PropertyID == "" {
		return nil, fmt.Errorf("%w: propertyId is required", ErrInvalidInput)
	}

	family := (&models.Property{ListingType: input.ListingType}).AgreementFamily()

	session := wizard.New(uuid.NewString(), family, input.PropertyID, h.now())
	if err := h.store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionStoreFailed, err)
	}

	metrics.WizardTransitions.WithLabelValues("start").Inc()

	return &Output{
		SessionID:       session.ID,
		Family:          session.Family,
		Step:            int(session.Step),
		StepName:        session.Step.String(),
		ReferenceNumber: session.ReferenceNumber,
		AnchorDate:      session.AnchorDate,
	}, nil
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
