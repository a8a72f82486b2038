// internal/workers/agreement/render-agreement/handler.go
package renderagreement

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"agreement-workers/internal/agreement/catalog"
	"agreement-workers/internal/agreement/render"
	"agreement-workers/internal/common/logger"
	"agreement-workers/internal/common/metrics"
	"agreement-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "render-agreement"
)

var (
	ErrSelectionIncomplete = errors.New("SELECTION_INCOMPLETE")
	ErrRenderFailed        = errors.New("RENDER_FAILED")
)

type Handler struct {
	config   *Config
	renderer *render.Renderer
	logger   logger.Logger
}

func NewHandler(config *Config, cat *catalog.Catalog, log logger.Logger) *Handler {
	return &Handler{
		config:   config,
		renderer: render.New(cat),
		logger:   log.WithFields(map[string]interface{}{"taskType": TaskType}),
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

	if err := validateRawInput(job.Variables); err != nil {
		h.failJob(client, job, "PARSE_ERROR", err.Error())
		return
	}

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
		case errors.Is(err, ErrSelectionIncomplete):
			errorCode = ErrSelectionIncomplete.Error()
		case errors.Is(err, ErrRenderFailed):
			errorCode = ErrRenderFailed.Error()
		}
		h.failJob(client, job, errorCode, err.Error())
		return
	}

	h.completeJob(client, job, output)
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(startTime).Seconds())
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	family := input.Family
	if family == "" && input.Property != nil {
		family = input.Property.AgreementFamily()
	}

	if err := h.validate(family, input); err != nil {
		return nil, err
	}

	anchor := input.AnchorDate
	if anchor.IsZero() {
		anchor = time.Now()
	}

	doc := h.renderer.Render(render.Input{
		Family:          family,
		TemplateID:      input.TemplateID,
		Property:        input.Property,
		Party:           input.Party,
		PlanID:          input.PlanID,
		DurationMonths:  input.DurationMonths,
		ReferenceNumber: input.ReferenceNumber,
		AnchorDate:      anchor,
	})
	if doc.IsEmpty() {
		return nil, fmt.Errorf("%w: empty document for family %q", ErrRenderFailed, family)
	}

	metrics.AgreementsRendered.WithLabelValues(doc.Family, doc.TemplateID).Inc()

	h.logger.Info("agreement rendered", map[string]interface{}{
		"family":          doc.Family,
		"templateId":      doc.TemplateID,
		"referenceNumber": doc.ReferenceNumber,
		"sections":        len(doc.Sections),
	})

	return &Output{Document: doc}, nil
}

// validate enforces what the wizard's gating guarantees on the happy path.
// Jobs arriving outside the wizard (retries, manual correlation) can carry a
// partial tuple, and a document must never render without its payment terms.
// family is the derived family, so a tuple that relies on the property
// fallback is checked against the branch it will actually render on.
func (h *Handler) validate(family string, input *Input) error {
	if input.Property == nil {
		return fmt.Errorf("%w: property snapshot is required", ErrSelectionIncomplete)
	}
	if family == models.FamilyPurchase {
		if input.PlanID == "" {
			return fmt.Errorf("%w: no payment plan selected", ErrSelectionIncomplete)
		}
		return nil
	}
	if input.DurationMonths <= 0 {
		return fmt.Errorf("%w: no rental duration selected", ErrSelectionIncomplete)
	}
	return nil
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
