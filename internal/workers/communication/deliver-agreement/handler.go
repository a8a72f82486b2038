// internal/workers/communication/deliver-agreement/handler.go
package deliveragreement

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	commonerrors "agreement-workers/internal/common/errors"
	"agreement-workers/internal/common/logger"
	"agreement-workers/internal/common/metrics"
	"agreement-workers/internal/common/validation"
	"agreement-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "deliver-agreement"
)

var (
	ErrInvalidRecipient = errors.New("INVALID_RECIPIENT")
	ErrDeliveryFailed   = errors.New("DELIVERY_FAILED")
)

type Handler struct {
	config     *Config
	email      EmailSender
	sms        SMSPublisher
	logger     logger.Logger
	errHandler *commonerrors.ErrorHandler
}

func NewHandler(config *Config, email EmailSender, sms SMSPublisher, log logger.Logger) *Handler {
	scoped := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:     config,
		email:      email,
		sms:        sms,
		logger:     scoped,
		errHandler: commonerrors.NewErrorHandler(scoped),
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
		// Transient provider failures go through fail-with-retries so the
		// broker re-dispatches the job; bad recipients throw a BPMN error.
		if errors.Is(err, ErrDeliveryFailed) {
			metrics.WorkerJobsFailed.WithLabelValues(TaskType, ErrDeliveryFailed.Error()).Inc()
			h.errHandler.HandleJobError(ctx, client, job,
				commonerrors.NewDeliveryFailedError(deliveryChannel(h.config, &input), err))
			return
		}
		errorCode := "UNKNOWN_ERROR"
		if errors.Is(err, ErrInvalidRecipient) {
			errorCode = ErrInvalidRecipient.Error()
		}
		h.failJob(client, job, errorCode, err.Error())
		return
	}

	h.completeJob(client, job, output)
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(startTime).Seconds())
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	wantEmail := h.config.EmailEnabled && input.RecipientEmail != ""
	wantSMS := h.config.SMSEnabled && input.RecipientPhone != ""
	if !wantEmail && !wantSMS {
		return nil, fmt.Errorf("%w: no enabled channel has a recipient", ErrInvalidRecipient)
	}

	output := &Output{}

	if wantEmail {
		if !validation.ValidateEmail(input.RecipientEmail) {
			return nil, fmt.Errorf("%w: email %q", ErrInvalidRecipient, input.RecipientEmail)
		}
		if err := h.email.Send(ctx, input.RecipientEmail, h.subject(input), input.HTML); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
		}
		output.EmailSent = true
		output.Recipient = input.RecipientEmail
		h.logger.Info("agreement emailed", map[string]interface{}{
			"recipient":       input.RecipientEmail,
			"referenceNumber": input.ReferenceNumber,
		})
	}

	if wantSMS {
		if !validation.ValidatePhone(input.RecipientPhone) {
			return nil, fmt.Errorf("%w: phone %q", ErrInvalidRecipient, input.RecipientPhone)
		}
		if err := h.sms.Publish(ctx, input.RecipientPhone, h.smsText(input)); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
		}
		output.SMSSent = true
		if output.Recipient == "" {
			output.Recipient = input.RecipientPhone
		}
		h.logger.Info("agreement sms sent", map[string]interface{}{
			"recipient":       input.RecipientPhone,
			"referenceNumber": input.ReferenceNumber,
		})
	}

	return output, nil
}

// deliveryChannel names the channel a failed delivery was attempted on,
// preferring email when both were in play.
func deliveryChannel(config *Config, input *Input) string {
	if config.EmailEnabled && input.RecipientEmail != "" {
		return "email"
	}
	return "sms"
}

func (h *Handler) subject(input *Input) string {
	kind := "Rental"
	if input.Family == models.FamilyPurchase {
		kind = "Purchase"
	}
	subject := fmt.Sprintf("Your %s Agreement", kind)
	if input.ReferenceNumber != "" {
		subject += " · Ref. " + input.ReferenceNumber
	}
	return subject
}

func (h *Handler) smsText(input *Input) string {
	var b strings.Builder
	b.WriteString("Your agreement draft is ready")
	if input.PropertyTitle != "" {
		b.WriteString(" for " + input.PropertyTitle)
	}
	if input.ReferenceNumber != "" {
		b.WriteString(". Ref. " + input.ReferenceNumber)
	}
	b.WriteString(".")
	return b.String()
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
