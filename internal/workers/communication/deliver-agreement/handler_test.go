// internal/workers/communication/deliver-agreement/handler_test.go
package deliveragreement

import (
	"context"
	"errors"
	"testing"
	"time"

	"agreement-workers/internal/common/logger"
	"agreement-workers/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

type fakeEmailSender struct {
	err      error
	to       string
	subject  string
	htmlBody string
	calls    int
}

func (f *fakeEmailSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	f.calls++
	f.to = to
	f.subject = subject
	f.htmlBody = htmlBody
	return f.err
}

type fakeSMSPublisher struct {
	err     error
	phone   string
	message string
	calls   int
}

func (f *fakeSMSPublisher) Publish(ctx context.Context, phoneNumber, message string) error {
	f.calls++
	f.phone = phoneNumber
	f.message = message
	return f.err
}

func createTestConfig() *Config {
	return &Config{
		Timeout:      10 * time.Second,
		EmailEnabled: true,
		SMSEnabled:   true,
		FromEmail:    "agreements@example.com",
		SenderID:     "AGRMNT",
	}
}

func createTestHandler(t *testing.T, config *Config, email *fakeEmailSender, sms *fakeSMSPublisher) *Handler {
	if config == nil {
		config = createTestConfig()
	}
	return NewHandler(config, email, sms, logger.NewTestLogger(t))
}

func createInput() *Input {
	return &Input{
		RecipientEmail:  "tenant@example.com",
		RecipientPhone:  "+919820011122",
		Family:          models.FamilyRental,
		ReferenceNumber: "10042026",
		PropertyTitle:   "Green Acres 3BHK",
		HTML:            "<!DOCTYPE html><html><body>agreement</body></html>",
	}
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_EmailAndSMS(t *testing.T) {
	email := &fakeEmailSender{}
	sms := &fakeSMSPublisher{}
	handler := createTestHandler(t, nil, email, sms)

	output, err := handler.Execute(context.Background(), createInput())

	require.NoError(t, err)
	assert.True(t, output.EmailSent)
	assert.True(t, output.SMSSent)
	assert.Equal(t, "tenant@example.com", output.Recipient)

	assert.Equal(t, 1, email.calls)
	assert.Equal(t, "tenant@example.com", email.to)
	assert.Equal(t, "Your Rental Agreement · Ref. 10042026", email.subject)
	assert.Contains(t, email.htmlBody, "agreement")

	assert.Equal(t, 1, sms.calls)
	assert.Equal(t, "+919820011122", sms.phone)
	assert.Equal(t, "Your agreement draft is ready for Green Acres 3BHK. Ref. 10042026.", sms.message)
}

func TestHandler_Execute_PurchaseSubject(t *testing.T) {
	email := &fakeEmailSender{}
	handler := createTestHandler(t, nil, email, &fakeSMSPublisher{})

	input := createInput()
	input.Family = models.FamilyPurchase
	input.RecipientPhone = ""

	output, err := handler.Execute(context.Background(), input)

	require.NoError(t, err)
	assert.True(t, output.EmailSent)
	assert.False(t, output.SMSSent)
	assert.Equal(t, "Your Purchase Agreement · Ref. 10042026", email.subject)
}

func TestHandler_Execute_ChannelToggles(t *testing.T) {
	tests := []struct {
		name          string
		emailEnabled  bool
		smsEnabled    bool
		expectedEmail bool
		expectedSMS   bool
	}{
		{name: "email only", emailEnabled: true, smsEnabled: false, expectedEmail: true, expectedSMS: false},
		{name: "sms only", emailEnabled: false, smsEnabled: true, expectedEmail: false, expectedSMS: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := createTestConfig()
			config.EmailEnabled = tt.emailEnabled
			config.SMSEnabled = tt.smsEnabled

			email := &fakeEmailSender{}
			sms := &fakeSMSPublisher{}
			handler := createTestHandler(t, config, email, sms)

			output, err := handler.Execute(context.Background(), createInput())

			require.NoError(t, err)
			assert.Equal(t, tt.expectedEmail, output.EmailSent)
			assert.Equal(t, tt.expectedSMS, output.SMSSent)
		})
	}
}

// ==========================
// Error Handling Tests
// ==========================

func TestHandler_Execute_Errors(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*Input)
		emailErr      error
		smsErr        error
		expectedError error
	}{
		{
			name:          "no recipients at all",
			mutate:        func(in *Input) { in.RecipientEmail = ""; in.RecipientPhone = "" },
			expectedError: ErrInvalidRecipient,
		},
		{
			name:          "malformed email",
			mutate:        func(in *Input) { in.RecipientEmail = "not-an-email" },
			expectedError: ErrInvalidRecipient,
		},
		{
			name:          "malformed phone",
			mutate:        func(in *Input) { in.RecipientEmail = ""; in.RecipientPhone = "12ab" },
			expectedError: ErrInvalidRecipient,
		},
		{
			name:          "ses outage is retryable",
			mutate:        func(in *Input) {},
			emailErr:      errors.New("ses throttled"),
			expectedError: ErrDeliveryFailed,
		},
		{
			name:          "sns outage is retryable",
			mutate:        func(in *Input) { in.RecipientEmail = "" },
			smsErr:        errors.New("sns unavailable"),
			expectedError: ErrDeliveryFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email := &fakeEmailSender{err: tt.emailErr}
			sms := &fakeSMSPublisher{err: tt.smsErr}
			handler := createTestHandler(t, nil, email, sms)

			input := createInput()
			tt.mutate(input)
			output, err := handler.Execute(context.Background(), input)

			assert.Error(t, err)
			assert.True(t, errors.Is(err, tt.expectedError))
			assert.Nil(t, output)
		})
	}
}
