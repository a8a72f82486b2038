// internal/workers/communication/deliver-agreement/service.go
package deliveragreement

import (
	"context"
	"fmt"

	awsclient "agreement-workers/internal/common/aws"

	sdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	sestypes "github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	snstypes "github.com/aws/aws-sdk-go-v2/service/sns/types"
)

// EmailSender delivers one HTML email. The handler depends on this rather
// than the SES client directly so tests can substitute a fake.
type EmailSender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// SMSPublisher delivers one transactional SMS.
type SMSPublisher interface {
	Publish(ctx context.Context, phoneNumber, message string) error
}

type sesEmailSender struct {
	client *awsclient.SESClient
	from   string
}

// NewSESEmailSender wraps the shared SES client with the configured sender
// address.
func NewSESEmailSender(client *awsclient.SESClient, from string) EmailSender {
	return &sesEmailSender{client: client, from: from}
}

func (s *sesEmailSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	_, err := s.client.SendEmail(ctx, &ses.SendEmailInput{
		Source: sdk.String(s.from),
		Destination: &sestypes.Destination{
			ToAddresses: []string{to},
		},
		Message: &sestypes.Message{
			Subject: &sestypes.Content{
				Data:    sdk.String(subject),
				Charset: sdk.String("UTF-8"),
			},
			Body: &sestypes.Body{
				Html: &sestypes.Content{
					Data:    sdk.String(htmlBody),
					Charset: sdk.String("UTF-8"),
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("ses send to %s: %w", to, err)
	}
	return nil
}

type snsSMSPublisher struct {
	client   *awsclient.SNSClient
	senderID string
}

// NewSNSSMSPublisher wraps the shared SNS client with the configured sender
// id. SenderID is best effort; carriers in some regions ignore it.
func NewSNSSMSPublisher(client *awsclient.SNSClient, senderID string) SMSPublisher {
	return &snsSMSPublisher{client: client, senderID: senderID}
}

func (s *snsSMSPublisher) Publish(ctx context.Context, phoneNumber, message string) error {
	attrs := map[string]snstypes.MessageAttributeValue{
		"AWS.SNS.SMS.SMSType": {
			DataType:    sdk.String("String"),
			StringValue: sdk.String("Transactional"),
		},
	}
	if s.senderID != "" {
		attrs["AWS.SNS.SMS.SenderID"] = snstypes.MessageAttributeValue{
			DataType:    sdk.String("String"),
			StringValue: sdk.String(s.senderID),
		}
	}

	_, err := s.client.Publish(ctx, &sns.PublishInput{
		PhoneNumber:       sdk.String(phoneNumber),
		Message:           sdk.String(message),
		MessageAttributes: attrs,
	})
	if err != nil {
		return fmt.Errorf("sns publish to %s: %w", phoneNumber, err)
	}
	return nil
}
