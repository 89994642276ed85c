// internal/notify/notifier.go

// Package notify delivers escalation alerts to the human support team over
// SES email and SNS SMS. Delivery is best effort: the customer already has
// their response by the time an alert goes out, so send failures are
// reported but never fail the request.
package notify

import (
	"context"
	"fmt"
	"time"

	"support-agent/internal/common/config"
	"support-agent/internal/common/errors"
	"support-agent/internal/common/logger"
	"support-agent/internal/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/google/uuid"
)

const (
	StatusSent     = "sent"
	StatusFailed   = "failed"
	StatusDisabled = "disabled"
)

// Define interfaces for mocking
type SESService interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type SNSService interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// Alert describes one escalated query.
type Alert struct {
	Query          string
	Classification models.Category
	Sentiment      models.Sentiment
	Confidence     float64
}

// Receipt records what was delivered for an alert.
type Receipt struct {
	NotificationID string `json:"notificationId"`
	Status         string `json:"status"`
	SentAt         string `json:"sentAt"`
}

type Notifier struct {
	config    config.NotificationConfig
	logger    logger.Logger
	sesClient SESService
	snsClient SNSService
}

func NewNotifier(cfg config.NotificationConfig, log logger.Logger) (*Notifier, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(cfg.AWS.Region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	return &Notifier{
		config:    cfg,
		logger:    log.WithFields(map[string]interface{}{"component": "notifier"}),
		sesClient: ses.NewFromConfig(awsCfg),
		snsClient: sns.NewFromConfig(awsCfg),
	}, nil
}

// NewNotifierWithClients is used by tests to inject mock AWS clients.
func NewNotifierWithClients(cfg config.NotificationConfig, sesClient SESService, snsClient SNSService, log logger.Logger) *Notifier {
	return &Notifier{
		config:    cfg,
		logger:    log.WithFields(map[string]interface{}{"component": "notifier"}),
		sesClient: sesClient,
		snsClient: snsClient,
	}
}

// SendEscalationAlert notifies the support team about an escalated query.
// Email goes out whenever enabled; SMS only for negative-sentiment
// escalations, which are the ones that need a human quickly.
func (n *Notifier) SendEscalationAlert(ctx context.Context, alert Alert) (*Receipt, error) {
	sentAt := time.Now().UTC().Format(time.RFC3339)
	notificationID := uuid.New().String()

	subject := fmt.Sprintf("Escalated customer query: %s", alert.Classification)
	body := fmt.Sprintf(
		"A customer query was escalated.\n\nCategory: %s\nSentiment: %s\nConfidence: %.2f\n\nQuery:\n%s\n",
		alert.Classification, alert.Sentiment, alert.Confidence, alert.Query,
	)

	emailSent := false
	smsSent := false

	if n.config.Email.Enabled {
		if err := n.sendEmail(ctx, subject, body); err != nil {
			n.logger.Error("escalation email failed", map[string]interface{}{
				"error": err,
				"to":    n.config.Email.ToEmail,
			})
			return &Receipt{NotificationID: notificationID, Status: StatusFailed, SentAt: sentAt},
				errors.NewNotificationSendFailedError(err)
		}
		emailSent = true
	}

	if n.config.SMS.Enabled && alert.Sentiment == models.SentimentNegative {
		if err := n.sendSMS(ctx, subject); err != nil {
			n.logger.Error("escalation SMS failed", map[string]interface{}{
				"error": err,
				"phone": n.config.SMS.ToPhone,
			})
			return &Receipt{NotificationID: notificationID, Status: StatusFailed, SentAt: sentAt},
				errors.NewNotificationSendFailedError(err)
		}
		smsSent = true
	}

	status := StatusDisabled
	if emailSent || smsSent {
		status = StatusSent
	}

	return &Receipt{
		NotificationID: notificationID,
		Status:         status,
		SentAt:         sentAt,
	}, nil
}

func (n *Notifier) sendEmail(ctx context.Context, subject, body string) error {
	_, err := n.sesClient.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{n.config.Email.ToEmail},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
			},
		},
		Source: aws.String(n.config.Email.FromEmail),
	})
	return err
}

func (n *Notifier) sendSMS(ctx context.Context, message string) error {
	_, err := n.snsClient.Publish(ctx, &sns.PublishInput{
		PhoneNumber: aws.String(n.config.SMS.ToPhone),
		Message:     aws.String(message),
	})
	return err
}
