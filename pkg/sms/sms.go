package sms

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
)

// Sender sends a text message to a phone number in E.164 format.
type Sender interface {
	Send(ctx context.Context, phoneNumber, message string) error
}

// SNSAPI is the slice of the SNS client we use, kept small for mocking.
type SNSAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNSSender dispatches SMS through AWS SNS.
type SNSSender struct {
	client   SNSAPI
	senderID string
}

var _ Sender = (*SNSSender)(nil)

// NewSNSSender builds an SNSSender from the default AWS credential chain.
func NewSNSSender(ctx context.Context, region, senderID string) (*SNSSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &SNSSender{
		client:   sns.NewFromConfig(cfg),
		senderID: senderID,
	}, nil
}

// NewSNSSenderFromClient wires a pre-built SNS client, used by tests.
func NewSNSSenderFromClient(client SNSAPI, senderID string) *SNSSender {
	return &SNSSender{client: client, senderID: senderID}
}

// Send publishes one SMS to the given phone number.
func (s *SNSSender) Send(ctx context.Context, phoneNumber, message string) error {
	input := &sns.PublishInput{
		PhoneNumber: aws.String(phoneNumber),
		Message:     aws.String(message),
	}
	if s.senderID != "" {
		input.MessageAttributes = map[string]types.MessageAttributeValue{
			"AWS.SNS.SMS.SenderID": {
				DataType:    aws.String("String"),
				StringValue: aws.String(s.senderID),
			},
		}
	}

	if _, err := s.client.Publish(ctx, input); err != nil {
		return fmt.Errorf("failed to publish SMS: %w", err)
	}
	return nil
}
