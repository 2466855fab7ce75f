package email

import (
	"context"
	"time"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	sestypes "github.com/aws/aws-sdk-go-v2/service/ses/types"

	"github.com/serverless-shop/order-pipeline/internal/aws"
	"github.com/serverless-shop/order-pipeline/internal/orders"
)

// Notifier sends confirmation emails through SES. It implements the
// processor NotifierPort.
type Notifier struct {
	ses     aws.SESAPI
	sender  string
	timeout time.Duration
}

func NewNotifier(client aws.SESAPI, sender string, timeout time.Duration) *Notifier {
	return &Notifier{
		ses:     client,
		sender:  sender,
		timeout: timeout,
	}
}

// Notify renders and sends the confirmation for a processed order.
func (n *Notifier) Notify(ctx context.Context, o orders.Order) error {
	msg := Render(o)

	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	_, err := n.ses.SendEmail(ctx, &ses.SendEmailInput{
		Source: &n.sender,
		Destination: &sestypes.Destination{
			ToAddresses: []string{o.CustomerEmail},
		},
		Message: &sestypes.Message{
			Subject: &sestypes.Content{
				Data:    &msg.Subject,
				Charset: sdkaws.String("UTF-8"),
			},
			Body: &sestypes.Body{
				Text: &sestypes.Content{
					Data:    &msg.Body,
					Charset: sdkaws.String("UTF-8"),
				},
			},
		},
	})
	if err != nil {
		return &orders.DependencyError{Dependency: "ses", Err: err}
	}
	return nil
}
