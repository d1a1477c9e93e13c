package sesmail

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/ebookcopywriting/checkout-service/internal/domain"
)

const charsetUTF8 = "UTF-8"

type Config struct {
	FromName     string
	FromAddress  string
	SupportEmail string
	SiteURL      string
}

// Mailer sends the delivery notification over SES in both rich and plain
// text representations. The only time-sensitive content is the already
// time-bounded download reference.
type Mailer struct {
	cfg    Config
	client *ses.Client
}

func NewMailer(client *ses.Client, cfg Config) *Mailer {
	return &Mailer{cfg: cfg, client: client}
}

func (m *Mailer) Send(ctx context.Context, recipient string, product domain.Product, ref domain.DeliveryReference) error {
	data := mailData{
		ProductName:  product.DisplayName,
		DownloadURL:  ref.URL,
		ExpiryDays:   7,
		SupportEmail: m.cfg.SupportEmail,
		SiteURL:      m.cfg.SiteURL,
	}

	var htmlBody, textBody bytes.Buffer
	if err := htmlTmpl.Execute(&htmlBody, data); err != nil {
		return fmt.Errorf("render html body: %w", err)
	}
	if err := textTmpl.Execute(&textBody, data); err != nil {
		return fmt.Errorf("render text body: %w", err)
	}

	subject := fmt.Sprintf("Your ebook %q is ready to download", product.DisplayName)
	_, err := m.client.SendEmail(ctx, &ses.SendEmailInput{
		Source:      aws.String(fmt.Sprintf("%s <%s>", m.cfg.FromName, m.cfg.FromAddress)),
		Destination: &types.Destination{ToAddresses: []string{recipient}},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject), Charset: aws.String(charsetUTF8)},
			Body: &types.Body{
				Html: &types.Content{Data: aws.String(htmlBody.String()), Charset: aws.String(charsetUTF8)},
				Text: &types.Content{Data: aws.String(textBody.String()), Charset: aws.String(charsetUTF8)},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("send delivery mail: %w", err)
	}
	return nil
}
