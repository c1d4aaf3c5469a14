package mailer

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Client клиент отправки почты пациентам через SendGrid
type Client struct {
	sg        *sendgrid.Client
	fromEmail string
	fromName  string
	log       Logger
}

// NewClient создает новый экземпляр почтового клиента
func NewClient(apiKey, fromEmail, fromName string, log Logger) *Client {
	return &Client{
		sg:        sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
		log:       log,
	}
}

// Send отправляет письмо получателю.
// Возвращает ErrDeliveryFailed при любой ошибке доставки.
func (c *Client) Send(ctx context.Context, toEmail, toName, subject, htmlBody string) error {
	from := mail.NewEmail(c.fromName, c.fromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	resp, err := c.sg.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrDeliveryFailed, resp.StatusCode, resp.Body)
	}

	c.log.Info("Mailer: sent %q to %s", subject, toEmail)
	return nil
}

// NoopClient заглушка почтового клиента: письма не отправляются,
// только логируются. Используется при mailer.enabled = false в конфиге.
type NoopClient struct {
	log Logger
}

// NewNoopClient создает заглушку почтового клиента
func NewNoopClient(log Logger) *NoopClient {
	return &NoopClient{log: log}
}

// Send логирует письмо вместо отправки
func (c *NoopClient) Send(_ context.Context, toEmail, _, subject, _ string) error {
	c.log.Info("Mailer (noop): skipped %q to %s", subject, toEmail)
	return nil
}
