package connector

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/ayais12210-hub/revenue-engine/internal/domain/orders"
	"github.com/ayais12210-hub/revenue-engine/internal/domain/products"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/config"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/logger"
)

// SMTPConnector sends receipts, campaign emails and list subscriptions
// over SMTP. When disabled, sends are logged and dropped, matching a
// dev setup without an ESP.
type SMTPConnector struct {
	settings *config.SMTPSettings
	logger   logger.Logger
	send     func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPConnector creates the email connector
func NewSMTPConnector(settings *config.SMTPSettings, logger logger.Logger) (*SMTPConnector, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid smtp settings: %w", err)
	}

	return &SMTPConnector{
		settings: settings,
		logger:   logger,
		send:     smtp.SendMail,
	}, nil
}

// SendReceipt emails the buyer a purchase receipt.
func (c *SMTPConnector) SendReceipt(_ context.Context, order *orders.Order, product *products.Product) error {
	productName := order.SKU
	if product != nil {
		productName = product.Name
	}

	subject := fmt.Sprintf("Your receipt for %s", productName)
	body := fmt.Sprintf(
		"Hi %s,\n\nThanks for your purchase of %s.\n\nAmount: £%.2f\nOrder reference: %s\n\nThe Revenue Engine Team",
		order.BuyerName, productName, float64(order.AmountPence)/100, order.ID)

	return c.deliver(subject, body, []string{order.BuyerEmail})
}

// SendCampaign delivers the briefing email to every recipient. One
// message per subscriber, so no recipient sees the rest of the list.
func (c *SMTPConnector) SendCampaign(_ context.Context, subject, body string, recipients []string) error {
	if len(recipients) == 0 {
		c.logger.Info("No campaign recipients, nothing to send")
		return nil
	}
	for _, recipient := range recipients {
		if err := c.deliver(subject, body, []string{recipient}); err != nil {
			return fmt.Errorf("failed to send campaign to %s: %w", recipient, err)
		}
	}
	return nil
}

// AddContact records a list subscription. There is no ESP API behind
// this; a welcome email doubles as the subscription confirmation.
func (c *SMTPConnector) AddContact(_ context.Context, email, name string, tags []string) error {
	if !c.settings.Enabled {
		c.logger.Info("SMTP disabled, would add ", email, " to list with tags ", strings.Join(tags, ","))
		return nil
	}

	greeting := name
	if greeting == "" {
		greeting = "there"
	}

	subject := "You're on the list"
	body := fmt.Sprintf("Hi %s,\n\nYou're subscribed. Expect the next drop in your inbox soon.\n\nThe Revenue Engine Team", greeting)
	return c.deliver(subject, body, []string{email})
}

func (c *SMTPConnector) deliver(subject, body string, recipients []string) error {
	if !c.settings.Enabled {
		c.logger.Info("SMTP disabled, dropping email '", subject, "' to ", strings.Join(recipients, ","))
		return nil
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		c.settings.From, strings.Join(recipients, ", "), subject, body)

	addr := fmt.Sprintf("%s:%d", c.settings.Host, c.settings.Port)
	var auth smtp.Auth
	if c.settings.Username != "" {
		auth = smtp.PlainAuth("", c.settings.Username, c.settings.Password, c.settings.Host)
	}

	if err := c.send(addr, auth, c.settings.From, recipients, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	c.logger.Info("Sent email '", subject, "' to ", len(recipients), " recipients")
	return nil
}
