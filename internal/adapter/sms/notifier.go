package sms

import (
	"context"
	"log/slog"
	"strings"
)

// Notifier delivers customer notifications. It reports whether the message was accepted.
type Notifier interface {
	Notify(ctx context.Context, phone, message string) bool
}

// SMSNotifier normalizes phone numbers and hands messages to a Sender.
type SMSNotifier struct {
	sender      Sender
	countryCode string
	logger      *slog.Logger
}

func NewSMSNotifier(sender Sender, countryCode string, logger *slog.Logger) *SMSNotifier {
	return &SMSNotifier{sender: sender, countryCode: countryCode, logger: logger}
}

func (n *SMSNotifier) Notify(ctx context.Context, phone, message string) bool {
	to := NormalizePhone(phone, n.countryCode)
	if to == "" {
		n.logger.Warn("sms skipped, empty phone number")
		return false
	}
	if err := n.sender.Send(ctx, to, message); err != nil {
		n.logger.Error("failed to send sms", slog.String("to", to), slog.String("error", err.Error()))
		return false
	}
	n.logger.Info("sms sent", slog.String("to", to))
	return true
}

// Disabled is used when no provider is configured. It only logs the message.
type Disabled struct {
	logger *slog.Logger
}

func NewDisabled(logger *slog.Logger) *Disabled {
	return &Disabled{logger: logger}
}

func (d *Disabled) Notify(_ context.Context, phone, message string) bool {
	d.logger.Info("sms provider not configured, message would be sent",
		slog.String("to", phone), slog.String("message", message))
	return false
}

// NormalizePhone converts a local number to E.164-like form. Numbers already
// starting with '+' are returned as is.
func NormalizePhone(phone, countryCode string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" || strings.HasPrefix(phone, "+") {
		return phone
	}
	digits := strings.NewReplacer("-", "", "(", "", ")", "", " ", "").Replace(phone)
	if digits == "" {
		return ""
	}
	return countryCode + digits
}
