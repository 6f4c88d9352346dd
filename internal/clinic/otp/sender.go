package otp

import (
	"context"
	"log/slog"

	"github.com/aussiebroadwan/clinic/pkg/slogx"
)

// Sender delivers a code to its recipient out of band (SMS, email, ...).
type Sender interface {
	Send(ctx context.Context, recipient, code string) error
}

// LogSender writes codes to the request logger at debug level. It stands in
// for a real SMS gateway in development.
type LogSender struct{}

func (LogSender) Send(ctx context.Context, recipient, code string) error {
	slogx.FromContext(ctx).Debug("otp issued", slog.String("recipient", recipient), slog.String("code", code))
	return nil
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, recipient, code string) error

func (f SenderFunc) Send(ctx context.Context, recipient, code string) error {
	return f(ctx, recipient, code)
}
