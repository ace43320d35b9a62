package service

import (
	"context"

	"roomly/pkg/config"
	apperrors "roomly/pkg/errors"
)

const StatusSuccess = "SUCCESS"

// ChargeResult is the outcome reported by the payment provider.
type ChargeResult struct {
	Success bool
}

// Gateway charges a card or account through an external payment provider.
type Gateway interface {
	Charge(ctx context.Context, amount float64) (*ChargeResult, error)
}

// Ledger records completed payments.
type Ledger interface {
	SavePayment(ctx context.Context, amount float64, status string) error
}

// NotificationClient delivers best-effort payment confirmations.
type NotificationClient interface {
	SendPaymentConfirmation(ctx context.Context, recipient string, amount float64) error
}

// PaymentProcessor orchestrates a single charge: gateway first, then the
// ledger, then a best-effort confirmation. A declined charge is a normal
// false outcome with no side effects.
type PaymentProcessor struct {
	gateway       Gateway
	ledger        Ledger
	notifications NotificationClient
	cfg           *config.Config
}

func NewPaymentProcessor(gateway Gateway, ledger Ledger, notifications NotificationClient, cfg *config.Config) *PaymentProcessor {
	return &PaymentProcessor{
		gateway:       gateway,
		ledger:        ledger,
		notifications: notifications,
		cfg:           cfg,
	}
}

func (p *PaymentProcessor) ProcessPayment(ctx context.Context, amount float64, recipient string) (bool, error) {
	if amount <= 0 {
		return false, apperrors.InvalidInput("payment amount must be positive")
	}
	if recipient == "" {
		return false, apperrors.InvalidInput("payment recipient cannot be empty")
	}

	result, err := p.gateway.Charge(ctx, amount)
	if err != nil {
		return false, apperrors.Internal("Failed to charge payment", err)
	}

	if !result.Success {
		p.cfg.Log.Info("Payment declined", "amount", amount, "recipient", recipient)
		return false, nil
	}

	if err := p.ledger.SavePayment(ctx, amount, StatusSuccess); err != nil {
		return false, apperrors.Internal("Failed to record payment", err)
	}

	if err := p.notifications.SendPaymentConfirmation(ctx, recipient, amount); err != nil {
		p.cfg.Log.Warn("Failed to send payment confirmation",
			"recipient", recipient,
			"amount", amount,
			"error", err,
		)
	}

	p.cfg.Log.Info("Payment processed successfully", "amount", amount, "recipient", recipient)
	return true, nil
}
