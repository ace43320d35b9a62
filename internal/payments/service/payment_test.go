package service

import (
	"context"
	"errors"
	"testing"

	"roomly/pkg/config"
	apperrors "roomly/pkg/errors"
	"roomly/pkg/logger"
)

type mockGateway struct {
	chargeFunc  func(ctx context.Context, amount float64) (*ChargeResult, error)
	chargeCalls int
}

func (m *mockGateway) Charge(ctx context.Context, amount float64) (*ChargeResult, error) {
	m.chargeCalls++
	if m.chargeFunc != nil {
		return m.chargeFunc(ctx, amount)
	}
	return &ChargeResult{Success: true}, nil
}

type mockLedger struct {
	saveFunc   func(ctx context.Context, amount float64, status string) error
	saveCalls  int
	lastStatus string
	lastAmount float64
}

func (m *mockLedger) SavePayment(ctx context.Context, amount float64, status string) error {
	m.saveCalls++
	m.lastStatus = status
	m.lastAmount = amount
	if m.saveFunc != nil {
		return m.saveFunc(ctx, amount, status)
	}
	return nil
}

type mockNotificationClient struct {
	err   error
	calls int
}

func (m *mockNotificationClient) SendPaymentConfirmation(_ context.Context, _ string, _ float64) error {
	m.calls++
	return m.err
}

func newTestProcessor(gw *mockGateway, ledger *mockLedger, nc *mockNotificationClient) *PaymentProcessor {
	log := logger.New(logger.Config{
		Level:     "error",
		Format:    logger.JSON,
		AddSource: false,
		Service:   "test",
	})
	return NewPaymentProcessor(gw, ledger, nc, &config.Config{Log: log})
}

func TestProcessPayment_Successful(t *testing.T) {
	gw := &mockGateway{}
	ledger := &mockLedger{}
	nc := &mockNotificationClient{}
	processor := newTestProcessor(gw, ledger, nc)

	ok, err := processor.ProcessPayment(context.Background(), 100.0, "test@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected payment to succeed")
	}

	if gw.chargeCalls != 1 {
		t.Errorf("expected one charge, got %d", gw.chargeCalls)
	}
	if ledger.saveCalls != 1 {
		t.Errorf("expected one ledger write, got %d", ledger.saveCalls)
	}
	if ledger.lastStatus != StatusSuccess {
		t.Errorf("expected status %s, got %s", StatusSuccess, ledger.lastStatus)
	}
	if ledger.lastAmount != 100.0 {
		t.Errorf("expected amount 100.0, got %f", ledger.lastAmount)
	}
	if nc.calls != 1 {
		t.Errorf("expected one confirmation, got %d", nc.calls)
	}
}

func TestProcessPayment_Declined(t *testing.T) {
	gw := &mockGateway{
		chargeFunc: func(_ context.Context, _ float64) (*ChargeResult, error) {
			return &ChargeResult{Success: false}, nil
		},
	}
	ledger := &mockLedger{}
	nc := &mockNotificationClient{}
	processor := newTestProcessor(gw, ledger, nc)

	ok, err := processor.ProcessPayment(context.Background(), 150.0, "fail@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected payment to be declined")
	}

	if ledger.saveCalls != 0 {
		t.Errorf("expected no ledger write, got %d", ledger.saveCalls)
	}
	if nc.calls != 0 {
		t.Errorf("expected no confirmation, got %d", nc.calls)
	}
}

func TestProcessPayment_GatewayError(t *testing.T) {
	gw := &mockGateway{
		chargeFunc: func(_ context.Context, _ float64) (*ChargeResult, error) {
			return nil, errors.New("provider unreachable")
		},
	}
	ledger := &mockLedger{}
	processor := newTestProcessor(gw, ledger, &mockNotificationClient{})

	_, err := processor.ProcessPayment(context.Background(), 100.0, "test@example.com")
	if !apperrors.HasCode(err, apperrors.CodeInternal) {
		t.Fatalf("expected internal error, got %v", err)
	}
	if ledger.saveCalls != 0 {
		t.Errorf("expected no ledger write, got %d", ledger.saveCalls)
	}
}

func TestProcessPayment_SucceedsWhenNotificationFails(t *testing.T) {
	gw := &mockGateway{}
	ledger := &mockLedger{}
	nc := &mockNotificationClient{err: errors.New("smtp down")}
	processor := newTestProcessor(gw, ledger, nc)

	ok, err := processor.ProcessPayment(context.Background(), 100.0, "test@example.com")
	if err != nil {
		t.Fatalf("expected notification failure to be absorbed, got %v", err)
	}
	if !ok {
		t.Fatal("expected payment to succeed despite notification failure")
	}
	if nc.calls != 1 {
		t.Errorf("expected the confirmation to have been attempted, got %d", nc.calls)
	}
}

func TestProcessPayment_InvalidInput(t *testing.T) {
	tests := []struct {
		name      string
		amount    float64
		recipient string
	}{
		{"zero amount", 0, "test@example.com"},
		{"negative amount", -5, "test@example.com"},
		{"empty recipient", 100, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &mockGateway{}
			processor := newTestProcessor(gw, &mockLedger{}, &mockNotificationClient{})

			_, err := processor.ProcessPayment(context.Background(), tt.amount, tt.recipient)
			if !apperrors.HasCode(err, apperrors.CodeInvalidInput) {
				t.Fatalf("expected invalid input error, got %v", err)
			}
			if gw.chargeCalls != 0 {
				t.Errorf("expected no charge attempt, got %d", gw.chargeCalls)
			}
		})
	}
}
