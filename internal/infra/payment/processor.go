// Package payment is a stub processor: it approves any charge up to the
// configured limit and keeps an in-memory ledger of approved charges.
// A real processor integration replaces this adapter behind the same port.
package payment

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"happyhotel/internal/domain/booking"
	"happyhotel/internal/pkg/config"
	"happyhotel/internal/pkg/errs"
)

type LedgerEntry struct {
	RoomID     string
	Amount     float64
	ChargedAt  time.Time
	GuestCount int
}

type Processor struct {
	limit float64

	mu     sync.Mutex
	ledger []LedgerEntry
}

func NewProcessor(cfg config.PaymentConfig) *Processor {
	return &Processor{limit: cfg.ChargeLimit}
}

func (p *Processor) Charge(_ context.Context, req booking.Request, amount float64) error {
	if amount < 0 {
		return errs.Mark(errs.New("negative charge amount"), booking.ErrPaymentDeclined)
	}
	if p.limit > 0 && amount > p.limit {
		slog.Warn("charge declined, amount exceeds limit", "amount", amount, "limit", p.limit)
		return errs.Mark(errs.New("charge limit exceeded"), booking.ErrPaymentDeclined)
	}

	p.mu.Lock()
	p.ledger = append(p.ledger, LedgerEntry{
		RoomID:     req.RoomID.String(),
		Amount:     amount,
		ChargedAt:  time.Now().UTC(),
		GuestCount: req.GuestCount,
	})
	p.mu.Unlock()

	slog.Info("charge approved", "amount", amount, "room_id", req.RoomID)
	return nil
}

// Ledger returns a copy of the approved charges, in charge order.
func (p *Processor) Ledger() []LedgerEntry {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]LedgerEntry, len(p.ledger))
	copy(out, p.ledger)
	return out
}
