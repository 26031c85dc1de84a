// Package notify delivers booking confirmations to a webhook endpoint, the
// way a mail relay would be called in production.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"happyhotel/internal/domain/booking"
	"happyhotel/internal/pkg/config"
	"happyhotel/internal/pkg/errs"
)

type confirmationPayload struct {
	BookingID  string    `json:"booking_id"`
	RoomID     string    `json:"room_id"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	GuestCount int       `json:"guest_count"`
	Prepaid    bool      `json:"prepaid"`
	Price      float64   `json:"price"`
}

type WebhookNotifier struct {
	url    string
	client *http.Client
}

// NewWebhookNotifier builds the notifier. With an empty URL delivery is
// disabled: confirmations are logged and reported as sent.
func NewWebhookNotifier(cfg config.NotifyConfig) *WebhookNotifier {
	return &WebhookNotifier{
		url: cfg.WebhookURL,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

func (n *WebhookNotifier) SendBookingConfirmation(ctx context.Context, rec booking.Record) error {
	if n.url == "" {
		slog.Info("confirmation webhook disabled, logging only", "booking_id", rec.ID)
		return nil
	}

	payload := confirmationPayload{
		BookingID:  rec.ID.String(),
		RoomID:     rec.RoomID.String(),
		CheckIn:    rec.CheckIn,
		CheckOut:   rec.CheckOut,
		GuestCount: rec.GuestCount,
		Prepaid:    rec.Prepay,
		Price:      rec.Price,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return errs.Mark(err, booking.ErrConfirmationFailed)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return errs.Mark(err, booking.ErrConfirmationFailed)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return errs.Mark(err, booking.ErrConfirmationFailed)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errs.Mark(
			errs.New("webhook endpoint returned status "+resp.Status),
			booking.ErrConfirmationFailed,
		)
	}

	return nil
}
