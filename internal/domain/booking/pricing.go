package booking

// NightlyRatePerGuest is the flat pricing policy: every guest pays this per
// night regardless of room class.
const NightlyRatePerGuest = 50.0

// Price computes the stay price in the local currency:
// nights x guests x NightlyRatePerGuest. It is a pure function of the
// request and fails with ErrInvalidRequest on non-positive nights or guests.
func Price(req Request) (float64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}
	return float64(req.Nights()) * float64(req.GuestCount) * NightlyRatePerGuest, nil
}
