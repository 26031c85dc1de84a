package components

import (
	"context"

	"happyhotel/internal/infra/db"
	"happyhotel/internal/infra/memstore"
	"happyhotel/internal/infra/repository"
	"happyhotel/internal/pkg/config"
	"happyhotel/internal/usecase/commands"
	"happyhotel/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewBookingStores,
	),
)

// NewBookingStores selects the booking store backend from STORE_DRIVER.
// The postgres driver opens a pgx pool whose lifetime is tied to the fx
// lifecycle; the memory driver has no external resources.
func NewBookingStores(lc fx.Lifecycle, cfg config.Config) (commands.BookingStore, queries.BookingReadStore, error) {
	if cfg.Store.Driver == "postgres" {
		pool, cleanup, err := db.Connect(cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				cleanup()
				return nil
			},
		})
		repo := repository.NewBookingRepository(pool)
		return repo, repo, nil
	}

	store := memstore.New()
	return store, store, nil
}
