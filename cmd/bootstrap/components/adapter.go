package components

import (
	"happyhotel/internal/infra/currency"
	"happyhotel/internal/infra/inventory"
	"happyhotel/internal/infra/notify"
	"happyhotel/internal/infra/payment"
	"happyhotel/internal/pkg/config"
	"happyhotel/internal/usecase/commands"
	"happyhotel/internal/usecase/queries"

	"go.uber.org/fx"
)

// AdapterModule wires the collaborator adapters behind the use case ports.
// The inventory instance is shared between the write and read sides so that
// availability reflects reservations immediately.
var AdapterModule = fx.Module("adapter",
	fx.Provide(
		func(cfg config.Config) config.InventoryConfig { return cfg.Inventory },
		func(cfg config.Config) config.PaymentConfig { return cfg.Payment },
		func(cfg config.Config) config.CurrencyConfig { return cfg.Currency },
		func(cfg config.Config) config.NotifyConfig { return cfg.Notify },
		fx.Annotate(
			inventory.NewMemory,
			fx.As(new(commands.RoomInventory)),
			fx.As(new(queries.RoomReadStore)),
		),
		fx.Annotate(
			payment.NewProcessor,
			fx.As(new(commands.PaymentGateway)),
		),
		fx.Annotate(
			notify.NewWebhookNotifier,
			fx.As(new(commands.ConfirmationNotifier)),
		),
		fx.Annotate(
			currency.NewConverter,
			fx.As(new(queries.CurrencyConverter)),
		),
	),
)
