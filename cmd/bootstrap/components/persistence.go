package components

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"

	"pawhaven/internal/infra/db"
	"pawhaven/internal/infra/mailer"
	"pawhaven/internal/infra/readstore"
	"pawhaven/internal/infra/uow"
	"pawhaven/internal/pkg/config"
	"pawhaven/internal/usecase/commands"
	"pawhaven/internal/usecase/queries"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		NewMailer,

		fx.Annotate(
			readstore.NewAnimalReadStore,
			fx.As(new(queries.AnimalReadStore)),
		),
		fx.Annotate(
			readstore.NewTransferReadStore,
			fx.As(new(queries.TransferReadStore)),
		),
		fx.Annotate(
			readstore.NewNotificationReadStore,
			fx.As(new(queries.NotificationReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewMailer(cfg config.Config) commands.Mailer {
	return mailer.NewLogMailer(cfg.Mail)
}
