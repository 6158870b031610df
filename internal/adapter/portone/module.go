package portone

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/storefront/internal/config"
)

// Module exposes the gateway client implementation to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	credentials := Credentials{
		APIKey:    p.Config.GatewayAPIKey,
		APISecret: p.Config.GatewayAPISecret,
		ShopID:    p.Config.GatewayShopID,
	}
	return NewHTTPClient(p.Config.GatewayAddress, credentials, p.Logger)
}
