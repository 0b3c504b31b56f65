package crypto

import (
	"context"
	"log/slog"

	"authhub/config"
	"authhub/internal/domain/service"
	"authhub/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/secrets"
	_ "gocloud.dev/secrets/localsecrets" // base64key:// keepers
)

// CipherParams holds dependencies for the token cipher, injected by Fx
type CipherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewTokenCipher opens the configured keeper, or derives an AES key from the
// session secret when none is configured.
func NewTokenCipher(params CipherParams) (service.TokenCipher, error) {
	keeperURL := params.Config.Encryption.KeeperURL
	if keeperURL == "" {
		params.Logger.Info("Using AES-256-CBC token cipher")

		return NewAESCipher(params.Config.Session.Secret)
	}

	keeper, err := secrets.OpenKeeper(params.Ctx, keeperURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open secrets keeper")
	}

	params.Logger.Info("Using secrets keeper token cipher")

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(keeper.Close())
		},
	})

	return NewKeeperCipher(keeper), nil
}
