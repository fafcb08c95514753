package config

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont/config"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// InitConfigProvider installs the global configuration provider chain:
// environment variables, then the viper instance registered by the CLI (if any),
// then Vault when VAULT_ADDR is configured.
type InitConfigProvider struct {
	Logger     zerolog.Logger `resolve:""`
	Server     string         `config:"VAULT_ADDR" default:"-"`
	Token      string         `config:"VAULT_TOKEN" default:"-"`
	MountPath  string         `config:"VAULT_MOUNT_PATH" default:"secret"`
	SecretPath string         `config:"VAULT_SECRET_PATH" default:"chillerplant"`
}

// Initialize builds the provider chain and sets it as the global config provider.
func (i InitConfigProvider) Initialize(ctx context.Context) (context.Context, error) {
	providers := []config.Provider{config.EnvVarProvider{}}

	if v, err := depend.Resolve[*viper.Viper](); err == nil && v != nil {
		providers = append(providers, NewViperProvider(v))
	}

	if i.Server != "-" {
		token := i.Token
		if token == "-" {
			token = ""
		}
		vaultProvider, err := NewVaultProvider(i.Server, token, i.MountPath, i.SecretPath)
		if err != nil {
			return ctx, fmt.Errorf("failed to initialize Vault provider: %w", err)
		}
		providers = append(providers, vaultProvider)
		i.Logger.Info().Str("vault_addr", i.Server).Msg("vault configuration provider enabled")
	}

	config.SetGlobalProvider(config.NewCompositeProvider(providers...))
	return ctx, nil
}
