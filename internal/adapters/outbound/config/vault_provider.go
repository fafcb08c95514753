package config

import (
	"context"
	"fmt"
	"sync"

	"github.com/cleitonmarx/symbiont/config"
	"github.com/hashicorp/vault/api"
)

// VaultProvider provides configuration values from a HashiCorp Vault KV v2 secret.
// The secret is read once and cached for the process lifetime.
type VaultProvider struct {
	client     *api.Client
	mountPath  string
	secretPath string

	once sync.Once
	data map[string]any
	err  error
}

// NewVaultProvider creates a new VaultProvider.
//
// The server is the Vault server address (e.g., "http://localhost:8200").
// The mountPath is the mount point for the KV secrets engine (e.g., "secret")
// and secretPath the path of the secret within the mount (e.g., "chillerplant").
func NewVaultProvider(server, token, mountPath, secretPath string) (*VaultProvider, error) {
	switch {
	case server == "":
		return nil, fmt.Errorf("server is required")
	case token == "":
		return nil, fmt.Errorf("token is required")
	case mountPath == "":
		return nil, fmt.Errorf("mountPath is required")
	case secretPath == "":
		return nil, fmt.Errorf("secretPath is required")
	}

	cfg := api.DefaultConfig()
	cfg.Address = server

	client, err := api.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create vault client: %w", err)
	}
	client.SetToken(token)

	return &VaultProvider{
		client:     client,
		mountPath:  mountPath,
		secretPath: secretPath,
	}, nil
}

// Get retrieves a configuration value from the cached secret.
func (vp *VaultProvider) Get(ctx context.Context, key string) (string, error) {
	vp.once.Do(func() {
		secret, err := vp.client.KVv2(vp.mountPath).Get(ctx, vp.secretPath)
		if err != nil {
			vp.err = fmt.Errorf("failed to read vault secret %s: %w", vp.secretPath, err)
			return
		}
		if secret == nil || secret.Data == nil {
			vp.err = fmt.Errorf("vault secret %s not found", vp.secretPath)
			return
		}
		vp.data = secret.Data
	})
	if vp.err != nil {
		return "", vp.err
	}

	value, ok := vp.data[key]
	if !ok {
		return "", fmt.Errorf("vault secret %s does not contain key %s", vp.secretPath, key)
	}

	strValue, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("vault secret key %s is not a string", key)
	}
	return strValue, nil
}

var _ config.Provider = (*VaultProvider)(nil)
