package config

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont/config"
	"github.com/spf13/viper"
)

// ViperProvider exposes the values bound in a viper instance (CLI flags, config file).
type ViperProvider struct {
	v *viper.Viper
}

// NewViperProvider creates a ViperProvider backed by v.
func NewViperProvider(v *viper.Viper) ViperProvider {
	return ViperProvider{v: v}
}

// Get returns the value of key when it has been set by a flag, the config file or a default.
func (p ViperProvider) Get(_ context.Context, key string) (string, error) {
	if !p.v.IsSet(key) {
		return "", fmt.Errorf("key %s not set", key)
	}
	return p.v.GetString(key), nil
}

var _ config.Provider = ViperProvider{}
