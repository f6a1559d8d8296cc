package config

import (
	"github.com/spf13/viper"
)

// ViperLoader reads keys from an optional config file, with environment
// variables taking precedence
type ViperLoader struct {
	v *viper.Viper
}

var _ ConfigLoader = (*ViperLoader)(nil)

// NewViperLoader returns a loader backed by the environment and, when path is
// not empty, the config file at path (any format viper supports)
func NewViperLoader(path string) (*ViperLoader, error) {
	v := viper.New()
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	return &ViperLoader{v: v}, nil
}

// Get retrieves key from the environment or the config file
func (l *ViperLoader) Get(key string) string {
	return l.v.GetString(key)
}
