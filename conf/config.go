package conf

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const envPrefix = "briskcoin"

type Configuration struct {
	// Network name as accepted by network.Parse.
	Network string
	Log     struct {
		Level   string
		Dir     string
		Modules []string
	}
}

// LoadConfig reads the yaml file at path on top of the built-in defaults.
// An empty path uses defaults only. BRISKCOIN_* environment variables
// override both, e.g. BRISKCOIN_LOG_LEVEL.
func LoadConfig(path string) (*Configuration, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigType("yaml")

	v.SetDefault("network", "main")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.dir", "")
	v.SetDefault("log.modules", []string{})

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	config := &Configuration{}
	if err := v.Unmarshal(config); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	return config, nil
}
