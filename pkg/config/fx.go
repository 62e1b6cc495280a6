package config

import (
	"os"

	"go.uber.org/fx"
)

var Module = fx.Module("config", fx.Provide(
	// Loads the file named by Path when it exists. Commands that only compare
	// files work without one, so a missing file yields the defaults.
	func() (*Config, error) {
		path := Path()
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return Defaults(), nil
		}

		return LoadConfigFile(path)
	},
))
