package config

import (
	"os"

	"github.com/spf13/pflag"
)

const defaultPath = "config.yaml"

// ResolvePath returns the config file path from --config, then CONFIG_PATH,
// then the default.
func ResolvePath(name string, args []string) (string, error) {
	flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
	path := flagSet.StringP("config", "c", "", "path to the yaml config file")
	if err := flagSet.Parse(args); err != nil {
		return "", err
	}

	if *path != "" {
		return *path, nil
	}
	if env := os.Getenv("CONFIG_PATH"); env != "" {
		return env, nil
	}
	return defaultPath, nil
}
