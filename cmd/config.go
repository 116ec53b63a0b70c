package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

const (
	keyLogLevel       = "log.level"
	keyCompareEpsilon = "compare.epsilon"
	keyOutputFormat   = "output.format"

	envPrefix = "AFFINE"
)

// defaultConfigFiles lists the config files tried, in order, when --config
// is not given.
func defaultConfigFiles() []string {
	var files []string
	if home, err := os.UserHomeDir(); err == nil {
		files = append(files, filepath.Join(home, ".affine.toml"))
	}
	return append(files, "affine.toml")
}

/**
 * @brief Resolves configuration from, by priority: command line flags,
 * AFFINE_* environment variables, the config file, then flag defaults.
 */
func initConfig(opts *options, cmd *cobra.Command) error {
	v := opts.v
	v.SetConfigType("toml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	flags := cmd.Root().PersistentFlags()
	for key, flag := range map[string]string{
		keyLogLevel:       "log-level",
		keyCompareEpsilon: "epsilon",
		keyOutputFormat:   "output",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return err
		}
	}

	if opts.cfgFile != "" {
		v.SetConfigFile(opts.cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config file %s: %w", opts.cfgFile, err)
		}
	} else {
		for _, candidate := range defaultConfigFiles() {
			if _, err := os.Stat(candidate); err != nil {
				continue
			}
			v.SetConfigFile(candidate)
			if err := v.ReadInConfig(); err != nil {
				return fmt.Errorf("config file %s: %w", candidate, err)
			}
			break
		}
	}

	switch opts.format() {
	case formatText, formatTOML:
	default:
		return fmt.Errorf("output format %q: must be %s or %s", opts.format(), formatText, formatTOML)
	}
	if opts.epsilon() < 0 {
		return errors.New("compare.epsilon must not be negative")
	}
	return nil
}
