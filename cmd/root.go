package cmd

import (
	"context"
	"fmt"

	"github.com/spaghettifunk/affine/engine/core"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const appName = "affine"

// Set at build time with -ldflags "-X github.com/spaghettifunk/affine/cmd.version=...".
var version = "dev"

// options is the resolved configuration shared by every subcommand.
type options struct {
	v       *viper.Viper
	cfgFile string
}

func (o *options) epsilon() float64 {
	return o.v.GetFloat64(keyCompareEpsilon)
}

func (o *options) format() string {
	return o.v.GetString(keyOutputFormat)
}

// NewRootCommand returns the affine command tree with a fresh configuration.
func NewRootCommand() *cobra.Command {
	opts := &options{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "Compose, decompose and inspect 3D affine transforms",
		Long: `affine works with position/rotation/scale transforms and the 4x4
matrices they compose into. It can build a matrix from its parts, split
a matrix back into position, rotation and signed scale, and report on
transform documents, optionally reloading them as they change.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(opts, cmd); err != nil {
				return fmt.Errorf("failed to initialize config: %w", err)
			}
			if err := core.SetLogLevel(opts.v.GetString(keyLogLevel)); err != nil {
				return err
			}
			if used := opts.v.ConfigFileUsed(); used != "" {
				core.LogDebug("using config file %s", used)
			}
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.affine.toml, then ./affine.toml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().Float64("epsilon", 1e-6, "values closer to zero than this are printed as zero")
	rootCmd.PersistentFlags().StringP("output", "o", formatText, "output format (text|toml)")

	rootCmd.AddCommand(newComposeCmd(opts))
	rootCmd.AddCommand(newDecomposeCmd(opts))
	rootCmd.AddCommand(newInspectCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the command tree until it finishes or ctx is cancelled.
func Execute(ctx context.Context, args []string) error {
	rootCmd := NewRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}
