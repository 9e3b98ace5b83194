// Package command contains the commands of the jpnorm tool.
package command

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/scalecode-solutions/jpnorm/internal/clilog"
)

// EnvPrefix is prepended to a flag name, upper-cased with dashes turned into
// underscores, to form the environment variable that supplies the flag.
const EnvPrefix = "JPNORM"

type rootOptions struct {
	LogFormat string
	LogLevel  string
}

// NewRoot returns the jpnorm command with all of its subcommands.
func NewRoot() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "jpnorm",
		Short: "jpnorm classifies and normalizes Japanese text.",
		Long: "jpnorm classifies and normalizes Japanese text.\n\n" +
			"Each command works on its arguments, or on the lines of standard input when\n" +
			"there are none. Every flag can also be set through the environment, e.g.\n" +
			"JPNORM_LOG_LEVEL=debug for --log-level.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := bindEnv(cmd.Flags()); err != nil {
				return err
			}
			_, err := clilog.Init(cmd.ErrOrStderr(), opts.LogFormat, opts.LogLevel)
			return err
		},
	}
	root.PersistentFlags().StringVar(&opts.LogFormat, "log-fmt", clilog.FormatText, "log format: text, json or logfmt")
	root.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "info", "log level: debug, info, warn or error")

	root.AddCommand(newClassify(), newWidth(), newKana(), newNumber())
	return root
}

// bindEnv sets every flag not given on the command line from its
// environment variable, if there is one.
func bindEnv(fs *pflag.FlagSet) error {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Changed || !v.IsSet(f.Name) {
			return
		}
		if setErr := fs.Set(f.Name, v.GetString(f.Name)); setErr != nil {
			err = fmt.Errorf("environment value for --%s: %w", f.Name, setErr)
		}
	})
	return err
}
