package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/germtb/interop/config"
	"github.com/germtb/interop/logger"
)

type globalOptions struct {
	configFile string
	v          *viper.Viper
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{v: config.New()}

	cmd := &cobra.Command{
		Use:           "interop",
		Short:         "Render components on a timer into a host page",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: `  interop run                      Run the demo until interrupted
  interop run --serve :8080        Also serve the live page over HTTP
  interop render --elapsed 42      Print the page rendered at 42 seconds`,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "config file (default: ./interop.yaml when present)")
	flags.String("log-level", string(logger.LogLevelInfo), "log level: Trace, Debug, Info, Warning, Off")
	flags.Duration("interval", config.Default().Interval, "tick interval for every timer")
	flags.String("page", "", "HTML page holding the mount targets (default: generated)")

	cmd.AddCommand(
		newRunCmd(opts),
		newRenderCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// load resolves the configuration and installs the configured logger.
func (o *globalOptions) load(cmd *cobra.Command) (config.Config, error) {
	if err := config.BindFlags(o.v, cmd.Flags()); err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(o.v, o.configFile)
	if err != nil {
		return config.Config{}, err
	}
	level, err := logger.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return config.Config{}, err
	}
	logger.SetDefault(logger.New(os.Stderr, level))
	return cfg, nil
}
