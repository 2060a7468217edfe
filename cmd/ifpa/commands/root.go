package commands

import (
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/ifpa-client/internal/config"
	"github.com/fivetwenty-io/ifpa-client/internal/constants"
	"github.com/fivetwenty-io/ifpa-client/pkg/ifpa"
	"github.com/fivetwenty-io/ifpa-client/pkg/ifpaclient"
)

// ClientFactory builds the API client used by commands.
type ClientFactory func(cfg *ifpa.Config) (ifpa.Client, error)

// App carries state shared by every command of one invocation.
type App struct {
	viper     *viper.Viper
	config    *config.Config
	logger    zerolog.Logger
	newClient ClientFactory
	stdin     io.Reader
}

// NewApp returns an App using ifpaclient.New.
func NewApp() *App {
	return &App{
		newClient: ifpaclient.New,
		logger:    zerolog.Nop(),
		stdin:     os.Stdin,
	}
}

// WithClientFactory replaces the client constructor.
func (a *App) WithClientFactory(factory ClientFactory) *App {
	a.newClient = factory

	return a
}

// WithStdin replaces the reader prompts read from.
func (a *App) WithStdin(stdin io.Reader) *App {
	a.stdin = stdin

	return a
}

// NewRootCommand builds the ifpa command tree.
func NewRootCommand(app *App, version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ifpa",
		Short: "IFPA pinball rankings CLI",
		Long: `A command-line interface for the International Flipper Pinball Association API.

Look up players, tournaments, rankings, series standings and directors.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.initialize(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is $HOME/.ifpa/config.yml)")
	flags.String("api-key", "", "IFPA API key (default from IFPA_API_KEY)")
	flags.String("base-url", "", "API base URL")
	flags.StringP("output", "o", "", "output format (table, json, yaml)")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.Bool("no-color", false, "disable colored output")
	flags.Duration("timeout", 0, "request timeout")
	flags.Int("retries", 0, "retry 429, 5xx and connection errors this many times")
	flags.Bool("skip-validation", false, "send parameters without local validation")

	rootCmd.AddCommand(NewVersionCommand(app, version, commit, date))
	rootCmd.AddCommand(NewLoginCommand(app))
	rootCmd.AddCommand(NewConfigCommand(app))
	rootCmd.AddCommand(NewPlayersCommand(app))
	rootCmd.AddCommand(NewTournamentsCommand(app))
	rootCmd.AddCommand(NewRankingsCommand(app))
	rootCmd.AddCommand(NewSeriesCommand(app))
	rootCmd.AddCommand(NewDirectorsCommand(app))
	rootCmd.AddCommand(NewStatsCommand(app))

	return rootCmd
}

// flagBindings maps config keys to persistent flags.
var flagBindings = map[string]string{
	"api_key":         "api-key",
	"base_url":        "base-url",
	"output":          "output",
	"logging.level":   "log-level",
	"no_color":        "no-color",
	"timeout":         "timeout",
	"retries":         "retries",
	"skip_validation": "skip-validation",
}

func (a *App) initialize(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")

	v := config.NewViper(configPath)

	for key, flag := range flagBindings {
		if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
			_ = v.BindPFlag(key, f)
		}
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	a.viper = v
	a.config = cfg

	if cfg.NoColor || !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}

	a.logger = setupLogger(cfg.Logging, cmd.ErrOrStderr(), color.NoColor)

	return nil
}

// setupLogger configures the zerolog logger.
func setupLogger(cfg config.LoggingConfig, out io.Writer, noColor bool) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.WarnLevel
	}

	if cfg.Format == "json" {
		return zerolog.New(out).Level(level).With().Timestamp().Logger()
	}

	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

// client builds an API client from the loaded configuration.
func (a *App) client() (ifpa.Client, error) {
	if a.config.APIKey == "" {
		return nil, constants.ErrNoAPIKeyConfigured
	}

	clientConfig, err := a.config.ClientConfig(
		ifpa.NewZerologLogger(a.logger),
		a.logger.GetLevel() <= zerolog.DebugLevel,
	)
	if err != nil {
		return nil, err
	}

	client, err := a.newClient(clientConfig)
	if err != nil {
		if closer, ok := clientConfig.Cache.(io.Closer); ok {
			err = errors.Join(err, closer.Close())
		}

		return nil, err
	}

	return client, nil
}

// withClient runs fn with a client and closes it afterwards.
func (a *App) withClient(fn func(client ifpa.Client) error) error {
	client, err := a.client()
	if err != nil {
		return err
	}

	defer func() { _ = client.Close() }()

	return fn(client)
}
