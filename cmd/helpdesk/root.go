package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/helpdeskhq/helpdesk-go/pkg/apiclient"
	"github.com/helpdeskhq/helpdesk-go/pkg/config"
	"github.com/helpdeskhq/helpdesk-go/pkg/helpdesk"
	"github.com/helpdeskhq/helpdesk-go/pkg/logger"
	"github.com/helpdeskhq/helpdesk-go/pkg/session"
	"github.com/helpdeskhq/helpdesk-go/pkg/sessionstore"
)

// fileConfig is the optional YAML config file, read before environment
// variables so the environment always wins. Timeout is a duration string
// ("10s"); yaml.v3 has no native duration decoding.
type fileConfig struct {
	BaseURL     string `yaml:"base_url"`
	Timeout     string `yaml:"timeout"`
	SessionFile string `yaml:"session_file"`
}

func (fc fileConfig) timeout() (time.Duration, error) {
	if fc.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(fc.Timeout)
	if err != nil {
		return 0, fmt.Errorf("config timeout %q: %w", fc.Timeout, err)
	}
	return d, nil
}

// app carries everything a subcommand needs. Built once per invocation in
// the root command's PersistentPreRunE.
type app struct {
	log     *slog.Logger
	client  *apiclient.Client
	manager *session.Manager

	auth       *helpdesk.AuthService
	tickets    *helpdesk.TicketService
	users      *helpdesk.UserService
	categories *helpdesk.CategoryService
	health     *helpdesk.HealthService
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath string
		verbose bool
		a       app
	)

	root := &cobra.Command{
		Use:   "helpdesk",
		Short: "Command-line client for the helpdesk ticketing API",
		Long: `helpdesk talks to the ticketing backend: open and browse tickets,
manage your session, and inspect users and categories.

Sessions persist across invocations; log in once with "helpdesk login".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			built, err := buildApp(cfgPath, verbose)
			if err != nil {
				return err
			}
			a = *built

			if err := a.manager.Bootstrap(cmd.Context()); err != nil {
				return err
			}
			// Short-lived process: wait for restoration to conclude so
			// commands see the verified identity.
			<-a.manager.Restored()
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default: $XDG_CONFIG_HOME/helpdesk/config.yaml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")

	root.AddCommand(
		newLoginCmd(&a),
		newLogoutCmd(&a),
		newWhoamiCmd(&a),
		newTicketsCmd(&a),
		newUsersCmd(&a),
		newCategoriesCmd(&a),
		newHealthCmd(&a),
	)

	return root
}

func buildApp(cfgPath string, verbose bool) (*app, error) {
	fc, err := loadFileConfig(cfgPath)
	if err != nil {
		return nil, err
	}

	var apiCfg apiclient.Config
	if err := config.Load(&apiCfg); err != nil {
		return nil, err
	}
	if fc.BaseURL != "" && os.Getenv("HELPDESK_API_BASE_URL") == "" {
		apiCfg.BaseURL = fc.BaseURL
	}
	fileTimeout, err := fc.timeout()
	if err != nil {
		return nil, err
	}
	if fileTimeout > 0 && os.Getenv("HELPDESK_HTTP_TIMEOUT") == "" {
		apiCfg.Timeout = fileTimeout
	}

	logOpts := []logger.Option{logger.WithOutput(os.Stderr)}
	if verbose {
		logOpts = append(logOpts, logger.WithDevelopment())
	} else {
		logOpts = append(logOpts, logger.WithLevel(slog.LevelWarn))
	}
	log := logger.New(logOpts...)

	client, err := apiclient.NewFromConfig(apiCfg)
	if err != nil {
		return nil, err
	}

	sessionPath := fc.SessionFile
	if sessionPath == "" {
		sessionPath, err = defaultSessionPath()
		if err != nil {
			return nil, err
		}
	}

	var sessCfg session.Config
	if err := config.Load(&sessCfg); err != nil {
		return nil, err
	}

	manager := session.New(client, sessionstore.NewFileStore(sessionPath),
		session.WithConfig(sessCfg),
		session.WithLogger(log),
	)

	return &app{
		log:        log,
		client:     client,
		manager:    manager,
		auth:       helpdesk.NewAuthService(client),
		tickets:    helpdesk.NewTicketService(client),
		users:      helpdesk.NewUserService(client),
		categories: helpdesk.NewCategoryService(client),
		health:     helpdesk.NewHealthService(client),
	}, nil
}

// loadFileConfig reads the YAML config file. A missing default file is fine;
// a missing file named explicitly with --config is an error.
func loadFileConfig(path string) (fileConfig, error) {
	explicit := path != ""
	if !explicit {
		dir, err := os.UserConfigDir()
		if err != nil {
			return fileConfig{}, nil
		}
		path = filepath.Join(dir, "helpdesk", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return fileConfig{}, nil
		}
		return fileConfig{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fileConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return fc, nil
}

func defaultSessionPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "helpdesk", "session.json"), nil
}

// requireAuth gates subcommands that need a logged-in session.
func (a *app) requireAuth() error {
	if a.manager.State() != session.StateAuthenticated {
		return errors.New("not logged in; run \"helpdesk login\" first")
	}
	return nil
}
