package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	authadapter "github.com/bnema/richpresence-cli/internal/adapters/auth"
	openeradapter "github.com/bnema/richpresence-cli/internal/adapters/opener"
	presencefile "github.com/bnema/richpresence-cli/internal/adapters/presence/file"
	statusadapter "github.com/bnema/richpresence-cli/internal/adapters/render/status"
	tomlrepo "github.com/bnema/richpresence-cli/internal/adapters/repo/toml"
	chainstore "github.com/bnema/richpresence-cli/internal/adapters/secrets/chain"
	filestore "github.com/bnema/richpresence-cli/internal/adapters/secrets/file"
	"github.com/bnema/richpresence-cli/internal/application"
	"github.com/bnema/richpresence-cli/internal/config"
	"github.com/bnema/richpresence-cli/internal/domain"
	"github.com/bnema/richpresence-cli/internal/logging"
	"github.com/bnema/richpresence-cli/internal/ports"
	"github.com/spf13/viper"
)

type rootFlags struct {
	configFile string
	logLevel   string
}

type app struct {
	viper          *viper.Viper
	cfg            config.Config
	logger         *slog.Logger
	sessions       *application.SessionRegistry
	focus          *application.FocusService
	board          *application.PresenceBoard
	poller         *application.Poller
	statusRenderer func(application.Status, statusadapter.RenderOptions) (string, error)
	now            func() time.Time
}

func (a *app) wire(flags rootFlags, stderr io.Writer) error {
	v, err := config.New(flags.configFile)
	if err != nil {
		return err
	}
	if flags.logLevel != "" {
		v.Set("log.level", flags.logLevel)
	}

	cfg, err := config.Load(v)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	accounts, err := tomlrepo.NewAccountRepository(v, ports.SystemClock{})
	if err != nil {
		return fmt.Errorf("wire account repository: %w", err)
	}
	focusRepo, err := tomlrepo.NewFocusRepository(v, ports.SystemClock{})
	if err != nil {
		return fmt.Errorf("wire focus repository: %w", err)
	}

	secrets, err := wireSecretStore(cfg, logger)
	if err != nil {
		return err
	}

	opener := openeradapter.Tee{openeradapter.NewWriter(stderr, "")}
	if cfg.OpenBrowser {
		opener = append(openeradapter.Tee{openeradapter.NewBrowser()}, opener...)
	}
	sessions := application.NewSessionRegistry(
		cfg.ProviderConfigs(),
		identityClientFactory(cfg, accounts, secrets, logger),
		opener,
		application.WithLogger(logger),
	)

	focus := application.NewFocusService(cfg.Activity, focusRepo, logger)
	board := application.NewPresenceBoard()
	poller := application.NewPoller(board, focus, presencefile.NewSources(cfg.PresenceDir), cfg.PollIntervals, logger)

	*a = app{
		viper:          v,
		cfg:            cfg,
		logger:         logger,
		sessions:       sessions,
		focus:          focus,
		board:          board,
		poller:         poller,
		statusRenderer: statusadapter.Render,
		now:            time.Now,
	}
	return nil
}

func wireSecretStore(cfg config.Config, logger *slog.Logger) (ports.SecretStore, error) {
	if cfg.SecretsBackend == config.SecretsBackendFile {
		return filestore.NewStore(cfg.SecretsDir), nil
	}

	store, err := chainstore.NewPassFirstWithFileFallback(cfg.SecretsDir, chainstore.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("wire secret store chain: %w", err)
	}
	return store, nil
}

func identityClientFactory(cfg config.Config, accounts ports.AccountRepository, secrets ports.SecretStore, logger *slog.Logger) application.ClientFactory {
	return func(provider domain.ProviderConfig) (ports.IdentityClient, error) {
		settings, ok := cfg.Providers[provider.ID]
		if !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownProvider, provider.ID)
		}
		mode, err := authadapter.ParseMode(settings.Mode)
		if err != nil {
			return nil, fmt.Errorf("providers.%s.mode: %w", provider.ID, err)
		}

		client, err := authadapter.NewClient(authadapter.Options{
			Provider: provider,
			Endpoints: authadapter.Endpoints{
				AuthPath:   settings.AuthPath,
				TokenPath:  settings.TokenPath,
				DevicePath: settings.DevicePath,
			},
			Mode:       mode,
			ListenAddr: settings.Listen,
			Timeout:    settings.Timeout,
		}, accounts, secrets, logger)
		if err != nil {
			return nil, err
		}
		return client, nil
	}
}
