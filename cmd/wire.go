package cmd

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bnema/partners-cli/internal/adapters/api"
	chainstore "github.com/bnema/partners-cli/internal/adapters/kv/chain"
	filestore "github.com/bnema/partners-cli/internal/adapters/kv/file"
	passstore "github.com/bnema/partners-cli/internal/adapters/kv/pass"
	sqlitestore "github.com/bnema/partners-cli/internal/adapters/kv/sqlite"
	sessiontoml "github.com/bnema/partners-cli/internal/adapters/session/toml"
	"github.com/bnema/partners-cli/internal/application"
	"github.com/bnema/partners-cli/internal/config"
	"github.com/bnema/partners-cli/internal/ports"
	"github.com/spf13/viper"
	"pkt.systems/pslog"
)

type app struct {
	cfg       config.Config
	api       ports.PartnersAPI
	sessions  *application.SessionContext
	auth      *application.AuthService
	profiles  *application.ProfileService
	directory *application.DirectoryService
	closers   []func() error
}

func wireApp(ctx context.Context, v *viper.Viper, configPath string) (*app, error) {
	cfg, err := config.Load(v, configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	kv, closeKV, err := openKVStore(ctx, cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("wire session store: %w", err)
	}

	client := api.Client{
		BaseURL:        cfg.API.BaseURL,
		HTTPClient:     http.DefaultClient,
		RequestTimeout: cfg.API.Timeout,
	}

	sessions := application.NewSessionContext(sessiontoml.NewStore(kv))
	sessions.Init(ctx)

	pslog.Ctx(ctx).Debug("wired", "api", cfg.API.BaseURL, "store", cfg.Store.Backend, "state", cfg.Store.Path)

	a := &app{
		cfg:       cfg,
		api:       client,
		sessions:  sessions,
		auth:      application.NewAuthService(client, sessions),
		profiles:  application.NewProfileService(client, sessions),
		directory: application.NewDirectoryService(client, sessions),
	}
	if closeKV != nil {
		a.closers = append(a.closers, closeKV)
	}
	return a, nil
}

func (a *app) close() error {
	var firstErr error
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	a.closers = nil
	return firstErr
}

func (a *app) matchmaker(localOnly bool) *application.Matchmaker {
	return application.NewMatchmaker(a.api, a.sessions, ports.MatchOptions{LocalOnly: localOnly})
}

func openKVStore(ctx context.Context, cfg config.StoreConfig) (ports.KVStore, func() error, error) {
	switch cfg.Backend {
	case config.BackendChain:
		store, err := chainstore.NewPassFirstWithFileFallback(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return store, nil, nil
	case config.BackendFile:
		return filestore.NewStore(cfg.Path), nil, nil
	case config.BackendPass:
		return passstore.NewStore(), nil, nil
	case config.BackendSQLite:
		store, err := sqlitestore.Open(ctx, cfg.SQLitePath())
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	default:
		return nil, nil, fmt.Errorf("unsupported store backend %q", cfg.Backend)
	}
}
