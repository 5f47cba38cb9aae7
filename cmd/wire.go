package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/viper"

	scopeadapter "github.com/potatoworkshop/trellobot/internal/adapters/render/scope"
	chainstore "github.com/potatoworkshop/trellobot/internal/adapters/secrets/chain"
	redisstore "github.com/potatoworkshop/trellobot/internal/adapters/session/redis"
	tomlstore "github.com/potatoworkshop/trellobot/internal/adapters/session/toml"
	"github.com/potatoworkshop/trellobot/internal/adapters/trello"
	"github.com/potatoworkshop/trellobot/internal/application"
	"github.com/potatoworkshop/trellobot/internal/domain"
	"github.com/potatoworkshop/trellobot/internal/ports"
)

// Secret store keys for the two Trello credentials.
const (
	secretKeyAPIKey = "trello/api_key"
	secretKeyToken  = "trello/token"
)

const (
	backendFile  = "file"
	backendRedis = "redis"
)

type app struct {
	cfg           *viper.Viper
	log           *log.Logger
	service       *application.Service
	gateway       ports.Gateway
	secrets       ports.SecretStore
	backend       string
	scopeRenderer func(string, domain.SessionContext, scopeadapter.RenderOptions) (string, error)
}

func wireApp() (*app, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg := viper.New()
	cfg.SetConfigName("config")
	cfg.SetConfigType("toml")
	cfg.AddConfigPath(filepath.Join(homeDir, ".trellobot"))
	cfg.SetEnvPrefix("TRELLOBOT")
	cfg.AutomaticEnv()

	cfg.SetDefault("api.base_url", trello.DefaultBaseURL)
	cfg.SetDefault("api.timeout", trello.DefaultTimeout)
	cfg.SetDefault("session.backend", backendFile)
	cfg.SetDefault("redis.addr", "localhost:6379")
	cfg.SetDefault("log.level", "warn")

	if err := cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	level, err := log.ParseLevel(cfg.GetString("log.level"))
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	gateway := trello.NewClient(cfg.GetString("api.base_url"), cfg.GetDuration("api.timeout"), logger)

	backend := cfg.GetString("session.backend")
	var sessions ports.SessionStore
	switch backend {
	case backendFile:
		sessions, err = tomlstore.NewStore(cfg)
		if err != nil {
			return nil, fmt.Errorf("wire session store: %w", err)
		}
	case backendRedis:
		sessions = redisstore.NewStore(goredis.NewClient(&goredis.Options{
			Addr:     cfg.GetString("redis.addr"),
			Password: cfg.GetString("redis.password"),
			DB:       cfg.GetInt("redis.db"),
		}))
	default:
		return nil, fmt.Errorf("unknown session backend %q (expected file or redis)", backend)
	}

	secrets, err := chainstore.NewPassFirstWithFileFallback(filepath.Join(homeDir, ".trellobot", "secrets"))
	if err != nil {
		return nil, fmt.Errorf("wire secret store chain: %w", err)
	}

	opts := application.ResolverOptions{
		BoardSearchFallback: cfg.GetBool("resolver.board_search_fallback"),
		ListCardsLimit:      cfg.GetInt("resolver.list_cards_limit"),
		SearchLimit:         cfg.GetInt("resolver.search_limit"),
	}

	return &app{
		cfg:           cfg,
		log:           logger,
		service:       application.NewService(gateway, sessions, opts, logger),
		gateway:       gateway,
		secrets:       secrets,
		backend:       backend,
		scopeRenderer: scopeadapter.Render,
	}, nil
}

// credentials loads the API key and token, secret store first, config
// fallback. Both must be present.
func (a *app) credentials(ctx context.Context) (domain.Credentials, error) {
	key, err := a.secrets.Get(ctx, secretKeyAPIKey)
	if err != nil || key == "" {
		key = a.cfg.GetString("api.key")
	}
	token, err := a.secrets.Get(ctx, secretKeyToken)
	if err != nil || token == "" {
		token = a.cfg.GetString("api.token")
	}

	creds := domain.Credentials{APIKey: key, Token: token}
	if creds.Empty() {
		return domain.Credentials{}, errors.New("Trello credentials are not configured. Run 'trellobot auth set --key <key> --token <token>' or set api.key and api.token in ~/.trellobot/config.toml")
	}
	return creds, nil
}
