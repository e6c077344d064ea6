package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	apiadapter "github.com/bnema/snapfeed-cli/internal/adapters/api"
	"github.com/bnema/snapfeed-cli/internal/adapters/reauth/terminal"
	tomlrepo "github.com/bnema/snapfeed-cli/internal/adapters/repo/toml"
	chainstore "github.com/bnema/snapfeed-cli/internal/adapters/secrets/chain"
	"github.com/bnema/snapfeed-cli/internal/application"
	"github.com/bnema/snapfeed-cli/internal/device"
	"github.com/bnema/snapfeed-cli/internal/logger"
	"github.com/bnema/snapfeed-cli/internal/ports"
)

type app struct {
	log *logger.Logger

	sessions      *application.SessionService
	profiles      *application.ProfileService
	relationships *application.RelationshipService
	lock          *application.AppLockService

	secretStore ports.SecretStore
	reauth      *terminal.Provider

	reconcileInterval time.Duration
	pickerSuppression time.Duration
	uploadReenable    time.Duration
}

func wireApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	log := logger.New(parseLogLevel(cfg.GetString("log.level")))

	repo, err := tomlrepo.NewRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire profile repository: %w", err)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	secretStore, err := chainstore.NewPassFirstWithFileFallback(filepath.Join(homeDir, ".snapfeed", "secrets"))
	if err != nil {
		return nil, fmt.Errorf("wire secret store chain: %w", err)
	}

	deviceID, err := device.ID(filepath.Join(homeDir, ".snapfeed", "device-id"))
	if err != nil {
		return nil, fmt.Errorf("resolve device id: %w", err)
	}

	baseURL := cfg.GetString("api.base_url")
	requestTimeout := cfg.GetDuration("api.timeout")

	// The auth endpoints go through a plain client: the refresh exchange
	// itself must never recurse into refresh-and-retry.
	plainClient, err := apiadapter.NewClient(baseURL,
		apiadapter.WithRequestTimeout(requestTimeout),
		apiadapter.WithDeviceID(deviceID),
	)
	if err != nil {
		return nil, fmt.Errorf("wire api client: %w", err)
	}

	sessions := application.NewSessionService(apiadapter.NewAuthAPI(plainClient), secretStore, repo, log)

	authedClient, err := apiadapter.NewClient(baseURL,
		apiadapter.WithRequestTimeout(requestTimeout),
		apiadapter.WithDeviceID(deviceID),
		apiadapter.WithHTTPClient(&http.Client{
			Transport: &apiadapter.AuthTransport{Creds: sessions},
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("wire authenticated api client: %w", err)
	}

	socialAPI := apiadapter.NewSocialAPI(authedClient)
	profiles := application.NewProfileService(socialAPI, repo, log)
	relationships := application.NewRelationshipService(socialAPI, log)

	reauth := terminal.NewProvider(secretStore)
	lock := application.NewAppLockService(ports.SystemClock{}, reauth, func() bool {
		return profiles.BiometricEnabled(context.Background())
	}, log)

	return &app{
		log:               log,
		sessions:          sessions,
		profiles:          profiles,
		relationships:     relationships,
		lock:              lock,
		secretStore:       secretStore,
		reauth:            reauth,
		reconcileInterval: cfg.GetDuration("reconcile.interval"),
		pickerSuppression: cfg.GetDuration("lock.picker_suppression"),
		uploadReenable:    cfg.GetDuration("lock.upload_reenable_delay"),
	}, nil
}

func loadConfig() (*viper.Viper, error) {
	cfg := viper.New()

	cfg.SetDefault("api.base_url", "http://localhost:8000/api")
	cfg.SetDefault("api.timeout", 15*time.Second)
	cfg.SetDefault("reconcile.interval", 30*time.Second)
	cfg.SetDefault("lock.picker_suppression", 45*time.Second)
	cfg.SetDefault("lock.upload_reenable_delay", 10*time.Second)
	cfg.SetDefault("log.level", "warn")

	cfg.SetEnvPrefix("SNAPFEED")
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	if homeDir, err := os.UserHomeDir(); err == nil {
		cfg.AddConfigPath(filepath.Join(homeDir, ".snapfeed"))
		cfg.SetConfigName("config")
		cfg.SetConfigType("toml")
		if err := cfg.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	return cfg, nil
}

func parseLogLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
