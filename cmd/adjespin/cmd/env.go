package cmd

import (
	"fmt"

	"github.com/f3rmion/adjespin/internal/config"
	"github.com/f3rmion/adjespin/internal/dictionary"
	"github.com/f3rmion/adjespin/internal/logging"
	"github.com/f3rmion/adjespin/internal/machine"
	"github.com/f3rmion/adjespin/internal/picker"
	"github.com/f3rmion/adjespin/internal/store"
	"github.com/f3rmion/adjespin/internal/word"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// env holds what every command needs: configuration, the log, the state
// store and the dictionary client.
type env struct {
	cfg    *config.Config
	log    *zap.Logger
	store  *store.Store
	client *dictionary.Client
}

func newEnv() (*env, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, err
	}
	if err := config.EnsureConfigDir(cfg.Dir); err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}

	log, err := logging.New(cfg.LogPath(), cfg.Log.Level, viper.GetBool("verbose"))
	if err != nil {
		return nil, err
	}

	st, err := store.Open(cfg.StatePath(), log)
	if err != nil {
		log.Sync()
		return nil, err
	}

	client := dictionary.NewClient(log,
		dictionary.WithBaseURL(cfg.Lookup.BaseURL),
		dictionary.WithTimeout(cfg.Lookup.Timeout),
	)

	log.Debug("environment ready",
		zap.String("config_dir", cfg.Dir),
		zap.String("words_file", cfg.WordsFile),
		zap.String("base_url", cfg.Lookup.BaseURL),
	)
	return &env{cfg: cfg, log: log, store: st, client: client}, nil
}

// words loads the configured word list, or the built-in one.
func (e *env) words() ([]string, error) {
	return word.Load(e.cfg.WordsFile)
}

func (e *env) enricher() *dictionary.Enricher {
	return dictionary.NewEnricher(e.client, e.cfg.Lookup.Concurrency, e.log)
}

func (e *env) machine(source []string) *machine.Machine {
	// Validate already rejected unknown policies.
	policy, _ := picker.ParsePolicy(e.cfg.Picker.Policy)
	return machine.New(source, e.enricher(), e.store, machine.Options{
		Policy:      policy,
		MaxAttempts: e.cfg.Picker.MaxAttempts,
		Decoys:      e.cfg.Reel.Decoys,
		Duration:    e.cfg.Reel.Duration,
	}, e.log)
}

func (e *env) Close() {
	if err := e.store.Close(); err != nil {
		e.log.Warn("closing store", zap.Error(err))
	}
	e.log.Sync()
}
