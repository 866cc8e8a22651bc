package app

import (
	"fmt"

	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/store"
)

// Service is the entity mutation pipeline: it resolves referenced parents,
// runs the invariant checks, stamps timestamps from the Clock and persists
// through the store. Every write is one synchronous pass, fail-fast; the
// store's transaction boundary discards partial work.
type Service struct {
	Config *Config
	Store  store.JournalStore
	Clock  Clock
	Auth   *Auth
}

func NewService(configPath string) (*Service, error) {
	config, err := LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	store, err := NewStore(config.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to init store: %w", err)
	}

	auth, err := NewAuth(config)
	if err != nil {
		return nil, fmt.Errorf("failed to init auth: %w", err)
	}

	return &Service{
		Config: config,
		Store:  store,
		Clock:  NewClock(),
		Auth:   auth,
	}, nil
}

func (s *Service) Close() error {
	var errs []error

	if err := s.Store.Close(); err != nil {
		errs = append(errs, fmt.Errorf("store: %w", err))
	}
	if err := s.Auth.Close(); err != nil {
		errs = append(errs, fmt.Errorf("auth: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors while closing: %v", errs)
	}
	return nil
}
