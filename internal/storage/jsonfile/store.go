package jsonfile

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"racecontrol/internal/domain"
	"racecontrol/pkg/e"
)

// Store persists the full incident collection as one JSON document.
// Every operation reads or rewrites the whole file; the file is the only
// source of truth. Concurrent writers are last-writer-wins at document
// granularity.
type Store struct {
	incidentsPath string
	usersPath     string
	logger        *slog.Logger
}

func NewStore(incidentsPath, usersPath string, logger *slog.Logger) *Store {
	return &Store{
		incidentsPath: incidentsPath,
		usersPath:     usersPath,
		logger:        logger,
	}
}

// Load returns the current collection. A missing file is an empty
// collection, not an error.
func (s *Store) Load(ctx context.Context) ([]domain.Incident, error) {
	data, err := os.ReadFile(s.incidentsPath)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug("incidents file missing, treating as empty",
				slog.String("path", s.incidentsPath))
			return []domain.Incident{}, nil
		}
		return nil, e.Wrap("read incidents file", e.Wrap(err.Error(), e.ErrStore))
	}

	var incidents []domain.Incident
	if err := json.Unmarshal(data, &incidents); err != nil {
		return nil, e.Wrap("parse incidents file", e.Wrap(err.Error(), e.ErrStore))
	}
	return incidents, nil
}

// Save rewrites the whole document.
func (s *Store) Save(ctx context.Context, incidents []domain.Incident) error {
	data, err := json.MarshalIndent(incidents, "", "  ")
	if err != nil {
		return e.Wrap("marshal incidents", e.Wrap(err.Error(), e.ErrStore))
	}
	if err := os.WriteFile(s.incidentsPath, data, 0o644); err != nil {
		return e.Wrap("write incidents file", e.Wrap(err.Error(), e.ErrStore))
	}
	return nil
}

func (s *Store) LoadUsers(ctx context.Context) ([]domain.User, error) {
	data, err := os.ReadFile(s.usersPath)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.User{}, nil
		}
		return nil, e.Wrap("read users file", e.Wrap(err.Error(), e.ErrStore))
	}

	var users []domain.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, e.Wrap("parse users file", e.Wrap(err.Error(), e.ErrStore))
	}
	return users, nil
}
