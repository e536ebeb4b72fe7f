package service

import (
	"context"
	"log/slog"

	"racecontrol/internal/domain"
)

type UserStore interface {
	LoadUsers(ctx context.Context) ([]domain.User, error)
}

type authService struct {
	store  UserStore
	logger *slog.Logger
}

func NewAuthService(store UserStore, logger *slog.Logger) AuthService {
	return &authService{store: store, logger: logger}
}

// Login matches email and password against the users document. A miss is a
// nil response, not an error.
func (s *authService) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	users, err := s.store.LoadUsers(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Email == req.Email && u.Password == req.Password {
			s.logger.Info("login ok", slog.String("email", u.Email), slog.String("role", u.Role))
			return &domain.LoginResponse{
				User: domain.PublicUser{
					ID:    u.ID,
					Name:  u.Name,
					Email: u.Email,
					Role:  u.Role,
				},
				Token: u.Token,
			}, nil
		}
	}

	s.logger.Warn("login rejected", slog.String("email", req.Email))
	return nil, nil
}
