package service

import (
	"context"

	"github.com/MKhiriev/go-sweet-shop/internal/adapter"
	"github.com/MKhiriev/go-sweet-shop/internal/logger"
	"github.com/MKhiriev/go-sweet-shop/internal/validators"
	"github.com/MKhiriev/go-sweet-shop/models"
)

type clientAuthService struct {
	adapter   adapter.ShopAdapter
	session   SessionService
	validator validators.Validator
	logger    *logger.Logger
}

func NewClientAuthService(
	shop adapter.ShopAdapter,
	session SessionService,
	validator validators.Validator,
	logger *logger.Logger,
) AuthService {
	return &clientAuthService{
		adapter:   shop,
		session:   session,
		validator: validator,
		logger:    logger,
	}
}

func (a *clientAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.LoginResult, error) {
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.LoginResult{}, err
	}

	resp, err := a.adapter.Register(ctx, req)
	if err != nil {
		a.logger.Info().Err(err).Str("func", "clientAuthService.Register").Str("username", req.Username).Msg("registration rejected")
		return models.LoginResult{}, mapAdapterError(err)
	}

	log := a.logger.Info().Str("func", "clientAuthService.Register").Str("username", req.Username)
	if resp.UserID != nil {
		log = log.Int64("user_id", *resp.UserID)
	}
	log.Msg("account created")

	result := a.session.Login(ctx, req.Username, req.Password)
	if !result.Success {
		a.logger.Warn().Str("func", "clientAuthService.Register").Str("reason", result.Error).Msg("login after registration failed")
		result.Error = MsgRegisteredNoLogin
	}
	return result, nil
}
