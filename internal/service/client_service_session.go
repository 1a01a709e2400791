package service

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/MKhiriev/go-sweet-shop/internal/adapter"
	"github.com/MKhiriev/go-sweet-shop/internal/logger"
	"github.com/MKhiriev/go-sweet-shop/internal/store"
	"github.com/MKhiriev/go-sweet-shop/internal/utils"
	"github.com/MKhiriev/go-sweet-shop/internal/validators"
	"github.com/MKhiriev/go-sweet-shop/models"
)

// Persisted slot names.
const (
	SlotToken = "sweetshop_token"
	SlotUser  = "sweetshop_user"
)

type clientSessionService struct {
	slots     store.SessionSlotRepository
	adapter   adapter.ShopAdapter
	validator validators.Validator
	logger    *logger.Logger

	// mu also serialises slot writes, so the persisted pair always matches
	// the last state set in memory.
	mu        sync.RWMutex
	session   models.Session
	onExpired func()

	expired chan struct{}
}

// NewClientSessionService returns a session in StatusRestoring and registers
// it as shop's 401 handler.
func NewClientSessionService(
	slots store.SessionSlotRepository,
	shop adapter.ShopAdapter,
	validator validators.Validator,
	logger *logger.Logger,
) SessionService {
	s := &clientSessionService{
		slots:     slots,
		adapter:   shop,
		validator: validator,
		logger:    logger,
		session:   models.Session{Status: models.StatusRestoring},
		expired:   make(chan struct{}, 1),
	}
	shop.OnUnauthorized(s.handleUnauthorized)
	return s
}

func (s *clientSessionService) Restore(ctx context.Context) models.Session {
	values, err := s.slots.LoadSlots(ctx, SlotToken, SlotUser)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "clientSessionService.Restore").Msg("failed to read session slots, starting signed out")
		values = nil
	}

	token := values[SlotToken]
	user, ok := decodeIdentity(values[SlotUser])

	s.mu.Lock()
	defer s.mu.Unlock()

	if token == "" || !ok {
		s.clearLocked(ctx)
		return s.snapshotLocked()
	}

	s.setLocked(token, user)
	s.logger.Info().
		Str("func", "clientSessionService.Restore").
		Str("username", user.Username).
		Time("expires_at", s.session.ExpiresAt).
		Msg("session restored")
	return s.snapshotLocked()
}

func (s *clientSessionService) Login(ctx context.Context, username, password string) models.LoginResult {
	req := models.LoginRequest{Username: username, Password: password}
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.LoginResult{Error: ErrorReason(err, MsgLoginFailed)}
	}

	// the network call runs unlocked: a 401 re-enters through handleUnauthorized
	resp, err := s.adapter.Login(ctx, req)
	if err != nil {
		s.logger.Info().Err(err).Str("func", "clientSessionService.Login").Str("username", username).Msg("login rejected")
		return models.LoginResult{Error: ErrorReason(mapAdapterError(err), MsgLoginFailed)}
	}
	if resp.AccessToken == "" || resp.User == nil {
		s.logger.Warn().Err(ErrInvalidLoginResponse).Str("func", "clientSessionService.Login").Msg("login response misses token or user")
		return models.LoginResult{Error: MsgInvalidLoginResponse}
	}

	user := *resp.User
	rawUser, err := json.Marshal(user)
	if err != nil {
		return models.LoginResult{Error: MsgInvalidLoginResponse}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.setLocked(resp.AccessToken, user)
	if err = s.slots.SaveSlots(ctx, map[string]string{
		SlotToken: resp.AccessToken,
		SlotUser:  string(rawUser),
	}); err != nil {
		// the session still works for this process
		s.logger.Err(err).Str("func", "clientSessionService.Login").Msg("failed to persist session")
	}

	return models.LoginResult{Success: true}
}

func (s *clientSessionService) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked(ctx)
}

func (s *clientSessionService) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.IsAuthenticated()
}

func (s *clientSessionService) Snapshot() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *clientSessionService) Expired() <-chan struct{} {
	return s.expired
}

func (s *clientSessionService) OnExpired(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onExpired = fn
}

// handleUnauthorized is the adapter's 401 hook. Only a live session is torn
// down; a 401 while signed out (e.g. wrong password) changes nothing.
func (s *clientSessionService) handleUnauthorized() {
	s.mu.Lock()
	if !s.session.IsAuthenticated() {
		s.mu.Unlock()
		return
	}
	s.logger.Info().Str("func", "clientSessionService.handleUnauthorized").Msg("server rejected credential, signing out")
	s.clearLocked(context.Background())
	fn := s.onExpired
	s.mu.Unlock()

	select {
	case s.expired <- struct{}{}:
	default:
	}
	if fn != nil {
		fn()
	}
}

func (s *clientSessionService) setLocked(token string, user models.User) {
	session := models.Session{
		Identity:   &user,
		Credential: token,
		Status:     models.StatusAuthenticated,
	}
	if claims, err := utils.ReadTokenClaims(token); err == nil {
		session.ExpiresAt = claims.ExpiresAt
	}

	s.session = session
	s.adapter.SetToken(token)
}

func (s *clientSessionService) clearLocked(ctx context.Context) {
	s.session = models.Session{Status: models.StatusUnauthenticated}
	s.adapter.SetToken("")
	if err := s.slots.DeleteSlots(ctx, SlotToken, SlotUser); err != nil {
		s.logger.Err(err).Str("func", "clientSessionService.clearLocked").Msg("failed to clear session slots")
	}
}

func (s *clientSessionService) snapshotLocked() models.Session {
	snapshot := s.session
	if s.session.Identity != nil {
		identity := *s.session.Identity
		snapshot.Identity = &identity
	}
	return snapshot
}

// decodeIdentity rejects empty input and a JSON null.
func decodeIdentity(raw string) (models.User, bool) {
	if raw == "" {
		return models.User{}, false
	}

	var user *models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil || user == nil {
		return models.User{}, false
	}
	return *user, true
}
