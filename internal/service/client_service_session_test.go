// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-sweet-shop/internal/adapter"
	"github.com/MKhiriev/go-sweet-shop/internal/logger"
	"github.com/MKhiriev/go-sweet-shop/internal/mock"
	"github.com/MKhiriev/go-sweet-shop/internal/validators"
	"github.com/MKhiriev/go-sweet-shop/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestSessionSvc wires a session service to mocks and returns the 401
// hook it registered on the adapter.
func newTestSessionSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*clientSessionService,
	*mock.MockSessionSlotRepository,
	*mock.MockShopAdapter,
	func(),
) {
	t.Helper()
	mockSlots := mock.NewMockSessionSlotRepository(ctrl)
	mockAdapter := mock.NewMockShopAdapter(ctrl)

	var hook func()
	mockAdapter.EXPECT().OnUnauthorized(gomock.Any()).Do(func(fn func()) { hook = fn })

	svc := NewClientSessionService(mockSlots, mockAdapter, validators.NewFormValidator(), logger.Nop()).(*clientSessionService)
	require.NotNil(t, hook)

	return svc, mockSlots, mockAdapter, hook
}

func signedToken(t *testing.T, sub string, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": sub,
		"exp": exp.Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

var alice = models.User{ID: 7, Username: "alice", FullName: "Alice Liddell", Email: "alice@example.com"}

func aliceJSON(t *testing.T) string {
	t.Helper()
	raw, err := json.Marshal(alice)
	require.NoError(t, err)
	return string(raw)
}

// ── Restore ──────────────────────────────────────────────────────────────────

func TestClientSessionService_StartsRestoring(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, _ := newTestSessionSvc(t, ctrl)

	assert.Equal(t, models.StatusRestoring, svc.Snapshot().Status)
	assert.False(t, svc.IsAuthenticated())
}

func TestClientSessionService_Restore_FromSlots(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockSlots, mockAdapter, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, "alice", exp)

	mockSlots.EXPECT().LoadSlots(ctx, SlotToken, SlotUser).Return(map[string]string{
		SlotToken: token,
		SlotUser:  aliceJSON(t),
	}, nil)
	mockAdapter.EXPECT().SetToken(token)

	session := svc.Restore(ctx)

	assert.Equal(t, models.StatusAuthenticated, session.Status)
	require.NotNil(t, session.Identity)
	assert.Equal(t, alice, *session.Identity)
	assert.Equal(t, token, session.Credential)
	assert.True(t, exp.Equal(session.ExpiresAt))
	assert.True(t, svc.IsAuthenticated())
}

func TestClientSessionService_Restore_OpaqueTokenIsAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockSlots, mockAdapter, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockSlots.EXPECT().LoadSlots(ctx, SlotToken, SlotUser).Return(map[string]string{
		SlotToken: "not-a-jwt",
		SlotUser:  aliceJSON(t),
	}, nil)
	mockAdapter.EXPECT().SetToken("not-a-jwt")

	session := svc.Restore(ctx)

	assert.Equal(t, models.StatusAuthenticated, session.Status)
	assert.True(t, session.ExpiresAt.IsZero())
}

func TestClientSessionService_Restore_ClearsUnusableSlots(t *testing.T) {
	tests := []struct {
		name    string
		values  map[string]string
		loadErr error
	}{
		{name: "nothing stored", values: map[string]string{}},
		{name: "token only", values: map[string]string{SlotToken: "tok"}},
		{name: "user only", values: map[string]string{SlotUser: `{"id":1,"username":"a"}`}},
		{name: "user not json", values: map[string]string{SlotToken: "tok", SlotUser: "{broken"}},
		{name: "user is null", values: map[string]string{SlotToken: "tok", SlotUser: "null"}},
		{name: "read error", loadErr: errors.New("disk I/O error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, mockSlots, mockAdapter, _ := newTestSessionSvc(t, ctrl)
			ctx := context.Background()

			mockSlots.EXPECT().LoadSlots(ctx, SlotToken, SlotUser).Return(tt.values, tt.loadErr)
			mockAdapter.EXPECT().SetToken("")
			mockSlots.EXPECT().DeleteSlots(ctx, SlotToken, SlotUser).Return(nil)

			session := svc.Restore(ctx)

			assert.Equal(t, models.StatusUnauthenticated, session.Status)
			assert.Nil(t, session.Identity)
			assert.Empty(t, session.Credential)
		})
	}
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestClientSessionService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockSlots, mockAdapter, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	user := alice
	gomock.InOrder(
		mockAdapter.EXPECT().Login(ctx, models.LoginRequest{Username: "alice", Password: "secret1"}).
			Return(models.LoginResponse{AccessToken: "tok", TokenType: "bearer", User: &user}, nil),
		mockAdapter.EXPECT().SetToken("tok"),
		mockSlots.EXPECT().SaveSlots(ctx, map[string]string{
			SlotToken: "tok",
			SlotUser:  aliceJSON(t),
		}).Return(nil),
	)

	result := svc.Login(ctx, "alice", "secret1")

	assert.Equal(t, models.LoginResult{Success: true}, result)
	snapshot := svc.Snapshot()
	assert.Equal(t, models.StatusAuthenticated, snapshot.Status)
	assert.Equal(t, alice, *snapshot.Identity)
	assert.Equal(t, "tok", snapshot.Credential)
}

func TestClientSessionService_Login_PersistFailureKeepsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockSlots, mockAdapter, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	user := alice
	mockAdapter.EXPECT().Login(ctx, gomock.Any()).Return(models.LoginResponse{AccessToken: "tok", User: &user}, nil)
	mockAdapter.EXPECT().SetToken("tok")
	mockSlots.EXPECT().SaveSlots(ctx, gomock.Any()).Return(errors.New("database is locked"))

	result := svc.Login(ctx, "alice", "secret1")

	assert.True(t, result.Success)
	assert.True(t, svc.IsAuthenticated())
}

func TestClientSessionService_Login_Failures(t *testing.T) {
	tests := []struct {
		name     string
		resp     models.LoginResponse
		err      error
		wantText string
	}{
		{
			name:     "server detail",
			err:      adapter.NewAPIError(401, "Incorrect username or password", ""),
			wantText: "Incorrect username or password",
		},
		{
			name:     "server message",
			err:      adapter.NewAPIError(500, "", "token service down"),
			wantText: "token service down",
		},
		{
			name:     "no reason",
			err:      adapter.NewAPIError(502, "", ""),
			wantText: MsgLoginFailed,
		},
		{
			name:     "transport",
			err:      adapter.NewTransportError(errors.New("connection refused")),
			wantText: "connection refused",
		},
		{
			name:     "missing token",
			resp:     models.LoginResponse{User: &models.User{ID: 1}},
			wantText: MsgInvalidLoginResponse,
		},
		{
			name:     "missing user",
			resp:     models.LoginResponse{AccessToken: "tok"},
			wantText: MsgInvalidLoginResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, mockAdapter, _ := newTestSessionSvc(t, ctrl)
			ctx := context.Background()

			mockAdapter.EXPECT().Login(ctx, gomock.Any()).Return(tt.resp, tt.err)

			result := svc.Login(ctx, "alice", "wrong-password")

			assert.Equal(t, models.LoginResult{Error: tt.wantText}, result)
			assert.Equal(t, models.StatusRestoring, svc.Snapshot().Status, "state must stay untouched")
			assert.False(t, svc.IsAuthenticated())
		})
	}
}

func TestClientSessionService_Login_ValidatesBeforeCalling(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, _ := newTestSessionSvc(t, ctrl)

	result := svc.Login(context.Background(), "   ", "secret1")
	assert.Equal(t, models.LoginResult{Error: "Username is required"}, result)

	result = svc.Login(context.Background(), "alice", "")
	assert.Equal(t, models.LoginResult{Error: "Password is required"}, result)
}

// Login in one process, Restore in another from the same slots, without any
// server call in the second.
func TestClientSessionService_LoginThenRestoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	persisted := map[string]string{}

	ctrl1 := gomock.NewController(t)
	first, slots1, adapter1, _ := newTestSessionSvc(t, ctrl1)
	user := alice
	adapter1.EXPECT().Login(ctx, gomock.Any()).Return(models.LoginResponse{AccessToken: "tok", User: &user}, nil)
	adapter1.EXPECT().SetToken("tok")
	slots1.EXPECT().SaveSlots(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, values map[string]string) error {
		for k, v := range values {
			persisted[k] = v
		}
		return nil
	})
	require.True(t, first.Login(ctx, "alice", "secret1").Success)

	ctrl2 := gomock.NewController(t)
	second, slots2, adapter2, _ := newTestSessionSvc(t, ctrl2)
	slots2.EXPECT().LoadSlots(ctx, SlotToken, SlotUser).Return(persisted, nil)
	adapter2.EXPECT().SetToken("tok")

	restored := second.Restore(ctx)

	assert.Equal(t, models.StatusAuthenticated, restored.Status)
	assert.Equal(t, first.Snapshot().Identity, restored.Identity)
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestClientSessionService_Logout_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockSlots, mockAdapter, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	user := alice
	mockAdapter.EXPECT().Login(ctx, gomock.Any()).Return(models.LoginResponse{AccessToken: "tok", User: &user}, nil)
	mockAdapter.EXPECT().SetToken("tok")
	mockSlots.EXPECT().SaveSlots(ctx, gomock.Any()).Return(nil)
	require.True(t, svc.Login(ctx, "alice", "secret1").Success)

	mockAdapter.EXPECT().SetToken("").Times(2)
	mockSlots.EXPECT().DeleteSlots(ctx, SlotToken, SlotUser).Return(nil).Times(2)

	svc.Logout(ctx)
	once := svc.Snapshot()
	svc.Logout(ctx)
	twice := svc.Snapshot()

	assert.Equal(t, models.Session{Status: models.StatusUnauthenticated}, once)
	assert.Equal(t, once, twice)
}

func TestClientSessionService_Logout_DeleteErrorStillSignsOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockSlots, mockAdapter, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().SetToken("")
	mockSlots.EXPECT().DeleteSlots(ctx, SlotToken, SlotUser).Return(errors.New("readonly database"))

	svc.Logout(ctx)

	assert.Equal(t, models.StatusUnauthenticated, svc.Snapshot().Status)
}

// ── 401 side channel ─────────────────────────────────────────────────────────

func TestClientSessionService_UnauthorizedTearsDownSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockSlots, mockAdapter, hook := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	user := alice
	mockAdapter.EXPECT().Login(ctx, gomock.Any()).Return(models.LoginResponse{AccessToken: "tok", User: &user}, nil)
	mockAdapter.EXPECT().SetToken("tok")
	mockSlots.EXPECT().SaveSlots(ctx, gomock.Any()).Return(nil)
	require.True(t, svc.Login(ctx, "alice", "secret1").Success)

	called := 0
	svc.OnExpired(func() { called++ })

	mockAdapter.EXPECT().SetToken("")
	mockSlots.EXPECT().DeleteSlots(gomock.Any(), SlotToken, SlotUser).Return(nil)

	hook()

	assert.Equal(t, models.Session{Status: models.StatusUnauthenticated}, svc.Snapshot())
	assert.Equal(t, 1, called)
	select {
	case <-svc.Expired():
	default:
		t.Fatal("expected an expiry event")
	}
}

func TestClientSessionService_UnauthorizedWhileSignedOutIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, hook := newTestSessionSvc(t, ctrl)

	called := false
	svc.OnExpired(func() { called = true })

	hook()

	assert.False(t, called)
	select {
	case <-svc.Expired():
		t.Fatal("no expiry event expected")
	default:
	}
}

func TestDecodeIdentity(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		wantOK bool
	}{
		{name: "valid", raw: `{"id":1,"username":"a","is_admin":true}`, wantOK: true},
		{name: "empty object", raw: `{}`, wantOK: true},
		{name: "empty", raw: "", wantOK: false},
		{name: "null", raw: "null", wantOK: false},
		{name: "array", raw: "[]", wantOK: false},
		{name: "garbage", raw: "abc", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := decodeIdentity(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}
