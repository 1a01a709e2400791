package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-sweet-shop/internal/adapter"
	"github.com/MKhiriev/go-sweet-shop/internal/logger"
	"github.com/MKhiriev/go-sweet-shop/internal/mock"
	"github.com/MKhiriev/go-sweet-shop/internal/validators"
	"github.com/MKhiriev/go-sweet-shop/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*clientAuthService, *mock.MockShopAdapter, *mock.MockSessionService) {
	t.Helper()
	mockAdapter := mock.NewMockShopAdapter(ctrl)
	mockSession := mock.NewMockSessionService(ctrl)

	svc := NewClientAuthService(mockAdapter, mockSession, validators.NewFormValidator(), logger.Nop()).(*clientAuthService)
	return svc, mockAdapter, mockSession
}

func validRegisterRequest() models.RegisterRequest {
	return models.RegisterRequest{
		Username:        "bob",
		FullName:        "Bob Baker",
		Email:           "bob@example.com",
		Password:        "cupcake",
		ConfirmPassword: "cupcake",
	}
}

func TestClientAuthService_Register_LogsInAfterwards(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSession := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	userID := int64(12)
	req := validRegisterRequest()
	gomock.InOrder(
		mockAdapter.EXPECT().Register(ctx, req).Return(models.RegisterResponse{Message: "User registered successfully", UserID: &userID}, nil),
		mockSession.EXPECT().Login(ctx, "bob", "cupcake").Return(models.LoginResult{Success: true}),
	)

	result, err := svc.Register(ctx, req)

	require.NoError(t, err)
	assert.True(t, result.Success)
}

func TestClientAuthService_Register_LoginAfterwardsFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockSession := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Register(ctx, gomock.Any()).Return(models.RegisterResponse{Message: "ok"}, nil)
	mockSession.EXPECT().Login(ctx, "bob", "cupcake").Return(models.LoginResult{Error: "Incorrect username or password"})

	result, err := svc.Register(ctx, validRegisterRequest())

	require.NoError(t, err)
	assert.Equal(t, models.LoginResult{Error: MsgRegisteredNoLogin}, result)
}

func TestClientAuthService_Register_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.RegisterRequest)
		wantMsg string
	}{
		{name: "no username", mutate: func(r *models.RegisterRequest) { r.Username = "" }, wantMsg: "Username is required"},
		{name: "no full name", mutate: func(r *models.RegisterRequest) { r.FullName = " " }, wantMsg: "Full name is required"},
		{name: "bad email", mutate: func(r *models.RegisterRequest) { r.Email = "bob" }, wantMsg: "Email must be a valid email address"},
		{name: "short password", mutate: func(r *models.RegisterRequest) { r.Password, r.ConfirmPassword = "abc", "abc" }, wantMsg: "Password must be at least 6 characters"},
		{name: "mismatch", mutate: func(r *models.RegisterRequest) { r.ConfirmPassword = "cupcakes" }, wantMsg: "Passwords do not match"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, _ := newTestAuthSvc(t, ctrl)

			req := validRegisterRequest()
			tt.mutate(&req)

			_, err := svc.Register(context.Background(), req)

			require.ErrorIs(t, err, validators.ErrValidation)
			assert.Equal(t, tt.wantMsg, ErrorReason(err, MsgRegistrationFailed))
		})
	}
}

func TestClientAuthService_Register_ServerRejects(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Register(ctx, gomock.Any()).Return(models.RegisterResponse{}, adapter.NewAPIError(400, "Username already registered", ""))

	_, err := svc.Register(ctx, validRegisterRequest())

	require.ErrorIs(t, err, ErrRejected)
	assert.Equal(t, "Username already registered", ErrorReason(err, MsgRegistrationFailed))
}

func TestClientAuthService_Register_NoReasonFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Register(ctx, gomock.Any()).Return(models.RegisterResponse{}, adapter.NewAPIError(500, "", ""))

	_, err := svc.Register(ctx, validRegisterRequest())

	require.Error(t, err)
	assert.Equal(t, MsgRegistrationFailed, ErrorReason(err, MsgRegistrationFailed))
}
