package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/auth"
	autherrors "github.com/WhitworthLegacy/carnetmariage-sub001/internal/auth/errors"
	authMock "github.com/WhitworthLegacy/carnetmariage-sub001/internal/auth/mock"
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/shared/apperror"
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/shared/token"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type failingIssuer struct{}

func (failingIssuer) Issue(userID, tenantID, role string) (string, time.Time, error) {
	return "", time.Time{}, errors.New("hmac unavailable")
}

func newMember(t *testing.T, password string) *auth.Member {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &auth.Member{
		ID:           uuid.New(),
		TenantID:     uuid.New(),
		Name:         "Ana Martin",
		Email:        "ana@example.com",
		PasswordHash: string(hash),
		Role:         "owner",
		IsActive:     true,
	}
}

func TestService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := authMock.NewMockRepository(ctrl)
	tokens := token.NewManager("test-secret", time.Minute)
	service := auth.NewService(mockRepo, tokens)
	ctx := context.Background()

	member := newMember(t, "correct horse")

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().GetByEmail(ctx, member.Email).Return(member, nil)

		resp, err := service.Login(ctx, auth.LoginRequest{Email: member.Email, Password: "correct horse"})

		require.NoError(t, err)
		assert.Equal(t, member.ID.String(), resp.Member.ID)
		assert.Equal(t, "owner", resp.Member.Role)

		claims, err := tokens.Parse(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, member.TenantID.String(), claims.TenantID)
		assert.Equal(t, "owner", claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockRepo.EXPECT().GetByEmail(ctx, member.Email).Return(member, nil)

		_, err := service.Login(ctx, auth.LoginRequest{Email: member.Email, Password: "battery staple"})
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		mockRepo.EXPECT().GetByEmail(ctx, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

		_, err := service.Login(ctx, auth.LoginRequest{Email: "nobody@example.com", Password: "x"})
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("inactive member", func(t *testing.T) {
		inactive := newMember(t, "pw")
		inactive.IsActive = false
		mockRepo.EXPECT().GetByEmail(ctx, inactive.Email).Return(inactive, nil)

		_, err := service.Login(ctx, auth.LoginRequest{Email: inactive.Email, Password: "pw"})
		assert.ErrorIs(t, err, autherrors.ErrMemberInactive)
	})

	t.Run("database down", func(t *testing.T) {
		mockRepo.EXPECT().GetByEmail(ctx, member.Email).Return(nil, errors.New("dial tcp: connection refused"))

		_, err := service.Login(ctx, auth.LoginRequest{Email: member.Email, Password: "correct horse"})

		var appErr *apperror.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperror.KindDatabaseError, appErr.Kind())
	})

	t.Run("signing fails", func(t *testing.T) {
		svc := auth.NewService(mockRepo, failingIssuer{})
		mockRepo.EXPECT().GetByEmail(ctx, member.Email).Return(member, nil)

		_, err := svc.Login(ctx, auth.LoginRequest{Email: member.Email, Password: "correct horse"})
		assert.ErrorIs(t, err, autherrors.ErrTokenGenerationFailed)
	})
}

func TestService_GetMe(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := authMock.NewMockRepository(ctrl)
	service := auth.NewService(mockRepo, token.NewManager("test-secret", time.Minute))
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		member := newMember(t, "pw")
		mockRepo.EXPECT().GetByID(ctx, member.ID).Return(member, nil)

		resp, err := service.GetMe(ctx, member.ID.String())

		require.NoError(t, err)
		assert.Equal(t, member.Email, resp.Email)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := service.GetMe(ctx, "42")
		assert.ErrorIs(t, err, autherrors.ErrInvalidMemberID)
	})

	t.Run("deleted member", func(t *testing.T) {
		id := uuid.New()
		mockRepo.EXPECT().GetByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := service.GetMe(ctx, id.String())
		assert.ErrorIs(t, err, autherrors.ErrMemberNotFound)
	})
}
