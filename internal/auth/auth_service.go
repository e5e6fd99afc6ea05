package auth

import (
	"context"
	"time"

	autherrors "github.com/WhitworthLegacy/carnetmariage-sub001/internal/auth/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// TokenIssuer is satisfied by *token.Manager.
type TokenIssuer interface {
	Issue(userID, tenantID, role string) (string, time.Time, error)
}

//go:generate mockgen -destination=mock/auth_service_mock.go -package=mock . Service
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	GetMe(ctx context.Context, memberID string) (*MemberResponse, error)
}

type service struct {
	repo   Repository
	tokens TokenIssuer
	logger *zap.Logger
}

func NewService(repo Repository, tokens TokenIssuer, logger ...*zap.Logger) Service {
	l := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &service{repo: repo, tokens: tokens, logger: l.Named("auth.service")}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	m, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, mapLookupError(err, autherrors.ErrInvalidCredentials)
	}

	// compare before the active check so a disabled account does not reveal
	// itself to someone without the password
	if err := bcrypt.CompareHashAndPassword([]byte(m.PasswordHash), []byte(req.Password)); err != nil {
		return nil, autherrors.ErrInvalidCredentials
	}
	if !m.IsActive {
		return nil, autherrors.ErrMemberInactive
	}

	accessToken, expiresAt, err := s.tokens.Issue(m.ID.String(), m.TenantID.String(), m.Role)
	if err != nil {
		s.logger.Error("sign access token", zap.Error(err), zap.String("member_id", m.ID.String()))
		return nil, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("member logged in",
		zap.String("member_id", m.ID.String()),
		zap.String("tenant_id", m.TenantID.String()),
	)

	return &LoginResponse{
		Member:      mapToResponse(m),
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
	}, nil
}

func (s *service) GetMe(ctx context.Context, memberID string) (*MemberResponse, error) {
	id, err := uuid.Parse(memberID)
	if err != nil {
		return nil, autherrors.ErrInvalidMemberID
	}

	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapLookupError(err, autherrors.ErrMemberNotFound)
	}
	if !m.IsActive {
		return nil, autherrors.ErrMemberInactive
	}

	resp := mapToResponse(m)
	return &resp, nil
}

func mapToResponse(m *Member) MemberResponse {
	return MemberResponse{
		ID:       m.ID.String(),
		TenantID: m.TenantID.String(),
		Email:    m.Email,
		Name:     m.Name,
		Role:     m.Role,
	}
}
