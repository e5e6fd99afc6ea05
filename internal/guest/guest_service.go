package guest

import (
	"context"
	"errors"

	guesterrors "github.com/WhitworthLegacy/carnetmariage-sub001/internal/guest/errors"
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/plan"
	profileerrors "github.com/WhitworthLegacy/carnetmariage-sub001/internal/profile/errors"
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/shared/contextutil"
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/tenant"
	tenanterrors "github.com/WhitworthLegacy/carnetmariage-sub001/internal/tenant/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const headcountResource = "guests per profile"

//go:generate mockgen -destination=mock/guest_service_mock.go -package=mock . Service
type Service interface {
	List(ctx context.Context, tenantID, profileID string, q ListQuery) (*GuestListResponse, error)
	Create(ctx context.Context, tenantID, profileID string, req GuestRequest) (*GuestResponse, error)
	Update(ctx context.Context, tenantID, profileID, id string, req GuestRequest) (*GuestResponse, error)
	Delete(ctx context.Context, tenantID, profileID, id string) error
}

type service struct {
	db      *gorm.DB
	repo    Repository
	tenants tenant.Repository
	logger  *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, tenants tenant.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("guest.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("guest.service")
	}
	return &service{db: db, repo: repo, tenants: tenants, logger: l}
}

func (s *service) List(ctx context.Context, tenantID, profileID string, q ListQuery) (*GuestListResponse, error) {
	if _, err := uuid.Parse(profileID); err != nil {
		return nil, profileerrors.ErrInvalidProfileID
	}

	exists, err := s.repo.ProfileExists(ctx, tenantID, profileID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	if !exists {
		return nil, profileerrors.ErrProfileNotFound
	}

	guests, err := s.repo.FindAllByProfile(ctx, tenantID, profileID, q)
	if err != nil {
		s.logger.Error("list guests failed", zap.String("profile_id", profileID), zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	resp := &GuestListResponse{Items: make([]GuestResponse, len(guests))}
	for i := range guests {
		resp.Items[i] = mapToResponse(&guests[i])
		resp.Summary.add(&guests[i])
	}
	return resp, nil
}

func (s *service) Create(ctx context.Context, tenantID, profileID string, req GuestRequest) (*GuestResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	tid, err := uuid.Parse(tenantID)
	if err != nil {
		return nil, tenanterrors.ErrInvalidTenantID
	}
	pid, err := uuid.Parse(profileID)
	if err != nil {
		return nil, profileerrors.ErrInvalidProfileID
	}

	g := &Guest{
		ID:        uuid.New(),
		TenantID:  tid,
		ProfileID: pid,
		RSVP:      RSVPPending,
		PartySize: 1,
	}
	applyRequest(g, req)

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		if err := qtx.LockProfile(ctx, tenantID, profileID); err != nil {
			return mapProfileError(err)
		}

		if err := s.checkHeadcount(ctx, tx, qtx, tenantID, profileID, g.PartySize); err != nil {
			return err
		}

		return mapRepositoryError(qtx.Create(ctx, g))
	})
	if err != nil {
		s.logger.Warn("create guest failed",
			zap.String("request_id", rid),
			zap.String("profile_id", profileID),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("create guest success",
		zap.String("request_id", rid),
		zap.String("guest_id", g.ID.String()),
	)

	resp := mapToResponse(g)
	return &resp, nil
}

func (s *service) Update(ctx context.Context, tenantID, profileID, id string, req GuestRequest) (*GuestResponse, error) {
	if _, err := uuid.Parse(profileID); err != nil {
		return nil, profileerrors.ErrInvalidProfileID
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, guesterrors.ErrInvalidGuestID
	}

	var g *Guest
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		if err := qtx.LockProfile(ctx, tenantID, profileID); err != nil {
			return mapProfileError(err)
		}

		var err error
		g, err = qtx.FindByID(ctx, tenantID, profileID, id)
		if err != nil {
			return mapRepositoryError(err)
		}

		oldSize := g.PartySize
		applyRequest(g, req)
		if growth := g.PartySize - oldSize; growth > 0 {
			if err := s.checkHeadcount(ctx, tx, qtx, tenantID, profileID, growth); err != nil {
				return err
			}
		}

		return mapRepositoryError(qtx.Update(ctx, g))
	})
	if err != nil {
		s.logger.Warn("update guest failed", zap.String("guest_id", id), zap.Error(err))
		return nil, err
	}

	resp := mapToResponse(g)
	return &resp, nil
}

func (s *service) Delete(ctx context.Context, tenantID, profileID, id string) error {
	if _, err := uuid.Parse(profileID); err != nil {
		return profileerrors.ErrInvalidProfileID
	}
	if _, err := uuid.Parse(id); err != nil {
		return guesterrors.ErrInvalidGuestID
	}

	if err := s.repo.Delete(ctx, tenantID, profileID, id); err != nil {
		s.logger.Warn("delete guest failed", zap.String("guest_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete guest success", zap.String("guest_id", id))
	return nil
}

// checkHeadcount must run after LockProfile in the same transaction.
func (s *service) checkHeadcount(ctx context.Context, tx *gorm.DB, qtx Repository, tenantID, profileID string, adding int) error {
	tier, err := s.tenants.WithTx(tx).GetPlan(ctx, tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tenanterrors.ErrTenantInactive
		}
		return mapRepositoryError(err)
	}

	current, err := qtx.Headcount(ctx, profileID)
	if err != nil {
		return mapRepositoryError(err)
	}

	limits := plan.LimitsFor(tier)
	if err := plan.Check(headcountResource, limits.GuestsPerProfile, current, adding); err != nil {
		s.logger.Info("guest headcount refused by plan",
			zap.String("profile_id", profileID),
			zap.Int("headcount", current),
			zap.Int("adding", adding),
		)
		return err
	}
	return nil
}

func applyRequest(g *Guest, req GuestRequest) {
	g.Name = req.Name
	g.Email = req.Email
	if req.RSVP != "" {
		g.RSVP = req.RSVP
	}
	if req.PartySize > 0 {
		g.PartySize = req.PartySize
	}
	g.TableLabel = req.Table
}

func (s *Summary) add(g *Guest) {
	s.Invited += g.PartySize
	switch g.RSVP {
	case RSVPAccepted:
		s.Accepted += g.PartySize
	case RSVPDeclined:
		s.Declined += g.PartySize
	default:
		s.Pending += g.PartySize
	}
}

func mapToResponse(g *Guest) GuestResponse {
	return GuestResponse{
		ID:        g.ID.String(),
		ProfileID: g.ProfileID.String(),
		Name:      g.Name,
		Email:     g.Email,
		RSVP:      g.RSVP,
		PartySize: g.PartySize,
		Table:     g.TableLabel,
	}
}
