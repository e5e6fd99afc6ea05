package profile

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/events"
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/messaging/kafka"
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/plan"
	profileerrors "github.com/WhitworthLegacy/carnetmariage-sub001/internal/profile/errors"
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/shared/contextutil"
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/shared/response"
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/tenant"
	tenanterrors "github.com/WhitworthLegacy/carnetmariage-sub001/internal/tenant/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	PublicCacheKeyPrefix = "profiles:public:"
	PublicCacheTTL       = 30 * time.Minute
)

func PublicCacheKey(slug string) string {
	return PublicCacheKeyPrefix + slug
}

//go:generate mockgen -destination=mock/profile_service_mock.go -package=mock . Service
type Service interface {
	Create(ctx context.Context, tenantID string, req ProfileRequest) (*ProfileResponse, error)
	List(ctx context.Context, tenantID string, q ListQuery) (*ProfileListResponse, error)
	GetByID(ctx context.Context, tenantID, id string) (*ProfileResponse, error)
	Update(ctx context.Context, tenantID, id string, req ProfileRequest) (*ProfileResponse, error)
	Delete(ctx context.Context, tenantID, id string) error
	Publish(ctx context.Context, tenantID, id string) (*ProfileResponse, error)
	Unpublish(ctx context.Context, tenantID, id string) (*ProfileResponse, error)
	GetPublic(ctx context.Context, slug string) (*PublicProfileResponse, error)
	WarmPublic(ctx context.Context, slug string) error
}

type service struct {
	db      *gorm.DB
	repo    Repository
	tenants tenant.Repository
	outbox  kafka.OutboxRepository
	rdb     *redis.Client
	sf      *singleflight.Group
	logger  *zap.Logger
	now     func() time.Time
}

// NewService wires the profile use cases. outbox and rdb may be nil: without
// an outbox no lifecycle events are recorded, without redis public reads go
// straight to the database.
func NewService(
	db *gorm.DB,
	repo Repository,
	tenants tenant.Repository,
	outbox kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("profile.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("profile.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		tenants: tenants,
		outbox:  outbox,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		logger:  l,
		now:     time.Now,
	}
}

func (s *service) Create(ctx context.Context, tenantID string, req ProfileRequest) (*ProfileResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create profile requested",
		zap.String("request_id", rid),
		zap.String("tenant_id", tenantID),
		zap.String("slug", req.Slug),
	)

	tid, err := uuid.Parse(tenantID)
	if err != nil {
		return nil, tenanterrors.ErrInvalidTenantID
	}
	weddingDate, err := parseWeddingDate(req.WeddingDate)
	if err != nil {
		return nil, err
	}

	p := &Profile{
		ID:       uuid.New(),
		TenantID: tid,
	}
	applyRequest(p, req, weddingDate)

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		limits, err := s.limitsFor(ctx, tx, tenantID)
		if err != nil {
			return err
		}
		if err := plan.Check("guests per profile", limits.GuestsPerProfile, 0, req.GuestEstimate); err != nil {
			return err
		}

		qtx := s.repo.WithTx(tx)
		count, err := qtx.CountByTenant(ctx, tenantID)
		if err != nil {
			return mapRepositoryError(err)
		}
		if err := plan.Check("profiles", limits.Profiles, int(count), 1); err != nil {
			s.logger.Info("create profile refused by plan",
				zap.String("tenant_id", tenantID),
				zap.Int64("profiles", count),
			)
			return err
		}

		if err := qtx.Create(ctx, p); err != nil {
			return mapRepositoryError(err)
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("create profile failed", zap.String("request_id", rid), zap.Error(err))
		return nil, err
	}

	s.logger.Info("create profile success",
		zap.String("request_id", rid),
		zap.String("profile_id", p.ID.String()),
	)

	resp := mapToResponse(p)
	return &resp, nil
}

func (s *service) List(ctx context.Context, tenantID string, q ListQuery) (*ProfileListResponse, error) {
	q = q.normalized()

	profiles, total, err := s.repo.FindAllByTenant(ctx, tenantID, q)
	if err != nil {
		s.logger.Error("list profiles failed", zap.String("tenant_id", tenantID), zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	items := make([]ProfileResponse, len(profiles))
	for i := range profiles {
		items[i] = mapToResponse(&profiles[i])
	}

	return &ProfileListResponse{
		Items: items,
		Meta:  response.NewPaginationMeta(total, q.Page, q.PageSize),
	}, nil
}

func (s *service) GetByID(ctx context.Context, tenantID, id string) (*ProfileResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, profileerrors.ErrInvalidProfileID
	}

	p, err := s.repo.FindByIDAndTenant(ctx, tenantID, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := mapToResponse(p)
	return &resp, nil
}

func (s *service) Update(ctx context.Context, tenantID, id string, req ProfileRequest) (*ProfileResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, profileerrors.ErrInvalidProfileID
	}
	weddingDate, err := parseWeddingDate(req.WeddingDate)
	if err != nil {
		return nil, err
	}

	var (
		p       *Profile
		oldSlug string
	)
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		limits, err := s.limitsFor(ctx, tx, tenantID)
		if err != nil {
			return err
		}
		if err := plan.Check("guests per profile", limits.GuestsPerProfile, 0, req.GuestEstimate); err != nil {
			return err
		}

		qtx := s.repo.WithTx(tx)
		p, err = qtx.FindByIDAndTenant(ctx, tenantID, id)
		if err != nil {
			return mapRepositoryError(err)
		}

		oldSlug = p.Slug
		applyRequest(p, req, weddingDate)

		return mapRepositoryError(qtx.Update(ctx, p))
	})
	if err != nil {
		s.logger.Warn("update profile failed", zap.String("profile_id", id), zap.Error(err))
		return nil, err
	}

	s.invalidatePublic(ctx, oldSlug, p.Slug)
	s.logger.Info("update profile success", zap.String("profile_id", id))

	resp := mapToResponse(p)
	return &resp, nil
}

func (s *service) Delete(ctx context.Context, tenantID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return profileerrors.ErrInvalidProfileID
	}

	var slug string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		p, err := qtx.FindByIDAndTenant(ctx, tenantID, id)
		if err != nil {
			return mapRepositoryError(err)
		}
		slug = p.Slug

		return mapRepositoryError(qtx.Delete(ctx, tenantID, id))
	})
	if err != nil {
		s.logger.Warn("delete profile failed", zap.String("profile_id", id), zap.Error(err))
		return err
	}

	s.invalidatePublic(ctx, slug)
	s.logger.Info("delete profile success", zap.String("profile_id", id))
	return nil
}

func (s *service) Publish(ctx context.Context, tenantID, id string) (*ProfileResponse, error) {
	return s.setPublished(ctx, tenantID, id, true)
}

func (s *service) Unpublish(ctx context.Context, tenantID, id string) (*ProfileResponse, error) {
	return s.setPublished(ctx, tenantID, id, false)
}

// setPublished is a no-op when the profile is already in the wanted state, so
// repeated calls record a single event.
func (s *service) setPublished(ctx context.Context, tenantID, id string, published bool) (*ProfileResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, profileerrors.ErrInvalidProfileID
	}

	rid := contextutil.GetRequestID(ctx)
	var (
		p       *Profile
		changed bool
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		var err error
		p, err = qtx.FindByIDAndTenant(ctx, tenantID, id)
		if err != nil {
			return mapRepositoryError(err)
		}
		if p.Published == published {
			return nil
		}

		p.Published = published
		if published {
			now := s.now().UTC()
			p.PublishedAt = &now
		} else {
			p.PublishedAt = nil
		}
		if err := qtx.Update(ctx, p); err != nil {
			return mapRepositoryError(err)
		}
		changed = true

		return s.recordLifecycle(ctx, tx, p, rid)
	})
	if err != nil {
		s.logger.Warn("set profile publication failed",
			zap.String("profile_id", id),
			zap.Bool("published", published),
			zap.Error(err),
		)
		return nil, err
	}

	if changed {
		s.invalidatePublic(ctx, p.Slug)
		s.logger.Info("profile publication changed",
			zap.String("request_id", rid),
			zap.String("profile_id", id),
			zap.Bool("published", published),
		)
	}

	resp := mapToResponse(p)
	return &resp, nil
}

func (s *service) recordLifecycle(ctx context.Context, tx *gorm.DB, p *Profile, rid string) error {
	if s.outbox == nil {
		return nil
	}

	eventType := events.ProfileUnpublished
	if p.Published {
		eventType = events.ProfilePublished
	}

	payload, err := json.Marshal(events.ProfileLifecycleEvent{
		EventType:  eventType,
		RequestID:  rid,
		ProfileID:  p.ID.String(),
		TenantID:   p.TenantID.String(),
		Slug:       p.Slug,
		OccurredAt: s.now().UTC(),
	})
	if err != nil {
		return err
	}

	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "profile",
		AggregateID:   p.ID.String(),
		EventType:     eventType,
		Topic:         events.ProfileLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("profile outbox persist failed",
			zap.String("profile_id", p.ID.String()),
			zap.Error(err),
		)
		return mapRepositoryError(err)
	}
	return nil
}

func (s *service) GetPublic(ctx context.Context, slug string) (*PublicProfileResponse, error) {
	cacheKey := PublicCacheKey(slug)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp PublicProfileResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return &resp, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.logger.Warn("public profile cache read failed", zap.String("key", cacheKey), zap.Error(err))
		}
	}

	// collapse concurrent misses on a freshly shared link
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		return s.loadPublic(ctx, slug)
	})
	if err != nil {
		return nil, err
	}

	return v.(*PublicProfileResponse), nil
}

func (s *service) WarmPublic(ctx context.Context, slug string) error {
	_, err := s.loadPublic(ctx, slug)
	return err
}

func (s *service) loadPublic(ctx context.Context, slug string) (*PublicProfileResponse, error) {
	p, err := s.repo.FindPublishedBySlug(ctx, slug)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := mapToPublicResponse(p)

	if s.rdb != nil {
		cacheKey := PublicCacheKey(slug)
		if data, err := json.Marshal(resp); err == nil {
			if err := s.rdb.Set(ctx, cacheKey, data, PublicCacheTTL).Err(); err != nil {
				s.logger.Warn("public profile cache write failed", zap.String("key", cacheKey), zap.Error(err))
			}
		}
	}

	return &resp, nil
}

func (s *service) invalidatePublic(ctx context.Context, slugs ...string) {
	if s.rdb == nil {
		return
	}

	keys := make([]string, 0, len(slugs))
	seen := make(map[string]bool, len(slugs))
	for _, slug := range slugs {
		if slug == "" || seen[slug] {
			continue
		}
		seen[slug] = true
		keys = append(keys, PublicCacheKey(slug))
	}
	if len(keys) == 0 {
		return
	}

	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		s.logger.Error("failed to invalidate public profile cache",
			zap.Strings("keys", keys),
			zap.Error(err),
		)
	}
}

func (s *service) limitsFor(ctx context.Context, tx *gorm.DB, tenantID string) (plan.Limits, error) {
	tier, err := s.tenants.WithTx(tx).GetPlan(ctx, tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return plan.Limits{}, tenanterrors.ErrTenantInactive
		}
		return plan.Limits{}, mapRepositoryError(err)
	}
	return plan.LimitsFor(tier), nil
}

func parseWeddingDate(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	d, err := time.Parse(DateLayout, v)
	if err != nil {
		return nil, profileerrors.ErrInvalidWeddingDate
	}
	return &d, nil
}

func applyRequest(p *Profile, req ProfileRequest, weddingDate *time.Time) {
	p.Slug = req.Slug
	p.PartnerOne = req.PartnerOne
	p.PartnerTwo = req.PartnerTwo
	p.WeddingDate = weddingDate
	p.Venue = req.Venue
	p.City = req.City
	p.ContactEmail = req.ContactEmail
	p.GuestEstimate = req.GuestEstimate
	p.Language = req.Language
	if p.Language == "" {
		p.Language = DefaultLanguage
	}
	p.Story = req.Story
}

func formatDate(d *time.Time) string {
	if d == nil {
		return ""
	}
	return d.Format(DateLayout)
}

func mapToResponse(p *Profile) ProfileResponse {
	return ProfileResponse{
		ID:            p.ID.String(),
		Slug:          p.Slug,
		PartnerOne:    p.PartnerOne,
		PartnerTwo:    p.PartnerTwo,
		WeddingDate:   formatDate(p.WeddingDate),
		Venue:         p.Venue,
		City:          p.City,
		ContactEmail:  p.ContactEmail,
		GuestEstimate: p.GuestEstimate,
		Language:      p.Language,
		Story:         p.Story,
		Published:     p.Published,
		PublishedAt:   p.PublishedAt,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func mapToPublicResponse(p *Profile) PublicProfileResponse {
	return PublicProfileResponse{
		Slug:        p.Slug,
		PartnerOne:  p.PartnerOne,
		PartnerTwo:  p.PartnerTwo,
		WeddingDate: formatDate(p.WeddingDate),
		Venue:       p.Venue,
		City:        p.City,
		Language:    p.Language,
		Story:       p.Story,
	}
}
