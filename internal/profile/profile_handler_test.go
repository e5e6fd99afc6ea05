package profile_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/profile"
	profileerrors "github.com/WhitworthLegacy/carnetmariage-sub001/internal/profile/errors"
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/shared/apperror"
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	os.Exit(m.Run())
}

type fakeProfileService struct {
	profile.Service

	CreateFn    func(ctx context.Context, tenantID string, req profile.ProfileRequest) (*profile.ProfileResponse, error)
	ListFn      func(ctx context.Context, tenantID string, q profile.ListQuery) (*profile.ProfileListResponse, error)
	GetByIDFn   func(ctx context.Context, tenantID, id string) (*profile.ProfileResponse, error)
	DeleteFn    func(ctx context.Context, tenantID, id string) error
	PublishFn   func(ctx context.Context, tenantID, id string) (*profile.ProfileResponse, error)
	GetPublicFn func(ctx context.Context, slug string) (*profile.PublicProfileResponse, error)
}

func (f *fakeProfileService) Create(ctx context.Context, tenantID string, req profile.ProfileRequest) (*profile.ProfileResponse, error) {
	return f.CreateFn(ctx, tenantID, req)
}

func (f *fakeProfileService) List(ctx context.Context, tenantID string, q profile.ListQuery) (*profile.ProfileListResponse, error) {
	return f.ListFn(ctx, tenantID, q)
}

func (f *fakeProfileService) GetByID(ctx context.Context, tenantID, id string) (*profile.ProfileResponse, error) {
	return f.GetByIDFn(ctx, tenantID, id)
}

func (f *fakeProfileService) Delete(ctx context.Context, tenantID, id string) error {
	return f.DeleteFn(ctx, tenantID, id)
}

func (f *fakeProfileService) Publish(ctx context.Context, tenantID, id string) (*profile.ProfileResponse, error) {
	return f.PublishFn(ctx, tenantID, id)
}

func (f *fakeProfileService) GetPublic(ctx context.Context, slug string) (*profile.PublicProfileResponse, error) {
	return f.GetPublicFn(ctx, slug)
}

func newRouter(svc profile.Service) *gin.Engine {
	h := profile.NewHandler(svc)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("tenant_id", "tenant-1") })
	r.GET("/profiles", h.List)
	r.POST("/profiles", h.Create)
	r.GET("/profiles/:id", h.GetByID)
	r.DELETE("/profiles/:id", h.Delete)
	r.POST("/profiles/:id/publish", h.Publish)
	r.GET("/public/profiles/:slug", h.GetPublic)
	return r
}

func serve(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := &fakeProfileService{
			CreateFn: func(ctx context.Context, tenantID string, req profile.ProfileRequest) (*profile.ProfileResponse, error) {
				assert.Equal(t, "tenant-1", tenantID)
				return &profile.ProfileResponse{ID: "p-1", Slug: req.Slug, Language: "fr"}, nil
			},
		}

		w := serve(newRouter(svc), http.MethodPost, "/profiles",
			`{"slug":"ana-and-ben","partner_one":"Ana","partner_two":"Ben","wedding_date":"2027-06-12"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		env, err := response.Decode[profile.ProfileResponse](w.Body)
		require.NoError(t, err)
		assert.True(t, env.OK())
		assert.Equal(t, "p-1", env.Data().ID)
	})

	validationCases := map[string]struct {
		body    string
		message string
	}{
		"missing partner": {
			body:    `{"slug":"ana-and-ben","partner_two":"Ben"}`,
			message: "Partner One is required",
		},
		"bad slug": {
			body:    `{"slug":"Ana & Ben","partner_one":"Ana","partner_two":"Ben"}`,
			message: "Slug may only contain lowercase letters, digits and hyphens",
		},
		"bad date": {
			body:    `{"slug":"ana-and-ben","partner_one":"Ana","partner_two":"Ben","wedding_date":"12/06/2027"}`,
			message: "Wedding Date must be a date in YYYY-MM-DD format",
		},
		"unsupported language": {
			body:    `{"slug":"ana-and-ben","partner_one":"Ana","partner_two":"Ben","language":"de"}`,
			message: "Language must be one of: fr, en, nl",
		},
		"guest estimate too large": {
			body:    `{"slug":"ana-and-ben","partner_one":"Ana","partner_two":"Ben","guest_estimate":9000}`,
			message: "Guest Estimate must be at most 5000",
		},
		"malformed json": {
			body:    `{"slug":`,
			message: "Request body must be valid JSON",
		},
	}

	for name, tc := range validationCases {
		t.Run(name, func(t *testing.T) {
			w := serve(newRouter(&fakeProfileService{}), http.MethodPost, "/profiles", tc.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			env, err := response.Decode[any](w.Body)
			require.NoError(t, err)
			assert.Equal(t, apperror.KindValidationError, env.Err().Kind())
			assert.Equal(t, tc.message, env.Err().Message())
		})
	}

	t.Run("plan limit", func(t *testing.T) {
		svc := &fakeProfileService{
			CreateFn: func(ctx context.Context, tenantID string, req profile.ProfileRequest) (*profile.ProfileResponse, error) {
				return nil, apperror.New(apperror.KindPlanLimitReached, "Your plan allows at most 1 profiles, upgrade to add more")
			},
		}

		w := serve(newRouter(svc), http.MethodPost, "/profiles", `{"slug":"ana-and-ben","partner_one":"Ana","partner_two":"Ben"}`)

		assert.Equal(t, http.StatusPaymentRequired, w.Code)
		assert.Contains(t, w.Body.String(), `"code":"PLAN_LIMIT_REACHED"`)
	})
}

func TestHandler_List(t *testing.T) {
	svc := &fakeProfileService{
		ListFn: func(ctx context.Context, tenantID string, q profile.ListQuery) (*profile.ProfileListResponse, error) {
			assert.Equal(t, profile.ListQuery{Q: "lyon", Page: 2, PageSize: 5}, q)
			page := response.Paginate([]profile.ProfileResponse{{ID: "p-1"}}, 1, 5)
			return &page, nil
		},
	}

	w := serve(newRouter(svc), http.MethodGet, "/profiles?q=lyon&page=2&page_size=5", "")

	assert.Equal(t, http.StatusOK, w.Code)
	env, err := response.Decode[profile.ProfileListResponse](w.Body)
	require.NoError(t, err)
	assert.Len(t, env.Data().Items, 1)
	assert.Equal(t, int64(1), env.Data().Meta.Total)

	t.Run("page size too large", func(t *testing.T) {
		w := serve(newRouter(svc), http.MethodGet, "/profiles?page_size=500", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_GetByID_NotFound(t *testing.T) {
	svc := &fakeProfileService{
		GetByIDFn: func(ctx context.Context, tenantID, id string) (*profile.ProfileResponse, error) {
			return nil, profileerrors.ErrProfileNotFound
		},
	}

	w := serve(newRouter(svc), http.MethodGet, "/profiles/abc", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"ok":false,"error":{"code":"NOT_FOUND","message":"Profile not found"}}`, w.Body.String())
}

func TestHandler_Delete(t *testing.T) {
	svc := &fakeProfileService{
		DeleteFn: func(ctx context.Context, tenantID, id string) error { return nil },
	}

	w := serve(newRouter(svc), http.MethodDelete, "/profiles/p-1", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"data":{"id":"p-1"}}`, w.Body.String())
}

func TestHandler_Publish(t *testing.T) {
	svc := &fakeProfileService{
		PublishFn: func(ctx context.Context, tenantID, id string) (*profile.ProfileResponse, error) {
			return &profile.ProfileResponse{ID: id, Published: true}, nil
		},
	}

	w := serve(newRouter(svc), http.MethodPost, "/profiles/p-1/publish", "")

	env, err := response.Decode[profile.ProfileResponse](w.Body)
	require.NoError(t, err)
	assert.True(t, env.Data().Published)
}

func TestHandler_GetPublic(t *testing.T) {
	svc := &fakeProfileService{
		GetPublicFn: func(ctx context.Context, slug string) (*profile.PublicProfileResponse, error) {
			assert.Equal(t, "ana-and-ben", slug)
			return &profile.PublicProfileResponse{Slug: slug, PartnerOne: "Ana"}, nil
		},
	}

	w := serve(newRouter(svc), http.MethodGet, "/public/profiles/Ana-And-Ben", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "public, max-age=60", w.Header().Get("Cache-Control"))
}
