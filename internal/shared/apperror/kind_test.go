package apperror_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
)

func TestKinds_AllHandled(t *testing.T) {
	want := map[apperror.Kind]int{
		apperror.KindValidationError:  http.StatusBadRequest,
		apperror.KindUnauthorized:     http.StatusUnauthorized,
		apperror.KindForbidden:        http.StatusForbidden,
		apperror.KindNotFound:         http.StatusNotFound,
		apperror.KindConflict:         http.StatusConflict,
		apperror.KindPlanLimitReached: http.StatusPaymentRequired,
		apperror.KindDatabaseError:    http.StatusInternalServerError,
		apperror.KindInternalError:    http.StatusInternalServerError,
	}

	kinds := apperror.Kinds()
	assert.Len(t, kinds, len(want))

	for _, k := range kinds {
		assert.True(t, k.Valid(), k)
		assert.Equal(t, want[k], apperror.HTTPStatus(k), k)
	}
}

func TestKind_StatusClass(t *testing.T) {
	for _, k := range apperror.Kinds() {
		status := apperror.HTTPStatus(k)
		switch k {
		case apperror.KindDatabaseError, apperror.KindInternalError:
			assert.GreaterOrEqual(t, status, 500, k)
		default:
			assert.True(t, status >= 400 && status < 500, "%s -> %d", k, status)
		}
	}
}

func TestKind_Unknown(t *testing.T) {
	unknown := apperror.Kind("SOMETHING_ELSE")

	assert.False(t, unknown.Valid())
	assert.Equal(t, http.StatusInternalServerError, apperror.HTTPStatus(unknown))
}

func TestKind_UnmarshalJSON(t *testing.T) {
	var k apperror.Kind
	assert.NoError(t, json.Unmarshal([]byte(`"PLAN_LIMIT_REACHED"`), &k))
	assert.Equal(t, apperror.KindPlanLimitReached, k)

	assert.Error(t, json.Unmarshal([]byte(`"not_found"`), &k))
}
