package plan_test

import (
	"errors"
	"testing"

	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/plan"
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
)

func TestLimitsFor(t *testing.T) {
	assert.Equal(t, plan.Limits{Profiles: 1, GuestsPerProfile: 50}, plan.LimitsFor(plan.TierFree))
	assert.Equal(t, plan.Unlimited, plan.LimitsFor(plan.TierPro).Profiles)
	assert.Equal(t, plan.LimitsFor(plan.TierFree), plan.LimitsFor(plan.Tier("gold")))

	assert.True(t, plan.TierPremium.Valid())
	assert.False(t, plan.Tier("gold").Valid())
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		limit   int
		current int
		adding  int
		reached bool
	}{
		{"under limit", 3, 1, 1, false},
		{"exactly at limit", 3, 2, 1, false},
		{"over limit", 3, 3, 1, true},
		{"batch over limit", 50, 48, 4, true},
		{"unlimited", plan.Unlimited, 10000, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := plan.Check("profiles", tt.limit, tt.current, tt.adding)
			if !tt.reached {
				assert.NoError(t, err)
				return
			}

			var appErr *apperror.AppError
			assert.True(t, errors.As(err, &appErr))
			assert.Equal(t, apperror.KindPlanLimitReached, appErr.Kind())
			assert.Contains(t, appErr.Message(), "profiles")
		})
	}
}
