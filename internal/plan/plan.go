package plan

import (
	"fmt"

	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/shared/apperror"
)

type Tier string

const (
	TierFree    Tier = "free"
	TierPremium Tier = "premium"
	TierPro     Tier = "pro"
)

// Unlimited disables a limit.
const Unlimited = -1

type Limits struct {
	Profiles         int `json:"profiles"`
	GuestsPerProfile int `json:"guests_per_profile"`
}

var limitsByTier = map[Tier]Limits{
	TierFree:    {Profiles: 1, GuestsPerProfile: 50},
	TierPremium: {Profiles: 3, GuestsPerProfile: 300},
	TierPro:     {Profiles: Unlimited, GuestsPerProfile: 2000},
}

func (t Tier) Valid() bool {
	_, ok := limitsByTier[t]
	return ok
}

// LimitsFor returns the limits of t; unknown tiers get the free limits.
func LimitsFor(t Tier) Limits {
	if l, ok := limitsByTier[t]; ok {
		return l
	}
	return limitsByTier[TierFree]
}

// Check refuses to grow current by adding when that would exceed limit.
func Check(resource string, limit, current, adding int) error {
	if limit == Unlimited {
		return nil
	}
	if current+adding > limit {
		return apperror.New(
			apperror.KindPlanLimitReached,
			fmt.Sprintf("Your plan allows at most %d %s, upgrade to add more", limit, resource),
		)
	}
	return nil
}
