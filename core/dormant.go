package core

import (
	"time"

	"github.com/gitwrap/gitwrap/internal/contract"
	"github.com/gitwrap/gitwrap/schema"
)

// millisPerDay is the floor-division unit for days-since-update.
const millisPerDay = 24 * 60 * 60 * 1000

// findForgottenRepo selects the first repository, in source-provided order,
// whose creation and last update both precede the six-calendar-month cutoff.
// Because the source lists repositories by recency, this yields the most
// recently updated repo that is still dormant, not the most abandoned one;
// that property is kept on purpose.
//
// All derived fields are computed here, once, and the result is immutable.
// No qualifying repository yields nil, not an error.
func findForgottenRepo(repos []schema.Repository, now time.Time) *schema.ForgottenRepo {
	cutoff := contract.MonthsAgo(now, contract.DormancyMonths)
	for _, repo := range repos {
		if !repo.CreatedAt.Before(cutoff) || !repo.UpdatedAt.Before(cutoff) {
			continue
		}
		return &schema.ForgottenRepo{
			Name:               repo.Name,
			CreatedAt:          repo.CreatedAt.Format(contract.DisplayDateFormat),
			LastUpdated:        repo.UpdatedAt.Format(contract.DisplayDateFormat),
			DaysSinceUpdate:    int((now.UnixMilli() - repo.UpdatedAt.UnixMilli()) / millisPerDay),
			CreatedAtTimestamp: repo.CreatedAt.UnixMilli(),
			UpdatedAtTimestamp: repo.UpdatedAt.UnixMilli(),
		}
	}
	return nil
}
