package core

import (
	"context"
	"sort"
	"time"

	"github.com/gitwrap/gitwrap/internal/contract"
	"github.com/gitwrap/gitwrap/schema"
)

// collectPushActivity pages through the account's event feed and reduces
// push-type events inside [start, end] to one activity record per day, plus
// the retained commit messages for persona classification.
//
// The feed is newest-first, so the scan stops early once a page's oldest
// event predates the window. Any page fetch error fails soft: the page is
// not retried, and whatever was collected so far stands.
func collectPushActivity(ctx context.Context, client contract.GitHubClient, login string, start, end time.Time) ([]schema.ActivityRecord, []string) {
	perDay := make(map[time.Time]int)
	var messages []string

	for page := 1; page <= contract.MaxEventPages; page++ {
		events, err := client.ListEvents(ctx, login, page, contract.EventPageSize)
		if err != nil {
			contract.LogWarn("Event page fetch failed", err)
			break
		}
		if len(events) == 0 {
			break
		}

		for _, ev := range events {
			if ev.Type != schema.PushEventType {
				continue
			}
			if ev.CreatedAt.Before(start) || ev.CreatedAt.After(end) {
				continue
			}
			perDay[contract.DayOf(ev.CreatedAt)] += ev.CommitCount
			messages = append(messages, ev.Messages...)
		}

		// Oldest event on the page already predates the window; nothing
		// further back is worth fetching.
		if events[len(events)-1].CreatedAt.Before(start) {
			break
		}
		if len(events) < contract.EventPageSize {
			break
		}
	}

	records := make([]schema.ActivityRecord, 0, len(perDay))
	for day, count := range perDay {
		records = append(records, schema.ActivityRecord{Date: day, Count: count})
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})
	return records, messages
}
