package report

import (
	"strings"

	"github.com/svsticky/alvreport/internal/config"
	"github.com/svsticky/alvreport/internal/models"
)

// FilterExternActivities returns the ids of activities whose name starts
// with the extern prefix, compared lower-cased and with surrounding
// whitespace trimmed. The filter runs client-side on the fetched activity
// list rather than as a SQL predicate; activity names in the database carry
// inconsistent casing and stray whitespace.
func FilterExternActivities(activities []models.Activity) []int32 {
	ids := make([]int32, 0, len(activities))
	for _, act := range activities {
		name := strings.TrimSpace(strings.ToLower(act.Name))
		if strings.HasPrefix(name, config.ExternPrefix) {
			ids = append(ids, act.ID)
		}
	}
	return ids
}
