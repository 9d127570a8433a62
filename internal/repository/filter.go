package repository

import (
	"fmt"
	"strings"

	"github.com/limbo/journal/pkg/dateutil"
	"github.com/limbo/journal/pkg/entity"
)

// sqlCondition is a WHERE clause fragment with its positional parameters.
type sqlCondition struct {
	Clause string
	Params []any
}

// entryConditions translates filter into conditions over journal_entries
// aliased as e. Placeholders are numbered from 1 in the order returned.
func entryConditions(filter entity.EntryFilter) sqlCondition {
	var (
		clauses []string
		params  []any
	)
	next := func(v any) string {
		params = append(params, v)
		return fmt.Sprintf("$%d", len(params))
	}
	if filter.From != nil {
		clauses = append(clauses, "e.entry_date >= "+next(dateutil.StartOfDay(*filter.From)))
	}
	if filter.To != nil {
		clauses = append(clauses, "e.entry_date <= "+next(dateutil.StartOfDay(*filter.To)))
	}
	if filter.PrimaryMoodID != nil {
		clauses = append(clauses, "e.primary_mood_id = "+next(*filter.PrimaryMoodID))
	}
	if len(filter.MoodIDs) > 0 {
		clauses = append(clauses,
			"EXISTS (SELECT 1 FROM entry_moods em WHERE em.entry_id = e.id AND em.mood_id = ANY("+next(filter.MoodIDs)+"))")
	}
	if len(filter.TagIDs) > 0 {
		clauses = append(clauses,
			"EXISTS (SELECT 1 FROM entry_tags et WHERE et.entry_id = e.id AND et.tag_id = ANY("+next(filter.TagIDs)+"))")
	}
	if strings.TrimSpace(filter.Search) != "" {
		p := next(filter.Search)
		if filter.CaseSensitive {
			clauses = append(clauses, fmt.Sprintf("(strpos(e.title, %[1]s) > 0 OR strpos(e.content, %[1]s) > 0)", p))
		} else {
			clauses = append(clauses, fmt.Sprintf("(strpos(lower(e.title), lower(%[1]s)) > 0 OR strpos(lower(e.content), lower(%[1]s)) > 0)", p))
		}
	}
	if len(clauses) == 0 {
		return sqlCondition{}
	}
	return sqlCondition{
		Clause: " WHERE " + strings.Join(clauses, " AND "),
		Params: params,
	}
}
