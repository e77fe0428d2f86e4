package skills

import (
	"slices"
	"strings"

	"github.com/skillswap/skillswap-backend/pkg/enums"
)

// Criteria drives the skill grid. Empty or "all" selectors disable a filter;
// an empty SortBy keeps storage order.
type Criteria struct {
	Search   string
	Category string
	Type     string
	SortBy   enums.SkillSort
}

// Filter narrows records by search text, then category, then type, and
// finally applies a stable sort. The input slice is never modified.
func Filter(records []Skill, c Criteria) []Skill {
	out := make([]Skill, 0, len(records))
	needle := strings.ToLower(c.Search)
	for _, s := range records {
		if needle != "" && !matchesSearch(s, needle) {
			continue
		}
		if isSelective(c.Category) && string(s.Category) != c.Category {
			continue
		}
		if isSelective(c.Type) && string(s.Type) != c.Type {
			continue
		}
		out = append(out, s)
	}
	Sort(out, c.SortBy)
	return out
}

// Sort orders records in place; ties keep their relative order.
func Sort(records []Skill, by enums.SkillSort) {
	switch by {
	case enums.SkillSortNewest:
		slices.SortStableFunc(records, func(a, b Skill) int { return b.CreatedAt.Compare(a.CreatedAt) })
	case enums.SkillSortOldest:
		slices.SortStableFunc(records, func(a, b Skill) int { return a.CreatedAt.Compare(b.CreatedAt) })
	case enums.SkillSortTitle:
		slices.SortStableFunc(records, func(a, b Skill) int { return strings.Compare(a.Title, b.Title) })
	case enums.SkillSortCategory:
		slices.SortStableFunc(records, func(a, b Skill) int { return strings.Compare(string(a.Category), string(b.Category)) })
	}
}

// ByUser keeps the listings owned by userID, in storage order.
func ByUser(records []Skill, userID int) []Skill {
	out := make([]Skill, 0)
	for _, s := range records {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out
}

// SplitByType separates offered from requested listings.
func SplitByType(records []Skill) UserSkills {
	split := UserSkills{Offered: []Skill{}, Requested: []Skill{}}
	for _, s := range records {
		switch s.Type {
		case enums.SkillTypeOffer:
			split.Offered = append(split.Offered, s)
		case enums.SkillTypeRequest:
			split.Requested = append(split.Requested, s)
		}
	}
	return split
}

func matchesSearch(s Skill, needle string) bool {
	return strings.Contains(strings.ToLower(s.Title), needle) ||
		strings.Contains(strings.ToLower(s.Description), needle) ||
		strings.Contains(strings.ToLower(string(s.Category)), needle)
}

func isSelective(selector string) bool {
	return selector != "" && selector != enums.FilterAll
}
