package enums

import "fmt"

// SkillSort selects the ordering applied to the skill grid.
type SkillSort string

const (
	SkillSortNewest   SkillSort = "newest"
	SkillSortOldest   SkillSort = "oldest"
	SkillSortTitle    SkillSort = "title"
	SkillSortCategory SkillSort = "category"
)

var validSkillSorts = []SkillSort{
	SkillSortNewest,
	SkillSortOldest,
	SkillSortTitle,
	SkillSortCategory,
}

func (s SkillSort) IsValid() bool {
	for _, candidate := range validSkillSorts {
		if candidate == s {
			return true
		}
	}
	return false
}

func ParseSkillSort(value string) (SkillSort, error) {
	for _, candidate := range validSkillSorts {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sort %q", value)
}

// FilterAll is the selector value that disables a category, type or status filter.
const FilterAll = "all"
