package enums

import "fmt"

// SkillCategory is the catalog grouping a skill listing belongs to.
type SkillCategory string

const (
	SkillCategoryTechnology SkillCategory = "Technology"
	SkillCategoryMusic      SkillCategory = "Music"
	SkillCategoryCooking    SkillCategory = "Cooking"
	SkillCategoryFitness    SkillCategory = "Fitness"
	SkillCategoryArt        SkillCategory = "Art"
	SkillCategoryLanguage   SkillCategory = "Language"
	SkillCategoryBusiness   SkillCategory = "Business"
	SkillCategoryCrafts     SkillCategory = "Crafts"
	SkillCategorySports     SkillCategory = "Sports"
	SkillCategoryEducation  SkillCategory = "Education"
)

var validSkillCategories = []SkillCategory{
	SkillCategoryTechnology,
	SkillCategoryMusic,
	SkillCategoryCooking,
	SkillCategoryFitness,
	SkillCategoryArt,
	SkillCategoryLanguage,
	SkillCategoryBusiness,
	SkillCategoryCrafts,
	SkillCategorySports,
	SkillCategoryEducation,
}

// SkillCategories returns the canonical categories in display order.
func SkillCategories() []SkillCategory {
	out := make([]SkillCategory, len(validSkillCategories))
	copy(out, validSkillCategories)
	return out
}

// String implements fmt.Stringer.
func (c SkillCategory) String() string {
	return string(c)
}

// IsValid reports whether the value is a known SkillCategory.
func (c SkillCategory) IsValid() bool {
	for _, candidate := range validSkillCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseSkillCategory converts raw input into a SkillCategory.
func ParseSkillCategory(value string) (SkillCategory, error) {
	for _, candidate := range validSkillCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid skill category %q", value)
}
