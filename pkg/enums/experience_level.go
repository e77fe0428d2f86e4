package enums

import "fmt"

// ExperienceLevel is the proficiency tier advertised on a skill.
type ExperienceLevel string

const (
	ExperienceLevelBeginner     ExperienceLevel = "beginner"
	ExperienceLevelIntermediate ExperienceLevel = "intermediate"
	ExperienceLevelAdvanced     ExperienceLevel = "advanced"
	ExperienceLevelExpert       ExperienceLevel = "expert"
)

var validExperienceLevels = []ExperienceLevel{
	ExperienceLevelBeginner,
	ExperienceLevelIntermediate,
	ExperienceLevelAdvanced,
	ExperienceLevelExpert,
}

func (l ExperienceLevel) String() string {
	return string(l)
}

func (l ExperienceLevel) IsValid() bool {
	for _, candidate := range validExperienceLevels {
		if candidate == l {
			return true
		}
	}
	return false
}

func ParseExperienceLevel(value string) (ExperienceLevel, error) {
	for _, candidate := range validExperienceLevels {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid experience level %q", value)
}
