package enums

import "fmt"

// SkillType distinguishes listings that offer a skill from ones asking for it.
type SkillType string

const (
	SkillTypeOffer   SkillType = "offer"
	SkillTypeRequest SkillType = "request"
)

var validSkillTypes = []SkillType{
	SkillTypeOffer,
	SkillTypeRequest,
}

func (t SkillType) String() string {
	return string(t)
}

// IsValid reports whether the value is a known SkillType.
func (t SkillType) IsValid() bool {
	for _, candidate := range validSkillTypes {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseSkillType converts raw input into a SkillType.
func ParseSkillType(value string) (SkillType, error) {
	for _, candidate := range validSkillTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid skill type %q", value)
}
