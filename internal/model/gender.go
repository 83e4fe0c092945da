package model

import (
	"fmt"
	"strings"
)

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// ParseGender accepts the enum name in any letter case.
func ParseGender(s string) (Gender, error) {
	g := Gender(strings.ToUpper(strings.TrimSpace(s)))
	if !g.Valid() {
		return "", fmt.Errorf("unknown gender %q", s)
	}
	return g, nil
}
