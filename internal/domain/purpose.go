package domain

import (
	"fmt"
	"strings"
)

// PurposeType вид выезда, для которого запрашивается расписание
type PurposeType string

const (
	PurposeEstimate     PurposeType = "ESTIMATE"     // выезд на замер / оценку
	PurposeConstruction PurposeType = "CONSTRUCTION" // выезд на работы
)

// PurposeTypes все поддерживаемые виды выезда
var PurposeTypes = []PurposeType{PurposeEstimate, PurposeConstruction}

// IsValid возвращает true для известных видов выезда
func (p PurposeType) IsValid() bool {
	return p == PurposeEstimate || p == PurposeConstruction
}

func (p PurposeType) String() string {
	return string(p)
}

// ParsePurposeType разбирает вид выезда без учета регистра
func ParsePurposeType(s string) (PurposeType, error) {
	p := PurposeType(strings.ToUpper(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPurposeType, s)
	}
	return p, nil
}
