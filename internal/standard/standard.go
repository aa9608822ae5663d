// Package standard implements the four proof standards: discrete policies
// deciding whether weighted pro/con evidence suffices for acceptance.
package standard

import (
	"github.com/ewan-klein/carneades/internal/model"
)

// Standard is one of the four recognized proof standards, ordered weakest
// to strongest.
type Standard string

const (
	Scintilla            Standard = "scintilla"
	Preponderance        Standard = "preponderance"
	ClearAndConvincing   Standard = "clear_and_convincing"
	BeyondReasonableDoubt Standard = "beyond_reasonable_doubt"
)

// Parse validates a proof-standard name.
func Parse(name string) (Standard, error) {
	switch Standard(name) {
	case Scintilla, Preponderance, ClearAndConvincing, BeyondReasonableDoubt:
		return Standard(name), nil
	}
	return "", &model.UnknownStandardError{Name: name}
}

// Thresholds parameterizes the two stricter standards.
type Thresholds struct {
	// Alpha is the weight the strongest applicable pro argument must
	// strictly exceed for clear_and_convincing.
	Alpha float64
	// Beta is the margin by which the strongest pro must exceed the
	// strongest con for clear_and_convincing.
	Beta float64
	// Gamma is the ceiling the strongest con must stay under for
	// beyond_reasonable_doubt.
	Gamma float64
}

// DefaultThresholds mirrors model.DefaultConfig().Standards.
func DefaultThresholds() Thresholds {
	return Thresholds{Alpha: 0.5, Beta: 0.5, Gamma: 0.3}
}

// Satisfied decides whether the applicable pro/con weight sets meet the
// standard. Inputs must already be filtered to applicable arguments; an
// argument whose premises are not acceptable contributes nothing.
//
// An empty side has maximum weight 0. Preponderance requires a strict
// inequality, so a tie between the strongest pro and the strongest con
// never satisfies it.
func Satisfied(std Standard, pro, con []float64, th Thresholds) (bool, error) {
	switch std {
	case Scintilla:
		return len(pro) > 0, nil
	case Preponderance:
		return maxWeight(pro) > maxWeight(con), nil
	case ClearAndConvincing:
		mwp, mwc := maxWeight(pro), maxWeight(con)
		return mwp > mwc && mwp > th.Alpha && mwp-mwc >= th.Beta, nil
	case BeyondReasonableDoubt:
		ok, err := Satisfied(ClearAndConvincing, pro, con, th)
		if err != nil {
			return false, err
		}
		return ok && maxWeight(con) < th.Gamma, nil
	}
	return false, &model.UnknownStandardError{Name: string(std)}
}

func maxWeight(weights []float64) float64 {
	max := 0.0
	for _, w := range weights {
		if w > max {
			max = w
		}
	}
	return max
}
