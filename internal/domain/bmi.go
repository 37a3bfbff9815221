package domain

import (
	"errors"
	"time"
)

var (
	ErrNegativeBodyMetric = errors.New("weight and height must not be negative")
	ErrUnknownUnit        = errors.New("unknown unit")
)

type WeightUnit string

const (
	WeightUnitKilograms WeightUnit = "kg"
	WeightUnitPounds    WeightUnit = "lb"
)

type HeightUnit string

const (
	HeightUnitCentimeters HeightUnit = "cm"
	HeightUnitMeters      HeightUnit = "m"
	HeightUnitInches      HeightUnit = "in"
)

const (
	kilogramsPerPound = 0.45359237
	metersPerInch     = 0.0254
)

// BMI is the current body-metrics profile. Only one value is kept, no history.
type BMI struct {
	Weight     float64    `bson:"weight" json:"weight"`
	Height     float64    `bson:"height" json:"height"`
	WeightUnit WeightUnit `bson:"weightUnit" json:"weightUnit"`
	HeightUnit HeightUnit `bson:"heightUnit" json:"heightUnit"`
	UpdatedAt  time.Time  `bson:"updatedAt" json:"updatedAt"`
}

func (b BMI) Validate() error {
	if b.Weight < 0 || b.Height < 0 {
		return ErrNegativeBodyMetric
	}
	if _, err := b.WeightKilograms(); err != nil {
		return err
	}
	if _, err := b.HeightMeters(); err != nil {
		return err
	}
	return nil
}

// WeightKilograms returns the weight converted to kilograms.
// An empty unit is treated as kilograms.
func (b BMI) WeightKilograms() (float64, error) {
	switch b.WeightUnit {
	case WeightUnitKilograms, "":
		return b.Weight, nil
	case WeightUnitPounds:
		return b.Weight * kilogramsPerPound, nil
	default:
		return 0, ErrUnknownUnit
	}
}

// HeightMeters returns the height converted to meters.
// An empty unit is treated as centimeters.
func (b BMI) HeightMeters() (float64, error) {
	switch b.HeightUnit {
	case HeightUnitCentimeters, "":
		return b.Height / 100, nil
	case HeightUnitMeters:
		return b.Height, nil
	case HeightUnitInches:
		return b.Height * metersPerInch, nil
	default:
		return 0, ErrUnknownUnit
	}
}

// Value computes the body mass index in kg/m². A zero height yields 0.
func (b BMI) Value() (float64, error) {
	if err := b.Validate(); err != nil {
		return 0, err
	}
	kg, _ := b.WeightKilograms()
	m, _ := b.HeightMeters()
	if m == 0 {
		return 0, nil
	}
	return kg / (m * m), nil
}
