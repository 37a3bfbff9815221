package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"errors"
	"fmt"
)

var (
	ErrProfileNotFound = errors.New("body metrics profile not set")
	ErrProfileInvalid  = errors.New("body metrics profile is invalid")
)

// Profile is the stored BMI together with its computed value.
type Profile struct {
	domain.BMI
	Value float64 `json:"bmi"`
}

type BMIService interface {
	GetProfile(ctx context.Context) (*Profile, error)
	UpdateProfile(ctx context.Context, bmi domain.BMI) (*Profile, error)
	// BodyWeightKilograms returns the profile weight, found is false when no
	// profile exists.
	BodyWeightKilograms(ctx context.Context) (weight float64, found bool, err error)
}

type bmiService struct {
	bmiRepo repository.BMIRepository
}

func NewBMIService(bmiRepo repository.BMIRepository) BMIService {
	return &bmiService{bmiRepo: bmiRepo}
}

func (s *bmiService) GetProfile(ctx context.Context) (*Profile, error) {
	bmi, err := s.bmiRepo.GetBMI(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return newProfile(*bmi)
}

func (s *bmiService) UpdateProfile(ctx context.Context, bmi domain.BMI) (*Profile, error) {
	if err := bmi.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProfileInvalid, err)
	}

	saved, err := s.bmiRepo.SaveBMI(ctx, bmi)
	if err != nil {
		return nil, fmt.Errorf("save bmi: %w", err)
	}
	return newProfile(*saved)
}

func (s *bmiService) BodyWeightKilograms(ctx context.Context) (float64, bool, error) {
	bmi, err := s.bmiRepo.GetBMI(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}
	kg, err := bmi.WeightKilograms()
	if err != nil {
		return 0, false, err
	}
	return kg, true, nil
}

func newProfile(bmi domain.BMI) (*Profile, error) {
	value, err := bmi.Value()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProfileInvalid, err)
	}
	return &Profile{BMI: bmi, Value: value}, nil
}
