package service_test

import (
	"context"
	"testing"

	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository/memory"
	"alcyxob/fitness-tracker/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBMIService_ProfileLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := service.NewBMIService(memory.NewBMIRepository())

	_, err := svc.GetProfile(ctx)
	require.ErrorIs(t, err, service.ErrProfileNotFound)

	weight, found, err := svc.BodyWeightKilograms(ctx)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Zero(t, weight)

	profile, err := svc.UpdateProfile(ctx, domain.BMI{
		Weight:     80,
		Height:     200,
		WeightUnit: domain.WeightUnitKilograms,
		HeightUnit: domain.HeightUnitCentimeters,
	})
	require.NoError(t, err)
	assert.InDelta(t, 20.0, profile.Value, 1e-9)
	assert.False(t, profile.UpdatedAt.IsZero())

	got, err := svc.GetProfile(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, got.Value, 1e-9)

	weight, found, err = svc.BodyWeightKilograms(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 80.0, weight)
}

func TestBMIService_ImperialUnits(t *testing.T) {
	ctx := context.Background()
	svc := service.NewBMIService(memory.NewBMIRepository())

	profile, err := svc.UpdateProfile(ctx, domain.BMI{
		Weight:     176.37,
		Height:     70,
		WeightUnit: domain.WeightUnitPounds,
		HeightUnit: domain.HeightUnitInches,
	})
	require.NoError(t, err)
	// 80kg / 1.778m^2
	assert.InDelta(t, 25.3, profile.Value, 0.05)

	weight, found, err := svc.BodyWeightKilograms(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.InDelta(t, 80.0, weight, 0.01)
}

func TestBMIService_InvalidProfile(t *testing.T) {
	ctx := context.Background()
	svc := service.NewBMIService(memory.NewBMIRepository())

	_, err := svc.UpdateProfile(ctx, domain.BMI{Weight: -1, Height: 180})
	require.ErrorIs(t, err, service.ErrProfileInvalid)
	assert.ErrorIs(t, err, domain.ErrNegativeBodyMetric)

	_, err = svc.UpdateProfile(ctx, domain.BMI{Weight: 70, Height: 180, WeightUnit: "stone"})
	require.ErrorIs(t, err, service.ErrProfileInvalid)
	assert.ErrorIs(t, err, domain.ErrUnknownUnit)

	// nothing was stored
	_, err = svc.GetProfile(ctx)
	assert.ErrorIs(t, err, service.ErrProfileNotFound)
}
