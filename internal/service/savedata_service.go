package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/metrics"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// --- Error Definitions ---
var (
	ErrSaveDataDuplicate     = errors.New("save data already exists for this exercise")
	ErrSaveDataNoRecordFound = errors.New("no save data found for this exercise")
	ErrSaveDataInvalid       = errors.New("save data requires an exercise name")
)

// SaveDataService keeps at most one progress record per exercise name.
type SaveDataService interface {
	// CreateSaveDataFor fails with ErrSaveDataDuplicate if name already has a record.
	CreateSaveDataFor(ctx context.Context, name string, sets []domain.Rep) (*domain.SaveDataRecord, error)
	// UpdateSaveDataFor fails with ErrSaveDataNoRecordFound if there is nothing to update.
	UpdateSaveDataFor(ctx context.Context, record domain.SaveDataRecord) (*domain.SaveDataRecord, error)
	// ReadSavedDataFor reports absence with found == false, not with an error.
	ReadSavedDataFor(ctx context.Context, name string) (_ *domain.SaveDataRecord, found bool, err error)
	ReadAllSavedData(ctx context.Context) ([]domain.SaveDataRecord, error)
	// RecordProgress stores sets as the record for name: created when missing,
	// updated otherwise. created reports which path was taken.
	RecordProgress(ctx context.Context, name string, sets []domain.Rep) (_ *domain.SaveDataRecord, created bool, err error)
	// AppendProgress adds sets to the end of the record's history.
	AppendProgress(ctx context.Context, name string, sets []domain.Rep) (_ *domain.SaveDataRecord, created bool, err error)
}

// saveDataService implements the SaveDataService interface.
type saveDataService struct {
	saveDataRepo repository.SaveDataRepository
	metrics      *metrics.Manager
	log          logrus.FieldLogger
}

// NewSaveDataService creates a new instance of saveDataService.
func NewSaveDataService(saveDataRepo repository.SaveDataRepository, metricsManager *metrics.Manager, log logrus.FieldLogger) SaveDataService {
	return &saveDataService{
		saveDataRepo: saveDataRepo,
		metrics:      metricsManager,
		log:          log.WithField("component", "save_data"),
	}
}

func (s *saveDataService) CreateSaveDataFor(ctx context.Context, name string, sets []domain.Rep) (*domain.SaveDataRecord, error) {
	if name == "" {
		return nil, ErrSaveDataInvalid
	}

	record, err := s.saveDataRepo.Create(ctx, domain.SaveDataRecord{
		ExerciseName: name,
		Sets:         domain.CloneReps(sets),
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			s.log.Warnf("create save data for [%s]: record already exists", name)
			return nil, ErrSaveDataDuplicate
		}
		return nil, fmt.Errorf("create save data for [%s]: %w", name, err)
	}
	return record, nil
}

func (s *saveDataService) UpdateSaveDataFor(ctx context.Context, record domain.SaveDataRecord) (*domain.SaveDataRecord, error) {
	if record.ExerciseName == "" {
		return nil, ErrSaveDataInvalid
	}

	updated, err := s.saveDataRepo.Update(ctx, record.Clone())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.log.Warnf("update save data for [%s]: no record found", record.ExerciseName)
			return nil, ErrSaveDataNoRecordFound
		}
		return nil, fmt.Errorf("update save data for [%s]: %w", record.ExerciseName, err)
	}
	return updated, nil
}

func (s *saveDataService) ReadSavedDataFor(ctx context.Context, name string) (*domain.SaveDataRecord, bool, error) {
	record, err := s.saveDataRepo.Read(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read save data for [%s]: %w", name, err)
	}
	return record, true, nil
}

func (s *saveDataService) ReadAllSavedData(ctx context.Context) ([]domain.SaveDataRecord, error) {
	records, err := s.saveDataRepo.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("read all save data: %w", err)
	}
	if records == nil {
		records = []domain.SaveDataRecord{}
	}
	return records, nil
}

// RecordProgress is the create-then-update reconciliation, executed as one
// conditional write in the repository so concurrent callers cannot both
// take the create path.
func (s *saveDataService) RecordProgress(ctx context.Context, name string, sets []domain.Rep) (*domain.SaveDataRecord, bool, error) {
	if name == "" {
		return nil, false, ErrSaveDataInvalid
	}

	record, created, err := s.saveDataRepo.Upsert(ctx, domain.SaveDataRecord{
		ExerciseName: name,
		Sets:         domain.CloneReps(sets),
	})
	return s.reconciled(name, record, created, err)
}

func (s *saveDataService) AppendProgress(ctx context.Context, name string, sets []domain.Rep) (*domain.SaveDataRecord, bool, error) {
	if name == "" {
		return nil, false, ErrSaveDataInvalid
	}

	record, created, err := s.saveDataRepo.Append(ctx, name, domain.CloneReps(sets))
	return s.reconciled(name, record, created, err)
}

func (s *saveDataService) reconciled(name string, record *domain.SaveDataRecord, created bool, err error) (*domain.SaveDataRecord, bool, error) {
	if err != nil {
		s.metrics.CounterSaveDataReconciled.WithLabelValues(metrics.ReconcileFailed).Inc()
		return nil, false, fmt.Errorf("reconcile save data for [%s]: %w", name, err)
	}

	if created {
		s.metrics.CounterSaveDataReconciled.WithLabelValues(metrics.ReconcileCreated).Inc()
		s.log.Debugf("save data for [%s] created", name)
	} else {
		s.metrics.CounterSaveDataReconciled.WithLabelValues(metrics.ReconcileUpdated).Inc()
		s.log.Debugf("save data for [%s] existed, updated instead", name)
	}
	return record, created, nil
}
