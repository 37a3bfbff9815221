package cache

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"encoding/json"
	"fmt"

	"github.com/coocood/freecache"
	"github.com/sirupsen/logrus"
)

const (
	megabyte        = 1024 * 1024
	allExercisesKey = "catalog::all"
)

// ExerciseRepository is a read-through cache in front of a catalog repository.
// Templates are immutable after import, so entries only expire by TTL or an
// explicit Purge after a new import.
type ExerciseRepository struct {
	next          repository.ExerciseRepository
	cache         *freecache.Cache
	expireSeconds int
	log           logrus.FieldLogger
}

func NewExerciseRepository(next repository.ExerciseRepository, cacheSizeMegabytes, expireSeconds int, log logrus.FieldLogger) *ExerciseRepository {
	return &ExerciseRepository{
		next:          next,
		cache:         freecache.NewCache(cacheSizeMegabytes * megabyte),
		expireSeconds: expireSeconds,
		log:           log,
	}
}

func (r *ExerciseRepository) FetchExercises(ctx context.Context) ([]domain.ExerciseTemplate, error) {
	var templates []domain.ExerciseTemplate
	if r.get(allExercisesKey, &templates) {
		return templates, nil
	}

	templates, err := r.next.FetchExercises(ctx)
	if err != nil {
		return nil, err
	}
	r.set(allExercisesKey, templates)
	return templates, nil
}

func (r *ExerciseRepository) FetchExercise(ctx context.Context, id string) (*domain.ExerciseTemplate, error) {
	key := exerciseKey(id)

	var tmpl domain.ExerciseTemplate
	if r.get(key, &tmpl) {
		return &tmpl, nil
	}

	found, err := r.next.FetchExercise(ctx, id)
	if err != nil {
		return nil, err
	}
	r.set(key, found)
	return found, nil
}

func (r *ExerciseRepository) ImageBaseURL() string {
	return r.next.ImageBaseURL()
}

// Purge drops every cached entry.
func (r *ExerciseRepository) Purge() {
	r.cache.Clear()
}

func (r *ExerciseRepository) get(key string, v any) bool {
	data, err := r.cache.Get([]byte(key))
	if err != nil {
		r.log.Debugf("catalog cache miss for %s: %s", key, err)
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		r.log.Errorf("failed to unmarshal cached catalog entry %s: %s", key, err)
		return false
	}
	return true
}

func (r *ExerciseRepository) set(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		r.log.Errorf("failed to marshal catalog entry %s: %s", key, err)
		return
	}
	if err := r.cache.Set([]byte(key), data, r.expireSeconds); err != nil {
		r.log.Warnf("failed to cache catalog entry %s: %s", key, err)
	}
}

func exerciseKey(id string) string {
	return fmt.Sprintf("catalog::exercise::%s", id)
}
