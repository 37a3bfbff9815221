package memory

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"sync"
)

// exerciseRepository is an in-process catalog. It keeps import order so
// FetchExercises returns templates the way they were seeded.
type exerciseRepository struct {
	mu           sync.RWMutex
	order        []string
	templates    map[string]domain.ExerciseTemplate
	imageBaseURL string
}

// NewExerciseRepository creates a catalog seeded with templates.
func NewExerciseRepository(imageBaseURL string, templates ...domain.ExerciseTemplate) *exerciseRepository {
	r := &exerciseRepository{
		templates:    make(map[string]domain.ExerciseTemplate, len(templates)),
		imageBaseURL: imageBaseURL,
	}
	_, _ = r.UpsertTemplates(context.Background(), templates)
	return r
}

func (r *exerciseRepository) FetchExercises(_ context.Context) ([]domain.ExerciseTemplate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.ExerciseTemplate, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneTemplate(r.templates[id]))
	}
	return out, nil
}

func (r *exerciseRepository) FetchExercise(_ context.Context, id string) (*domain.ExerciseTemplate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tmpl, ok := r.templates[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	tmpl = cloneTemplate(tmpl)
	return &tmpl, nil
}

func (r *exerciseRepository) ImageBaseURL() string {
	return r.imageBaseURL
}

// UpsertTemplates adds new templates and replaces known ones in place.
func (r *exerciseRepository) UpsertTemplates(_ context.Context, templates []domain.ExerciseTemplate) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, tmpl := range templates {
		if tmpl.ID == "" {
			return 0, repository.ErrInvalidRecord
		}
	}
	for _, tmpl := range templates {
		if _, ok := r.templates[tmpl.ID]; !ok {
			r.order = append(r.order, tmpl.ID)
		}
		r.templates[tmpl.ID] = cloneTemplate(tmpl)
	}
	return len(templates), nil
}

func cloneTemplate(t domain.ExerciseTemplate) domain.ExerciseTemplate {
	if t.Tags != nil {
		t.Tags = append([]string(nil), t.Tags...)
	}
	if t.ImageNames != nil {
		t.ImageNames = append([]string(nil), t.ImageNames...)
	}
	return t
}
