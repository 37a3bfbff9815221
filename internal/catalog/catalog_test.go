package catalog_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"alcyxob/fitness-tracker/internal/catalog"
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository/memory"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_YAML(t *testing.T) {
	templates, err := catalog.LoadFile("testdata/exercises.yaml")
	require.NoError(t, err)
	require.Len(t, templates, 3)

	assert.Equal(t, domain.ExerciseTemplate{
		ID:                  "e1",
		Name:                "Push Up",
		CaloriesCoefficient: 0.05,
		Tags:                []string{"chest", "arms"},
		ImageNames:          []string{"push_up_1.png", "push_up_2.png"},
		BodyweightOnly:      true,
	}, templates[0])
	assert.Equal(t, "Back Squat", templates[2].Name)
}

func TestLoadFile_JSON(t *testing.T) {
	templates, err := catalog.LoadFile("testdata/exercises.json")
	require.NoError(t, err)
	require.Len(t, templates, 2)
	assert.Equal(t, "e2", templates[1].ID)
	assert.Equal(t, 0.02, templates[1].CaloriesCoefficient)
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := catalog.LoadFile("testdata/exercises.csv")
	assert.ErrorIs(t, err, catalog.ErrUnknownFormat)

	_, err = catalog.LoadFile("testdata/missing.yaml")
	assert.Error(t, err)
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		format  catalog.Format
		input   string
		wantErr error
	}{
		{
			name:    "negative coefficient",
			format:  catalog.FormatJSON,
			input:   `[{"id":"e1","name":"Push Up","caloriesCoefficient":-0.1}]`,
			wantErr: catalog.ErrInvalidTemplate,
		},
		{
			name:    "duplicate id",
			format:  catalog.FormatYAML,
			input:   "- {id: e1, name: Push Up}\n- {id: e1, name: Pull Up}\n",
			wantErr: catalog.ErrDuplicateID,
		},
		{
			name:    "missing id",
			format:  catalog.FormatYAML,
			input:   "- {name: Push Up}\n",
			wantErr: catalog.ErrInvalidTemplate,
		},
		{
			name:    "missing name",
			format:  catalog.FormatJSON,
			input:   `[{"id":"e1"}]`,
			wantErr: catalog.ErrInvalidTemplate,
		},
		{
			name:    "empty",
			format:  catalog.FormatJSON,
			input:   `[]`,
			wantErr: catalog.ErrEmptyCatalogSeed,
		},
		{
			name:    "unknown format",
			format:  catalog.Format("toml"),
			input:   `id = "e1"`,
			wantErr: catalog.ErrUnknownFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.Decode(strings.NewReader(tt.input), tt.format)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDecode_MalformedJSON(t *testing.T) {
	_, err := catalog.Decode(strings.NewReader(`[{"id":"e1","name":"Push Up","unknown":1}]`), catalog.FormatJSON)
	assert.Error(t, err)

	_, err = catalog.Decode(strings.NewReader(`{`), catalog.FormatJSON)
	assert.Error(t, err)
}

type purgeCounter struct{ purged int }

func (p *purgeCounter) Purge() { p.purged++ }

func TestImporter_Import(t *testing.T) {
	ctx := context.Background()
	log, _ := logtest.NewNullLogger()
	repo := memory.NewExerciseRepository("")
	cache := &purgeCounter{}

	stats, err := catalog.NewImporter(repo, log, false, cache).ImportFile(ctx, "testdata/exercises.yaml")
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Decoded)
	assert.Equal(t, 3, stats.Upserted)
	assert.Equal(t, 1, cache.purged)

	all, err := repo.FetchExercises(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "e1", all[0].ID)

	// re-importing replaces in place
	_, err = catalog.NewImporter(repo, log, false).ImportFile(ctx, "testdata/exercises.json")
	require.NoError(t, err)
	all, err = repo.FetchExercises(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, []string{"chest"}, all[0].Tags)
}

func TestImporter_DryRun(t *testing.T) {
	ctx := context.Background()
	log, _ := logtest.NewNullLogger()
	repo := memory.NewExerciseRepository("")

	stats, err := catalog.NewImporter(repo, log, true).ImportFile(ctx, "testdata/exercises.yaml")
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Decoded)
	assert.Zero(t, stats.Upserted)

	all, err := repo.FetchExercises(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

type failingWriter struct{}

func (failingWriter) UpsertTemplates(context.Context, []domain.ExerciseTemplate) (int, error) {
	return 0, errors.New("read-only store")
}

func TestImporter_WriteFailure(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	cache := &purgeCounter{}

	_, err := catalog.NewImporter(failingWriter{}, log, false, cache).Import(context.Background(), []domain.ExerciseTemplate{
		{ID: "e1", Name: "Push Up"},
	})
	require.Error(t, err)
	assert.Zero(t, cache.purged)
}
