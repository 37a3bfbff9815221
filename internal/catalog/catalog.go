// Package catalog reads exercise catalog seed files and imports them into a
// catalog store.
package catalog

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var (
	ErrUnknownFormat    = errors.New("unknown catalog format")
	ErrInvalidTemplate  = errors.New("invalid exercise template")
	ErrDuplicateID      = errors.New("duplicate exercise id")
	ErrEmptyCatalogSeed = errors.New("catalog seed holds no exercises")
)

// FormatFromPath picks the seed format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Decode reads a list of exercise templates and validates it. Tags are
// normalized on the way in.
func Decode(r io.Reader, format Format) ([]domain.ExerciseTemplate, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading catalog seed: %w", err)
	}

	var templates []domain.ExerciseTemplate
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&templates); err != nil {
			return nil, fmt.Errorf("parsing json catalog seed: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &templates); err != nil {
			return nil, fmt.Errorf("parsing yaml catalog seed: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if err := validate(templates); err != nil {
		return nil, err
	}
	for i := range templates {
		templates[i].Tags = templates[i].NormalizedTags()
	}
	return templates, nil
}

// LoadFile decodes the seed file at path.
func LoadFile(path string) ([]domain.ExerciseTemplate, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog seed: %w", err)
	}
	defer f.Close()

	return Decode(f, format)
}

func validate(templates []domain.ExerciseTemplate) error {
	if len(templates) == 0 {
		return ErrEmptyCatalogSeed
	}

	seen := make(map[string]struct{}, len(templates))
	for i, tmpl := range templates {
		switch {
		case tmpl.ID == "":
			return fmt.Errorf("%w: entry %d has no id", ErrInvalidTemplate, i)
		case tmpl.Name == "":
			return fmt.Errorf("%w: [%s] has no name", ErrInvalidTemplate, tmpl.ID)
		case tmpl.CaloriesCoefficient < 0:
			return fmt.Errorf("%w: [%s] has a negative calories coefficient", ErrInvalidTemplate, tmpl.ID)
		}
		if _, ok := seen[tmpl.ID]; ok {
			return fmt.Errorf("%w: [%s]", ErrDuplicateID, tmpl.ID)
		}
		seen[tmpl.ID] = struct{}{}
	}
	return nil
}

// Purger is implemented by caches sitting in front of the catalog store.
type Purger interface {
	Purge()
}

type Stats struct {
	Decoded  int
	Upserted int
}

// Importer writes decoded seed templates into a catalog store.
type Importer struct {
	writer repository.CatalogWriter
	caches []Purger
	log    logrus.FieldLogger
	dryRun bool
}

func NewImporter(writer repository.CatalogWriter, log logrus.FieldLogger, dryRun bool, caches ...Purger) *Importer {
	return &Importer{
		writer: writer,
		caches: caches,
		log:    log.WithField("component", "catalog_import"),
		dryRun: dryRun,
	}
}

func (imp *Importer) Import(ctx context.Context, templates []domain.ExerciseTemplate) (*Stats, error) {
	stats := &Stats{Decoded: len(templates)}
	if imp.dryRun {
		imp.log.Infof("dry run: %d exercises would be imported", len(templates))
		return stats, nil
	}

	n, err := imp.writer.UpsertTemplates(ctx, templates)
	if err != nil {
		return stats, fmt.Errorf("upserting catalog: %w", err)
	}
	stats.Upserted = n

	for _, c := range imp.caches {
		c.Purge()
	}
	imp.log.Infof("imported %d exercises", n)
	return stats, nil
}

// ImportFile loads the seed at path and imports it.
func (imp *Importer) ImportFile(ctx context.Context, path string) (*Stats, error) {
	templates, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return imp.Import(ctx, templates)
}
