// internal/domain/exercise.go
package domain

// ExerciseTemplate is a catalog entry as imported from the seed asset.
// Templates are immutable once imported.
type ExerciseTemplate struct {
	ID                  string   `bson:"_id" json:"id" yaml:"id"`
	Name                string   `bson:"name" json:"name" yaml:"name"`
	Tags                []string `bson:"tags,omitempty" json:"tags,omitempty" yaml:"tags,omitempty"`
	CaloriesCoefficient float64  `bson:"caloriesCoefficient" json:"caloriesCoefficient" yaml:"caloriesCoefficient"` // MET-like, per second or per rep
	ImageNames          []string `bson:"images,omitempty" json:"images,omitempty" yaml:"images,omitempty"`
	BodyweightOnly      bool     `bson:"bodyweightOnly,omitempty" json:"bodyweightOnly,omitempty" yaml:"bodyweightOnly,omitempty"` // Rejects externally supplied weight
}

// NormalizedTags returns the template tags with duplicates and empty values
// removed, keeping first-seen order.
func (t ExerciseTemplate) NormalizedTags() []string {
	tags := make([]string, 0, len(t.Tags))
	seen := make(map[string]struct{}, len(t.Tags))
	for _, tag := range t.Tags {
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}

// Exercise is the display shape of a catalog entry handed to the presentation layer.
type Exercise struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	CaloriesPerSecond float64  `json:"caloriesPerSecond"`
	Tags              []string `json:"tags"`
	Images            []string `json:"images,omitempty"`
	BodyweightOnly    bool     `json:"bodyweightOnly,omitempty"`
}

// ExerciseFromTemplate maps a catalog template to its display value.
// The calorie coefficient is carried over unaltered.
func ExerciseFromTemplate(t ExerciseTemplate) Exercise {
	var images []string
	if len(t.ImageNames) > 0 {
		images = append([]string(nil), t.ImageNames...)
	}
	return Exercise{
		ID:                t.ID,
		Name:              t.Name,
		CaloriesPerSecond: t.CaloriesCoefficient,
		Tags:              t.NormalizedTags(),
		Images:            images,
		BodyweightOnly:    t.BodyweightOnly,
	}
}
