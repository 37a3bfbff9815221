package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStorage struct {
	keys []string
	err  error
}

func (f *fakeStorage) GeneratePresignedDownloadURL(_ context.Context, objectKey string, expires time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.keys = append(f.keys, objectKey)
	return "https://bucket.example.com/" + objectKey + "?expires=" + expires.String(), nil
}

func TestObjectImageLookup(t *testing.T) {
	fs := &fakeStorage{}
	lookup := NewObjectImageLookup(fs, "exercises", time.Minute)

	urls, err := lookup.LookupImages(context.Background(), []string{"push_up.png", "squat.png"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://bucket.example.com/exercises/push_up.png?expires=1m0s",
		"https://bucket.example.com/exercises/squat.png?expires=1m0s",
	}, urls)
	assert.Equal(t, []string{"exercises/push_up.png", "exercises/squat.png"}, fs.keys)

	empty, err := lookup.LookupImages(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestObjectImageLookup_Error(t *testing.T) {
	lookup := NewObjectImageLookup(&fakeStorage{err: errors.New("denied")}, "exercises", time.Minute)
	_, err := lookup.LookupImages(context.Background(), []string{"a.png"})
	assert.ErrorContains(t, err, "a.png")
}

func TestBaseURLImageLookup(t *testing.T) {
	lookup := NewBaseURLImageLookup("https://cdn.example.com/images/")
	urls, err := lookup.LookupImages(context.Background(), []string{"push_up.png", "squat side.png"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://cdn.example.com/images/push_up.png",
		"https://cdn.example.com/images/squat%20side.png",
	}, urls)

	_, err = NewBaseURLImageLookup("://bad").LookupImages(context.Background(), []string{"x"})
	assert.Error(t, err)
}
