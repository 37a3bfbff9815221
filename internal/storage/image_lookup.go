package storage

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"time"
)

// ObjectImageLookup resolves catalog image names to presigned object storage URLs.
type ObjectImageLookup struct {
	storage FileStorage
	prefix  string
	expires time.Duration
}

func NewObjectImageLookup(storage FileStorage, prefix string, expires time.Duration) *ObjectImageLookup {
	return &ObjectImageLookup{
		storage: storage,
		prefix:  prefix,
		expires: expires,
	}
}

// LookupImages returns one URL per name, in the same order.
func (l *ObjectImageLookup) LookupImages(ctx context.Context, names []string) ([]string, error) {
	urls := make([]string, 0, len(names))
	for _, name := range names {
		objectKey := path.Join(l.prefix, name)
		u, err := l.storage.GeneratePresignedDownloadURL(ctx, objectKey, l.expires)
		if err != nil {
			return nil, fmt.Errorf("presign image [%s]: %w", name, err)
		}
		urls = append(urls, u)
	}
	return urls, nil
}

// BaseURLImageLookup resolves image names against a static base URL,
// typically the catalog's image base URL.
type BaseURLImageLookup struct {
	baseURL string
}

func NewBaseURLImageLookup(baseURL string) *BaseURLImageLookup {
	return &BaseURLImageLookup{baseURL: baseURL}
}

func (l *BaseURLImageLookup) LookupImages(_ context.Context, names []string) ([]string, error) {
	base, err := url.Parse(l.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse image base url: %w", err)
	}

	urls := make([]string, 0, len(names))
	for _, name := range names {
		urls = append(urls, base.JoinPath(name).String())
	}
	return urls, nil
}
