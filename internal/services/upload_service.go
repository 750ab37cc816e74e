package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"mascot-chat/internal/storage"
	mascot_errors "mascot-chat/pkg/errors"
)

// MaxUploadBytes is the hard ceiling on an uploaded file.
const MaxUploadBytes = 5 << 20

const defaultBaseName = "mascot"

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

type UploadService struct {
	store storage.Store
	now   func() time.Time
}

func NewUploadService(store storage.Store) *UploadService {
	return &UploadService{store: store, now: time.Now}
}

// SanitizeFileName replaces every character outside [A-Za-z0-9_.-] with an
// underscore, falling back to "mascot" when no name was supplied.
func SanitizeFileName(original string) string {
	name := strings.TrimSpace(original)
	if name == "" {
		name = defaultBaseName
	}
	return unsafeChars.ReplaceAllString(name, "_")
}

// Save persists the bytes under a millisecond-timestamp-prefixed name and
// returns the public URL. Names are unique per upload in practice; two
// uploads landing the same millisecond with the same sanitized name collide,
// which is accepted.
func (s *UploadService) Save(ctx context.Context, originalName string, data []byte) (string, error) {
	if len(data) > MaxUploadBytes {
		return "", mascot_errors.ErrTooLarge
	}
	name := fmt.Sprintf("%d_%s", s.now().UnixMilli(), SanitizeFileName(originalName))
	return s.store.Put(ctx, name, data)
}

// Fetch returns the bytes of a previously stored asset.
func (s *UploadService) Fetch(ctx context.Context, name string) ([]byte, error) {
	return s.store.Open(ctx, name)
}
