package document

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store writes decoded document images under a base directory.
type Store struct {
	Dir string
}

// NewStore ensures the upload directory exists.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{Dir: dir}, nil
}

// SaveBase64Image decodes a base64 payload (a leading "data:...," prefix is
// tolerated) and writes it to <type>_<number>_<random>.jpg, returning the
// file path.
func (s *Store) SaveBase64Image(b64, docType, docNumber string) (string, error) {
	if i := strings.Index(b64, ","); i >= 0 {
		b64 = b64[i+1:]
	}
	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadImage, err)
	}

	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")
	filename := fmt.Sprintf("%s_%s_%s.jpg", sanitize(docType), sanitize(docNumber), suffix)
	path := filepath.Join(s.Dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}
	return path, nil
}

// sanitize keeps filenames flat; document numbers come from user input.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			return r
		default:
			return '_'
		}
	}, s)
}
