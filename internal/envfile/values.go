package envfile

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Values is a resolved key-to-value view of an env file.
type Values map[string]string

// LoadValues reads the env file at path into a flat map using godotenv
// semantics. A missing file yields an empty map.
func LoadValues(path string) (Values, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return Values{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open env file %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	parsed, err := godotenv.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse env file %q: %w", path, err)
	}
	out := make(Values, len(parsed))
	for k, v := range parsed {
		out[k] = v
	}
	return out, nil
}
