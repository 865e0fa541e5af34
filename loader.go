package wealth

import (
	"fmt"
	"os"
)

// LoadProfile opens and decodes the profile stored in file 'path'.
func LoadProfile(path string) (*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open profile file %q: %w", path, err)
	}
	defer f.Close()

	p, err := DecodeProfile(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode profile file %q: %w", path, err)
	}
	return p, nil
}
