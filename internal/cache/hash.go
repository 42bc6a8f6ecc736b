package cache

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"
)

// Key derives a stable cache key for one floor of a configuration
// document. The document section is re-serialized and hashed, so any
// change to the floor's elements, settings, or palette produces a new key.
func Key(floorName string, parts ...any) (string, error) {
	d := xxhash.New()
	d.WriteString(floorName)
	enc := yaml.NewEncoder(d)
	for _, part := range parts {
		if err := enc.Encode(part); err != nil {
			return "", fmt.Errorf("hashing config for %s: %w", floorName, err)
		}
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("hashing config for %s: %w", floorName, err)
	}
	return fmt.Sprintf("%s-%016x", floorName, d.Sum64()), nil
}
