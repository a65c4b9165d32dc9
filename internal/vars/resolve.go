package vars

import (
	"fmt"
	"sort"
)

// Source is a read-only provider of configuration values.
type Source interface {
	// Name identifies the source in error messages.
	Name() string

	// Load returns the source's values. Called once per run.
	Load() (map[string]any, error)
}

// Resolve merges the given sources in precedence order (later sources
// shadow earlier ones key-by-key) and verifies every required key is
// present. The returned Context is immutable.
func Resolve(sources []Source, required []string) (*Context, error) {
	merged := make(map[string]any)

	for _, src := range sources {
		values, err := src.Load()
		if err != nil {
			return nil, fmt.Errorf("load source %s: %w", src.Name(), err)
		}
		for k, v := range values {
			// Whole-value shadow: no partial merge of nested maps.
			merged[k] = v
		}
	}

	var missing []string
	for _, k := range required {
		if _, ok := merged[k]; !ok {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &MissingKeyError{Keys: missing}
	}

	return NewContext(merged), nil
}
