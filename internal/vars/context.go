package vars

import (
	"fmt"
	"sort"
	"strings"
)

// Context is an immutable set of resolved variables shared by every
// component of a run. It is built once by Resolve and only read after that.
type Context struct {
	values map[string]any
}

// NewContext creates a Context from the given values.
// The input map is deep-copied so later mutation of it cannot leak in.
func NewContext(values map[string]any) *Context {
	return &Context{values: copyValues(values)}
}

// Lookup returns the value for key and whether it is present.
func (c *Context) Lookup(key string) (any, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Has reports whether key is present.
func (c *Context) Has(key string) bool {
	_, ok := c.values[key]
	return ok
}

// Keys returns all variable names in sorted order.
func (c *Context) Keys() []string {
	keys := make([]string, 0, len(c.values))
	for k := range c.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of variables.
func (c *Context) Len() int {
	return len(c.values)
}

// Sub returns a restricted Context containing only the declared keys.
// Every declared key must be present; missing keys fail with a
// MissingKeyError so an underspecified unit never reaches rendering.
func (c *Context) Sub(keys []string) (*Context, error) {
	sub := make(map[string]any, len(keys))
	var missing []string

	for _, k := range keys {
		v, ok := c.values[k]
		if !ok {
			missing = append(missing, k)
			continue
		}
		sub[k] = v
	}

	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &MissingKeyError{Keys: missing}
	}

	return &Context{values: sub}, nil
}

// Map returns a deep copy of the variables for template execution.
// Callers may mutate the returned map freely.
func (c *Context) Map() map[string]any {
	return copyValues(c.values)
}

// MissingKeyError reports required variables absent from every layer.
type MissingKeyError struct {
	Keys []string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("missing required variables: %s", strings.Join(e.Keys, ", "))
}

// copyValues creates a deep copy of a variable map.
func copyValues(m map[string]any) map[string]any {
	result := make(map[string]any, len(m))
	for k, v := range m {
		result[k] = copyValue(v)
	}
	return result
}

func copyValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return copyValues(v)
	case []any:
		result := make([]any, len(v))
		for i, item := range v {
			result[i] = copyValue(item)
		}
		return result
	case []string:
		result := make([]string, len(v))
		copy(result, v)
		return result
	default:
		// Primitive types are immutable, return as-is
		return value
	}
}
