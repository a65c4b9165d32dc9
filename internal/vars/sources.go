package vars

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// StaticSource serves a fixed map of values.
type StaticSource struct {
	name   string
	values map[string]any
}

// NewStaticSource creates a source from an in-memory map.
func NewStaticSource(name string, values map[string]any) *StaticSource {
	return &StaticSource{name: name, values: values}
}

// Name implements Source.
func (s *StaticSource) Name() string { return s.name }

// Load implements Source.
func (s *StaticSource) Load() (map[string]any, error) {
	if s.values == nil {
		return make(map[string]any), nil
	}
	return s.values, nil
}

// FileSource serves values from a YAML file. A missing file is not an
// error; defaults files are optional.
type FileSource struct {
	path string
}

// NewFileSource creates a source backed by a YAML file.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Name implements Source.
func (s *FileSource) Name() string { return s.path }

// Load implements Source.
func (s *FileSource) Load() (map[string]any, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]any), nil
		}
		return nil, fmt.Errorf("read values file: %w", err)
	}

	var values map[string]any
	if err := yaml.Unmarshal(content, &values); err != nil {
		return nil, fmt.Errorf("parse values file: %w", err)
	}
	if values == nil {
		values = make(map[string]any)
	}
	return values, nil
}

// EnvSource serves overrides from prefixed environment variables.
// A declared key "ollama_port" maps to STEVEDORE_OLLAMA_PORT under the
// default prefix. Only declared keys are considered; the environment is
// never scanned wholesale.
type EnvSource struct {
	prefix string
	keys   []string
	v      *viper.Viper
}

// NewEnvSource creates an environment-backed source for the declared keys.
func NewEnvSource(prefix string, keys []string) *EnvSource {
	v := viper.New()
	v.SetEnvPrefix(prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	return &EnvSource{prefix: prefix, keys: keys, v: v}
}

// Name implements Source.
func (s *EnvSource) Name() string { return "env:" + s.prefix }

// Load implements Source.
func (s *EnvSource) Load() (map[string]any, error) {
	values := make(map[string]any)
	for _, key := range s.keys {
		if v := s.v.Get(key); v != nil {
			values[key] = v
		}
	}
	return values, nil
}

// ParseSet parses --set style key=value overrides into a value map.
// Values stay strings; templates decide how to use them.
func ParseSet(pairs []string) (map[string]any, error) {
	values := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		idx := strings.Index(pair, "=")
		if idx <= 0 {
			return nil, fmt.Errorf("invalid override %q (expected key=value)", pair)
		}
		values[pair[:idx]] = pair[idx+1:]
	}
	return values, nil
}
