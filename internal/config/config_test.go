package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// evalSymlinks resolves symlinks for path comparison (macOS /var -> /private/var).
func evalSymlinks(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return path
	}
	return resolved
}

func writeFleetFile(t *testing.T, dir string) {
	t.Helper()
	content := "apiVersion: stevedore.io/v1\nkind: Fleet\ngroups: []\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fleet.yml"), []byte(content), 0644))
}

func TestFindRoot_FromProjectRoot(t *testing.T) {
	tmpDir := evalSymlinks(t, t.TempDir())
	writeFleetFile(t, tmpDir)

	originalWd, err := os.Getwd()
	require.NoError(t, err)
	defer os.Chdir(originalWd)

	require.NoError(t, os.Chdir(tmpDir))

	root, err := FindRoot()
	require.NoError(t, err)
	assert.Equal(t, tmpDir, root)
}

func TestFindRoot_FromSubdirectory(t *testing.T) {
	tmpDir := evalSymlinks(t, t.TempDir())
	writeFleetFile(t, tmpDir)

	subDir := filepath.Join(tmpDir, "templates", "deep")
	require.NoError(t, os.MkdirAll(subDir, 0755))

	originalWd, err := os.Getwd()
	require.NoError(t, err)
	defer os.Chdir(originalWd)

	require.NoError(t, os.Chdir(subDir))

	root, err := FindRoot()
	require.NoError(t, err)
	assert.Equal(t, tmpDir, root)
}

func TestFindRoot_DeepNesting(t *testing.T) {
	tmpDir := evalSymlinks(t, t.TempDir())
	writeFleetFile(t, tmpDir)

	deepDir := filepath.Join(tmpDir, "a", "b", "c", "d", "e", "f")
	require.NoError(t, os.MkdirAll(deepDir, 0755))

	originalWd, err := os.Getwd()
	require.NoError(t, err)
	defer os.Chdir(originalWd)

	require.NoError(t, os.Chdir(deepDir))

	root, err := FindRoot()
	require.NoError(t, err)
	assert.Equal(t, tmpDir, root)
}

func TestFindRoot_NoProjectRoot(t *testing.T) {
	tmpDir := t.TempDir()

	originalWd, err := os.Getwd()
	require.NoError(t, err)
	defer os.Chdir(originalWd)

	require.NoError(t, os.Chdir(tmpDir))

	_, err = FindRoot()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project root not found")
}

func TestFindRoot_FleetDirIgnored(t *testing.T) {
	// A directory named fleet.yml must not count as a project marker.
	tmpDir := evalSymlinks(t, t.TempDir())
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "fleet.yml"), 0755))

	_, err := FindRootFrom(tmpDir)
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	tmpDir := evalSymlinks(t, t.TempDir())
	writeFleetFile(t, tmpDir)

	originalWd, err := os.Getwd()
	require.NoError(t, err)
	defer os.Chdir(originalWd)

	require.NoError(t, os.Chdir(tmpDir))

	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, tmpDir, cfg.Root)
	assert.Equal(t, filepath.Join(tmpDir, "fleet.yml"), cfg.FleetFile)
	assert.Equal(t, filepath.Join(tmpDir, "templates"), cfg.TemplatesDir)
	assert.Equal(t, filepath.Join(tmpDir, "vars", "defaults.yml"), cfg.VarsFile)
	assert.Equal(t, filepath.Join(tmpDir, "vars", "secrets.sops.yml"), cfg.SecretsFile)
}

func TestLoad_NoProjectRoot(t *testing.T) {
	tmpDir := t.TempDir()

	originalWd, err := os.Getwd()
	require.NoError(t, err)
	defer os.Chdir(originalWd)

	require.NoError(t, os.Chdir(tmpDir))

	cfg, err := Load()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "project root not found")
}

func TestConfig_DerivedDirs(t *testing.T) {
	cfg := FromRoot("/project")

	assert.Equal(t, "/project/stevedore", cfg.StateDir())
	assert.Equal(t, "/project/stevedore/compose", cfg.OutputDir())
	assert.Equal(t, "/project/stevedore/debug", cfg.DebugDir())
	assert.Equal(t, "/project/stevedore/locks", cfg.LocksDir())
}
