package lock

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	lock := New("/tmp/test/locks", "deploy")
	assert.Equal(t, "/tmp/test/locks/deploy.lock", lock.path)
}

func TestLock_AcquireRelease(t *testing.T) {
	tmpDir := t.TempDir()
	lock := New(tmpDir, "deploy")

	err := lock.Acquire()
	require.NoError(t, err)

	// Lock file should exist while held
	lockPath := filepath.Join(tmpDir, "deploy.lock")
	_, err = os.Stat(lockPath)
	require.NoError(t, err)

	err = lock.Release()
	require.NoError(t, err)

	// Lock file should be removed
	_, err = os.Stat(lockPath)
	assert.True(t, os.IsNotExist(err))
}

func TestLock_DoubleAcquire(t *testing.T) {
	tmpDir := t.TempDir()
	lock1 := New(tmpDir, "deploy")
	lock2 := New(tmpDir, "deploy")

	err := lock1.Acquire()
	require.NoError(t, err)
	defer lock1.Release()

	err = lock2.Acquire()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "another deploy operation is already running")
}

func TestLock_DifferentOperations(t *testing.T) {
	tmpDir := t.TempDir()
	lock1 := New(tmpDir, "deploy")
	lock2 := New(tmpDir, "render")

	require.NoError(t, lock1.Acquire())
	defer lock1.Release()

	// A different operation's lock is independent
	require.NoError(t, lock2.Acquire())
	defer lock2.Release()
}

func TestLock_ReleaseWithoutAcquire(t *testing.T) {
	tmpDir := t.TempDir()
	lock := New(tmpDir, "deploy")

	err := lock.Release()
	require.NoError(t, err)
}

func TestWithLock(t *testing.T) {
	tmpDir := t.TempDir()

	executed := false
	err := WithLock(tmpDir, "deploy", func() error {
		executed = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, executed)
}

func TestWithLock_Blocked(t *testing.T) {
	tmpDir := t.TempDir()
	lock := New(tmpDir, "deploy")

	err := lock.Acquire()
	require.NoError(t, err)
	defer lock.Release()

	err = WithLock(tmpDir, "deploy", func() error {
		return nil
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "another deploy operation is already running")
}
