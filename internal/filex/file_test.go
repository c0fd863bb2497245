package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureParentDir_CreatesMissingDirectories(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, "state", "nested", "taskease.db")

	got, err := EnsureParentDir(target)
	require.NoError(t, err)
	require.Equal(t, target, got)

	fi, err := os.Stat(filepath.Dir(target))
	require.NoError(t, err)
	require.True(t, fi.IsDir())

	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0o700), fi.Mode().Perm()&0o700)
	}

	_, err = os.Stat(target)
	require.True(t, os.IsNotExist(err), "the file itself must not be created")
}

func TestEnsureParentDir_Idempotent(t *testing.T) {
	target := filepath.Join(t.TempDir(), "taskease.db")

	first, err := EnsureParentDir(target)
	require.NoError(t, err)
	second, err := EnsureParentDir(target)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEnsureParentDir_RelativePathBecomesAbsolute(t *testing.T) {
	tmp := t.TempDir()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmp))
	t.Cleanup(func() { _ = os.Chdir(old) })

	got, err := EnsureParentDir("taskease.db")
	require.NoError(t, err)
	require.True(t, filepath.IsAbs(got))
	require.Equal(t, "taskease.db", filepath.Base(got))
}

func TestEnsureParentDir_FailsWhenParentIsAFile(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "state")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	_, err := EnsureParentDir(filepath.Join(blocker, "taskease.db"))
	require.Error(t, err)
}
