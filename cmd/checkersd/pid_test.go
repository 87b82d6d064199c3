package main

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAcquireAndReleasePIDFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkersd.pid")

	pf, err := acquirePIDFile(path, true)
	require.NoError(t, err)

	pid, err := readPID(path)
	require.NoError(t, err)
	require.Equal(t, os.Getpid(), pid)

	// Our own process is alive, so a second locked start is refused
	_, err = acquirePIDFile(path, true)
	require.Error(t, err)

	pf.Release()
	_, err = os.Stat(path)
	require.True(t, os.IsNotExist(err))
}

func TestStalePIDFileIsReused(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkersd.pid")

	// PIDs near the top of the range are not in use on test machines
	require.NoError(t, os.WriteFile(path, []byte(strconv.Itoa(1<<22-3)+"\n"), 0644))

	pf, err := acquirePIDFile(path, true)
	require.NoError(t, err)
	defer pf.Release()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, strconv.Itoa(os.Getpid()), strings.TrimSpace(string(data)))
}

func TestCorruptedPIDFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkersd.pid")
	require.NoError(t, os.WriteFile(path, []byte("not-a-pid"), 0644))

	_, err := acquirePIDFile(path, true)
	require.ErrorContains(t, err, "corrupted PID file")
}

func TestEnvFallbacks(t *testing.T) {
	t.Setenv("CHECKERS_TEST_BOOL", "yes")
	t.Setenv("CHECKERS_TEST_INT", "12")
	t.Setenv("CHECKERS_TEST_DUR", "250ms")
	t.Setenv("CHECKERS_TEST_BAD", "soon")

	require.True(t, getenb("CHECKERS_TEST_BOOL", false))
	require.Equal(t, 12, getenvInt("CHECKERS_TEST_INT", 1))
	require.Equal(t, "250ms", getenvDuration("CHECKERS_TEST_DUR", 0).String())
	require.Equal(t, 3, getenvInt("CHECKERS_TEST_BAD", 3))
	require.Equal(t, "fallback", getenv("CHECKERS_TEST_UNSET", "fallback"))
}
