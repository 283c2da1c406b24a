package testsupport

import "testing"

// SetupTestHome creates a temp home directory and sets HOME, so tests
// never read the developer's global config.
func SetupTestHome(t testing.TB) string {
	t.Helper()

	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)
	return homeDir
}
