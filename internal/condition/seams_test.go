package condition

import "testing"

// swap replaces a package-level collaborator for the duration of one
// test, restoring it on cleanup. Probe tests run sequentially within the
// package, so plain assignment is safe.
func swap[T any](t *testing.T, target *T, replacement T) {
	t.Helper()
	saved := *target
	*target = replacement
	t.Cleanup(func() { *target = saved })
}
