package demo

// seed is the notebook shown in demo mode. Order matters: ids are assigned
// in sequence starting at 1.
var seed = []struct {
	book  string
	notes []string
}{
	{"go", []string{
		"# Issues\n\n- context cancellation leaks in the poller\n- flaky TestReconcile on CI",
		"# Generics\n\nType parameters go in square brackets:\n\n```go\nfunc Map[T, U any](xs []T, f func(T) U) []U\n```",
		"errgroup.WithContext cancels siblings on first error",
	}},
	{"journal", []string{
		"# 2026-10-01\n\nStarted the terminal notes browser.",
		"# 2026-10-08\n\nChords work. `d d` deletes.",
	}},
	{"linux", []string{
		"# Missed\n\nThings I keep forgetting:\n\n1. `ss -tlnp`\n2. `journalctl -u <unit> -f`",
	}},
	{"recipes", nil},
}
