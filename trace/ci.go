package trace

import "os"

// OnCI reports whether the process runs under CI, per the CI env
// variable convention.
func OnCI() bool {
	return os.Getenv("CI") != ""
}

// GroupBegin returns the string beginning a GitHub Actions log group.
func GroupBegin(name string) string {
	return "::group::" + name
}

// GroupEnd returns the string ending a GitHub Actions log group.
func GroupEnd() string {
	return "::endgroup::"
}
