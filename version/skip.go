package version

import (
	"os"
	"strings"
	"testing"
)

// SkipUnless skips the test unless have is at least min.
func SkipUnless(t testing.TB, have, min Version, reason string) {
	t.Helper()
	if have.AtLeast(min) {
		return
	}
	t.Skipf("%s (have %s, need %s)", reason, have, min)
}

// SkipIfAffected skips the test when have is in the affected set.
func SkipIfAffected(t testing.TB, have Version, affected *Set, reason string) {
	t.Helper()
	if !affected.Contains(have) {
		return
	}
	t.Skipf("%s (version %s affected)", reason, have)
}

// Gate bundles a minimum version requirement so test files can declare
// it once and reuse it.
type Gate struct {
	Min    Version
	Reason string
}

func (g Gate) Skip(t testing.TB, have Version) {
	t.Helper()
	SkipUnless(t, have, g.Min, g.Reason)
}

// FromEnv parses a version from the named environment variable.  An
// unset or malformed variable yields the zero Version and false.
func FromEnv(key string) (Version, bool) {
	s := os.Getenv(key)
	if s == "" {
		return Version{}, false
	}
	v, err := Parse(s)
	if err != nil {
		return Version{}, false
	}
	return v, true
}

// FeaturesEnv lists opt-in test features, comma separated.
const FeaturesEnv = "PARTI_TEST_FEATURES"

// SkipWithout skips the test unless feature appears in the
// comma-separated PARTI_TEST_FEATURES environment variable.
func SkipWithout(t testing.TB, feature string) {
	t.Helper()
	for f := range strings.SplitSeq(os.Getenv(FeaturesEnv), ",") {
		if strings.TrimSpace(f) == feature {
			return
		}
	}
	t.Skipf("feature %q not enabled via %s", feature, FeaturesEnv)
}
