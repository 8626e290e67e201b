package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Version
	}{
		{"5", Version{Major: 5}},
		{"5.15", Version{Major: 5, Minor: 15}},
		{"5.15.2", Version{Major: 5, Minor: 15, Patch: 2}},
		{"0.0.0", Version{}},
	} {
		v, err := Parse(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, v, tc.in)
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"", "a.b.c", "1.2.3.4", "1..2", "-1.0"} {
		_, err := Parse(in)
		assert.Error(t, err, in)
	}
}

func TestCompareOrder(t *testing.T) {
	v := MustParse("5.15.2")
	assert.Equal(t, 0, v.Compare(MustParse("5.15.2")))
	assert.Equal(t, 1, v.Compare(MustParse("5.15.1")))
	assert.Equal(t, -1, v.Compare(MustParse("5.15.3")))
	assert.Equal(t, 1, v.Compare(MustParse("5.14.9")))
	assert.Equal(t, -1, v.Compare(MustParse("6.0.0")))

	// missing segments compare as zero
	assert.Equal(t, 0, MustParse("5.15").Compare(MustParse("5.15.0")))
}

func TestAtLeast(t *testing.T) {
	v := MustParse("5.15.2")
	assert.True(t, v.AtLeast(MustParse("5.15.2")))
	assert.True(t, v.AtLeast(MustParse("5.14")))
	assert.False(t, v.AtLeast(MustParse("5.15.3")))
}

func TestRange(t *testing.T) {
	r := Range{Lo: MustParse("5.15.0"), Hi: MustParse("5.15.2")}
	assert.True(t, r.Contains(MustParse("5.15.0")))
	assert.True(t, r.Contains(MustParse("5.15.2")))
	assert.False(t, r.Contains(MustParse("5.15.3")))
	assert.False(t, r.Contains(MustParse("5.14.9")))

	pr := PatchRange(5, 15)
	assert.True(t, pr.Contains(MustParse("5.15.99")))
	assert.False(t, pr.Contains(MustParse("5.16.0")))
}

func TestSet(t *testing.T) {
	s := NewSet(MustParse("5.15.2"), MustParse("6.2.0"))
	s.AddRange(Range{Lo: MustParse("6.3.0"), Hi: MustParse("6.3.1")})

	assert.True(t, s.Contains(MustParse("5.15.2")))
	assert.False(t, s.Contains(MustParse("5.15.1")))
	assert.True(t, s.Contains(MustParse("6.3.0")))
	assert.True(t, s.Contains(MustParse("6.3.1")))
	assert.False(t, s.Contains(MustParse("6.3.2")))

	var nilSet *Set
	assert.False(t, nilSet.Contains(MustParse("1.0.0")))
}

func TestFromEnv(t *testing.T) {
	t.Setenv("PARTI_TEST_VERSION", "5.15.2")
	v, ok := FromEnv("PARTI_TEST_VERSION")
	require.True(t, ok)
	assert.Equal(t, MustParse("5.15.2"), v)

	t.Setenv("PARTI_TEST_VERSION", "bogus")
	_, ok = FromEnv("PARTI_TEST_VERSION")
	assert.False(t, ok)

	_, ok = FromEnv("PARTI_TEST_VERSION_UNSET")
	assert.False(t, ok)
}

func TestSkipUnless(t *testing.T) {
	// must not skip when the requirement is met
	SkipUnless(t, MustParse("5.15.2"), MustParse("5.15.0"), "needs 5.15")
	Gate{Min: MustParse("5.0.0"), Reason: "needs 5.x"}.Skip(t, MustParse("5.15.2"))
}

func TestSkipWithout(t *testing.T) {
	t.Setenv(FeaturesEnv, "slow, network")
	SkipWithout(t, "network")
}
