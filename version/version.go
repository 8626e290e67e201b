// Package version implements dotted version numbers and the
// version-gated skip helpers built on them.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a dotted version number with up to three segments.
// Missing segments compare as zero, so "5.15" equals "5.15.0".
type Version struct {
	Major int
	Minor int
	Patch int
}

func New(major, minor, patch int) Version {
	return Version{Major: major, Minor: minor, Patch: patch}
}

// Parse reads a dotted version string such as "5.15.2".  One, two or
// three numeric segments are accepted.
func Parse(s string) (Version, error) {
	parts := strings.Split(s, ".")
	if len(parts) > 3 {
		return Version{}, fmt.Errorf("version %q: too many segments", s)
	}
	var segs [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Version{}, fmt.Errorf("version %q: segment %q: %w", s, p, err)
		}
		if n < 0 {
			return Version{}, fmt.Errorf("version %q: negative segment %q", s, p)
		}
		segs[i] = n
	}
	return Version{Major: segs[0], Minor: segs[1], Patch: segs[2]}, nil
}

// MustParse is Parse for compile-time constant versions.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare returns -1, 0 or 1 as v is less than, equal to or greater
// than o.
func (v Version) Compare(o Version) int {
	if d := cmpInt(v.Major, o.Major); d != 0 {
		return d
	}
	if d := cmpInt(v.Minor, o.Minor); d != 0 {
		return d
	}
	return cmpInt(v.Patch, o.Patch)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (v Version) AtLeast(min Version) bool {
	return v.Compare(min) >= 0
}

func (v Version) Less(o Version) bool {
	return v.Compare(o) < 0
}

// Range is an inclusive version interval.
type Range struct {
	Lo Version
	Hi Version
}

func (r Range) Contains(v Version) bool {
	return v.Compare(r.Lo) >= 0 && v.Compare(r.Hi) <= 0
}

func (r Range) String() string {
	return fmt.Sprintf("[%s, %s]", r.Lo, r.Hi)
}

// PatchRange spans every patch release of a major.minor series.
func PatchRange(major, minor int) Range {
	return Range{
		Lo: Version{Major: major, Minor: minor},
		Hi: Version{Major: major, Minor: minor, Patch: maxPatch},
	}
}

const maxPatch = 1<<31 - 1

// Set is a collection of affected versions, used to mark releases a
// known defect applies to.
type Set struct {
	members map[Version]bool
	ranges  []Range
}

func NewSet(vs ...Version) *Set {
	s := &Set{members: map[Version]bool{}}
	for _, v := range vs {
		s.members[v] = true
	}
	return s
}

func (s *Set) Add(v Version) *Set {
	s.members[v] = true
	return s
}

func (s *Set) AddRange(r Range) *Set {
	s.ranges = append(s.ranges, r)
	return s
}

func (s *Set) Contains(v Version) bool {
	if s == nil {
		return false
	}
	if s.members[v] {
		return true
	}
	for _, r := range s.ranges {
		if r.Contains(v) {
			return true
		}
	}
	return false
}

func (s *Set) Len() int {
	return len(s.members) + len(s.ranges)
}
