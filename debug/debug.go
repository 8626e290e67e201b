// Package debug provides env-gated debug logging for parti internals.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Match bool
	Op    bool
	Data  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Match = boolEnv("PARTI_DEBUG_MATCH")
	d.Op = boolEnv("PARTI_DEBUG_OP")
	d.Data = boolEnv("PARTI_DEBUG_DATA")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Match() bool {
	return d.Match
}
func Op() bool {
	return d.Op
}
func Data() bool {
	return d.Data
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
