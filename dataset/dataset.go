// Package dataset streams lines out of the gzip-compressed data files
// used by the heavier tests.
package dataset

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/parti-format/parti/debug"
)

// DirEnv overrides the directory the data files are read from.
const DirEnv = "PARTI_DATA_DIR"

// DefaultDir is where the data files live when DirEnv is unset,
// relative to the package under test.
const DefaultDir = "testdata/data"

// Known data file names.
const (
	BlockedHostsFile = "blocked-hosts.gz"
	EasyListFile     = "easylist.txt.gz"
	EasyPrivacyFile  = "easyprivacy.txt.gz"
	AdblockTSVFile   = "brave-adblock/ublock-matches.tsv.gz"
)

// Lines iterates the decompressed lines of a data file.  Callers loop
// with Next, read with Text, and check Err after the loop.  Close
// releases the file.
type Lines struct {
	f  *os.File
	gz *gzip.Reader
	sc *bufio.Scanner
}

type openOpts struct {
	dir string
}

type OpenOption func(*openOpts)

// WithDir reads the file from dir instead of the default location.
func WithDir(dir string) OpenOption {
	return func(o *openOpts) { o.dir = dir }
}

// Dir resolves the data directory, honoring the DirEnv override.
func Dir() string {
	if d := os.Getenv(DirEnv); d != "" {
		return d
	}
	return DefaultDir
}

// Open opens the named gzip data file for line iteration.
func Open(name string, opts ...OpenOption) (*Lines, error) {
	o := &openOpts{dir: Dir()}
	for _, f := range opts {
		f(o)
	}
	path := filepath.Join(o.dir, filepath.FromSlash(name))
	if debug.Data() {
		debug.Logf("dataset open %s\n", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", name, err)
	}
	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("dataset %s: %w", name, err)
	}
	sc := bufio.NewScanner(gz)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	return &Lines{f: f, gz: gz, sc: sc}, nil
}

// Next advances to the next line, returning false at end of data or on
// error.
func (l *Lines) Next() bool {
	return l.sc.Scan()
}

// Text returns the current line without its trailing newline.
func (l *Lines) Text() string {
	return l.sc.Text()
}

func (l *Lines) Err() error {
	return l.sc.Err()
}

func (l *Lines) Close() error {
	gzErr := l.gz.Close()
	fErr := l.f.Close()
	if gzErr != nil {
		return gzErr
	}
	return fErr
}

// ReadAll drains the remaining lines into a slice and closes l.
func (l *Lines) ReadAll() ([]string, error) {
	defer l.Close()
	var lines []string
	for l.Next() {
		lines = append(lines, l.Text())
	}
	return lines, l.Err()
}

// WriteTo streams the decompressed contents to w, one line per Text
// plus a newline, and closes l.
func (l *Lines) WriteTo(w io.Writer) (int64, error) {
	defer l.Close()
	var total int64
	for l.Next() {
		n, err := fmt.Fprintln(w, l.Text())
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, l.Err()
}

// BlockedHosts opens the blocked hosts list, one host per line.
func BlockedHosts(opts ...OpenOption) (*Lines, error) {
	return Open(BlockedHostsFile, opts...)
}

// EasyList opens the EasyList adblock filter rules.
func EasyList(opts ...OpenOption) (*Lines, error) {
	return Open(EasyListFile, opts...)
}

// EasyPrivacy opens the EasyPrivacy adblock filter rules.
func EasyPrivacy(opts ...OpenOption) (*Lines, error) {
	return Open(EasyPrivacyFile, opts...)
}

// AdblockTSV opens the tab-separated adblock match cases.
func AdblockTSV(opts ...OpenOption) (*Lines, error) {
	return Open(AdblockTSVFile, opts...)
}
