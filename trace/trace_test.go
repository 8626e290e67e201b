package trace

import (
	"bytes"
	"testing"
)

func TestPrinterIndent(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	p := New(buf)
	p.Printf("top")
	p.Sub().Printf("one\ntwo")
	p.Sub().Sub().Errorf("bad %d", 7)
	want := "top\n" +
		"|   one\n" +
		"|   two\n" +
		"|   |   | ****** bad 7 ******\n"
	if buf.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestNilPrinter(t *testing.T) {
	var p *Printer
	// all methods are no-ops on nil
	p.Printf("x")
	p.Errorf("y")
	p.Sub().Printf("z")
	if p.BeginGroup("g") {
		t.Error("nil printer opened a group")
	}
	p.EndGroup()
}

func TestGroupMarkers(t *testing.T) {
	if got := GroupBegin("Comparison"); got != "::group::Comparison" {
		t.Errorf("got %q", got)
	}
	if got := GroupEnd(); got != "::endgroup::" {
		t.Errorf("got %q", got)
	}
}

func TestBeginGroupOffCI(t *testing.T) {
	t.Setenv("CI", "")
	buf := bytes.NewBuffer(nil)
	p := New(buf)
	if p.BeginGroup("g") {
		t.Error("group opened off CI")
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestBeginGroupOnCI(t *testing.T) {
	t.Setenv("CI", "true")
	buf := bytes.NewBuffer(nil)
	p := New(buf)
	if !p.BeginGroup("g") {
		t.Error("group not opened on CI")
	}
	p.EndGroup()
	want := "::group::g\n::endgroup::\n"
	if buf.String() != want {
		t.Errorf("got %q", buf.String())
	}
}
