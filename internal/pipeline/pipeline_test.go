package pipeline_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/keurnel/supdef/internal/config"
	"github.com/keurnel/supdef/internal/pipeline"
	"github.com/keurnel/supdef/internal/supdeferrors"
)

func write(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func baseConfig(t *testing.T, searchPaths []string) config.Config {
	t.Helper()
	cfg, err := config.New(config.Params{SearchPaths: searchPaths}, func(string) bool { return true })
	if err != nil {
		t.Fatalf("building config: %v", err)
	}
	return cfg
}

func TestRun_S1_Define(t *testing.T) {
	dir := t.TempDir()
	in := write(t, dir, "root.sd", "#pragma supdef begin GREET\nHello, $1!\n#pragma supdef end\nGREET(world)\n")

	out, err := pipeline.Run(baseConfig(t, nil), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "\n\n\nHello, world!\n" {
		t.Errorf("got %q", out)
	}
}

func TestRun_S2_Nested(t *testing.T) {
	dir := t.TempDir()
	in := write(t, dir, "root.sd",
		"#pragma supdef begin ID\n$1\n#pragma supdef end\n"+
			"#pragma supdef begin PAIR\n[$1,$2]\n#pragma supdef end\n"+
			"PAIR(ID(a), ID(b))\n")

	out, err := pipeline.Run(baseConfig(t, nil), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "\n\n\n\n\n\n[a,b]\n" {
		t.Errorf("got %q", out)
	}
}

func TestRun_S5_LiteralSafety(t *testing.T) {
	dir := t.TempDir()
	in := write(t, dir, "root.sd",
		"#pragma supdef begin X\nbody\n#pragma supdef end\n"+
			`const char* s = "X(notacall)"; X(1)`+"\n")

	out, err := pipeline.Run(baseConfig(t, nil), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "\n\n\n" + `const char* s = "X(notacall)"; body` + "\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestRun_S6_ImportAmbiguous(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()
	root := t.TempDir()
	write(t, dirA, "file.sd", "#pragma supdef begin A\nbody\n#pragma supdef end\n")
	write(t, dirB, "file.sd", "#pragma supdef begin B\nbody\n#pragma supdef end\n")
	in := write(t, root, "root.sd", "#pragma supdef import <file.sd>\n")

	_, err := pipeline.Run(baseConfig(t, []string{dirA, dirB}), in)
	var amb *supdeferrors.AmbiguousError
	if !errors.As(err, &amb) {
		t.Fatalf("expected AmbiguousError, got %v", err)
	}
}

func TestRun_S6_ImportSingleSearchPathSucceeds(t *testing.T) {
	dirA := t.TempDir()
	root := t.TempDir()
	write(t, dirA, "file.sd", "#pragma supdef begin A\nbody\n#pragma supdef end\n")
	in := write(t, root, "root.sd", "#pragma supdef import <file.sd>\nA(1)\n")

	out, err := pipeline.Run(baseConfig(t, []string{dirA}), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "\nbody\n" {
		t.Errorf("got %q", out)
	}
}
