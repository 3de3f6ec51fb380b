package unit_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/keurnel/supdef/internal/supdeferrors"
	"github.com/keurnel/supdef/internal/unit"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func TestLoad_SingleUnitNoImports(t *testing.T) {
	dir := t.TempDir()
	root := writeFile(t, dir, "root.sd", "#pragma supdef begin GREET\nHello, $1!\n#pragma supdef end\nGREET(world)\n")

	u, err := unit.Load(root, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(u.Pragmas) != 1 || u.Pragmas[0].Name != "GREET" {
		t.Errorf("unexpected pragmas: %+v", u.Pragmas)
	}
	if len(u.Children) != 0 {
		t.Errorf("expected no children, got %d", len(u.Children))
	}
}

func TestLoad_ImportFallbackToSameDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "common.sd", "#pragma supdef begin X\nbody\n#pragma supdef end\n")
	root := writeFile(t, dir, "root.sd", "#pragma supdef import <common.sd>\n")

	u, err := unit.Load(root, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(u.Children) != 1 || u.Children[0].Pragmas[0].Name != "X" {
		t.Fatalf("unexpected children: %+v", u.Children)
	}
}

func TestLoad_ImportNotFound(t *testing.T) {
	dir := t.TempDir()
	root := writeFile(t, dir, "root.sd", "#pragma supdef import <missing.sd>\n")

	_, err := unit.Load(root, nil)
	var nf *supdeferrors.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestLoad_ImportAmbiguousAcrossSearchPaths(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()
	root := t.TempDir()
	writeFile(t, dirA, "file.sd", "#pragma supdef begin A\nbody\n#pragma supdef end\n")
	writeFile(t, dirB, "file.sd", "#pragma supdef begin B\nbody\n#pragma supdef end\n")
	rootFile := writeFile(t, root, "root.sd", "#pragma supdef import <file.sd>\n")

	_, err := unit.Load(rootFile, []string{dirA, dirB})
	var amb *supdeferrors.AmbiguousError
	if !errors.As(err, &amb) {
		t.Fatalf("expected AmbiguousError, got %v", err)
	}
}

func TestLoad_ImportResolvesWithSingleSearchPath(t *testing.T) {
	dirA := t.TempDir()
	root := t.TempDir()
	writeFile(t, dirA, "file.sd", "#pragma supdef begin A\nbody\n#pragma supdef end\n")
	rootFile := writeFile(t, root, "root.sd", "#pragma supdef import <file.sd>\n")

	u, err := unit.Load(rootFile, []string{dirA})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(u.Children) != 1 || u.Children[0].Pragmas[0].Name != "A" {
		t.Fatalf("unexpected children: %+v", u.Children)
	}
}

func TestLoad_ImportCycleFails(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.sd")
	b := filepath.Join(dir, "b.sd")
	writeFile(t, dir, "a.sd", "#pragma supdef import <b.sd>\n")
	writeFile(t, dir, "b.sd", "#pragma supdef import <a.sd>\n")

	_, err := unit.Load(a, nil)
	var cyc *supdeferrors.CycleError
	if !errors.As(err, &cyc) {
		t.Fatalf("expected CycleError, got %v", err)
	}
	_ = b
}

func TestLoad_DiamondImportIsNotACycle(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "shared.sd", "#pragma supdef begin SHARED\nbody\n#pragma supdef end\n")
	writeFile(t, dir, "a.sd", "#pragma supdef import <shared.sd>\n")
	writeFile(t, dir, "b.sd", "#pragma supdef import <shared.sd>\n")
	root := writeFile(t, dir, "root.sd", "#pragma supdef import <a.sd>\n#pragma supdef import <b.sd>\n")

	u, err := unit.Load(root, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(u.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(u.Children))
	}
}
