package registry_test

import (
	"testing"

	"github.com/keurnel/supdef/internal/pragma"
	"github.com/keurnel/supdef/internal/registry"
	"github.com/keurnel/supdef/internal/unit"
)

func TestBuild_FirstDeclarationWins(t *testing.T) {
	child := &unit.InputUnit{
		Path: "child.sd",
		Pragmas: []pragma.Pragma{
			{Kind: pragma.Define, Name: "GREET", Body: "child version"},
		},
	}
	root := &unit.InputUnit{
		Path: "root.sd",
		Pragmas: []pragma.Pragma{
			{Kind: pragma.Define, Name: "GREET", Body: "root version"},
			{Kind: pragma.Import, Name: "child.sd"},
		},
		Children: []*unit.InputUnit{child},
	}

	r := registry.Build(root)
	p, ok := r.Lookup("GREET")
	if !ok {
		t.Fatal("expected GREET to be registered")
	}
	if p.Body != "root version" {
		t.Errorf("expected first declaration (root) to win, got %q", p.Body)
	}
}

func TestBuild_ChildOnlyMacroIsVisible(t *testing.T) {
	child := &unit.InputUnit{
		Path: "child.sd",
		Pragmas: []pragma.Pragma{
			{Kind: pragma.Runnable, Name: "RUN", Body: "int main(){return 0;}"},
		},
	}
	root := &unit.InputUnit{
		Path:     "root.sd",
		Children: []*unit.InputUnit{child},
	}

	r := registry.Build(root)
	if !r.Has("RUN") {
		t.Fatal("expected RUN to be registered from child unit")
	}
}

func TestBuild_ImportPragmasNotRegistered(t *testing.T) {
	root := &unit.InputUnit{
		Path: "root.sd",
		Pragmas: []pragma.Pragma{
			{Kind: pragma.Import, Name: "child.sd"},
		},
	}
	r := registry.Build(root)
	if r.Has("child.sd") {
		t.Fatal("import pragmas must not be registered as macros")
	}
}
