package unit

import (
	"github.com/keurnel/supdef/internal/importgraph"
	"github.com/keurnel/supdef/internal/pragma"
	"github.com/keurnel/supdef/internal/supdeferrors"
)

// loader carries the state shared across a single Load call's recursive
// descent: the import graph (for cycle rejection) and a cache so a
// diamond-imported file is read and scanned only once, mirroring the
// teacher's includes.go "alreadyIncluded" dedup.
type loader struct {
	graph       *importgraph.Graph
	searchPaths []string
	units       map[string]*InputUnit
}

// Load resolves rootPath and its transitive #pragma supdef import tree
// into a linked InputUnit tree, rejecting any import cycle with
// supdeferrors.CycleError.
func Load(rootPath string, searchPaths []string) (*InputUnit, error) {
	l := &loader{
		graph:       importgraph.New(),
		searchPaths: searchPaths,
		units:       make(map[string]*InputUnit),
	}
	return l.load(rootPath)
}

func (l *loader) load(path string) (*InputUnit, error) {
	canon, err := canonicalize(path)
	if err != nil {
		return nil, err
	}

	if existing, ok := l.units[canon]; ok {
		return existing, nil
	}

	text, pragmas, tracker, err := normalize(canon)
	if err != nil {
		return nil, err
	}

	u := &InputUnit{Path: canon, Text: text, Pragmas: pragmas, Tracker: tracker}
	l.units[canon] = u

	for _, p := range pragmas {
		if p.Kind != pragma.Import {
			continue
		}

		resolved, err := resolveImport(canon, p.Name, l.searchPaths)
		if err != nil {
			return nil, err
		}
		resolvedCanon, err := canonicalize(resolved)
		if err != nil {
			return nil, err
		}

		if cycle, ok := l.graph.AddEdge(canon, resolvedCanon); !ok {
			return nil, &supdeferrors.CycleError{Path: cycle}
		}

		child, err := l.load(resolvedCanon)
		if err != nil {
			return nil, err
		}
		u.Children = append(u.Children, child)
	}

	return u, nil
}
