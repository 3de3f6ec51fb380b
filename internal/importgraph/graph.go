// Package importgraph is the explicit dependency graph of SupDef input
// units and their #pragma supdef import edges, used by the import
// resolver to detect and report cycles — resolving the open question
// left in spec.md §9 ("implementers must add a visited set and fail
// Cycle").
//
// Adapted from the teacher assembler's v0/kasm/dependency_graph package
// (Instance/DependencyGraphNode/DependencyGraphEdge, DFS-based Acyclic/
// CyclePath): same node-and-edge shape and DFS cycle search, generalised
// from %include-only .kasm dependencies to SupDef's canonical-path import
// tree, and extended with an incremental AddEdge that reports the exact
// cycle path at the moment a cycle would be introduced (rather than only
// after the whole graph is built).
package importgraph

import (
	"sort"
	"strings"
)

// Node is one input unit in the import graph, identified by its
// canonical path.
type Node struct {
	path  string
	edges []*Node
}

// Path returns the node's canonical path.
func (n *Node) Path() string { return n.path }

// Graph is a directed graph of import edges between canonical unit paths.
type Graph struct {
	nodes map[string]*Node
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{nodes: make(map[string]*Node)}
}

// Node returns the node for path, creating it if absent.
func (g *Graph) Node(path string) *Node {
	if n, ok := g.nodes[path]; ok {
		return n
	}
	n := &Node{path: path}
	g.nodes[path] = n
	return n
}

// AddEdge records that the unit at fromPath imports the unit at toPath.
// If doing so would close a cycle reachable back to fromPath, it returns
// the cycle path (from -> ... -> from) and does not add the edge.
func (g *Graph) AddEdge(fromPath, toPath string) (cycle []string, ok bool) {
	from := g.Node(fromPath)
	to := g.Node(toPath)

	if path := g.pathBetween(toPath, fromPath); path != nil {
		full := append([]string{fromPath}, path...)
		return full, false
	}

	from.edges = append(from.edges, to)
	return nil, true
}

// pathBetween returns a path of canonical paths from start to end
// following edges, or nil if end is unreachable from start.
func (g *Graph) pathBetween(start, end string) []string {
	visited := make(map[string]bool)
	var dfs func(path string, trail []string) []string
	dfs = func(path string, trail []string) []string {
		if visited[path] {
			return nil
		}
		visited[path] = true
		trail = append(trail, path)
		if path == end {
			return trail
		}
		node, ok := g.nodes[path]
		if !ok {
			return nil
		}
		for _, e := range node.edges {
			if found := dfs(e.path, trail); found != nil {
				return found
			}
		}
		return nil
	}
	return dfs(start, nil)
}

// Acyclic reports whether the graph, as built so far, contains no cycles.
func (g *Graph) Acyclic() bool {
	visited := make(map[string]bool, len(g.nodes))
	recStack := make(map[string]bool, len(g.nodes))

	names := g.sortedNames()
	for _, name := range names {
		if !visited[name] {
			if g.cyclic(name, visited, recStack) {
				return false
			}
		}
	}
	return true
}

func (g *Graph) cyclic(name string, visited, recStack map[string]bool) bool {
	visited[name] = true
	recStack[name] = true
	for _, e := range g.nodes[name].edges {
		if recStack[e.path] {
			return true
		}
		if !visited[e.path] && g.cyclic(e.path, visited, recStack) {
			return true
		}
	}
	recStack[name] = false
	return false
}

func (g *Graph) sortedNames() []string {
	names := make([]string, 0, len(g.nodes))
	for name := range g.nodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String renders the graph as an arrow-joined listing of edges, sorted
// for determinism, in the same spirit as the teacher's tree-style
// Instance.String().
func (g *Graph) String() string {
	names := g.sortedNames()
	var sb strings.Builder
	for _, name := range names {
		node := g.nodes[name]
		for _, e := range node.edges {
			sb.WriteString(name)
			sb.WriteString(" -> ")
			sb.WriteString(e.path)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
