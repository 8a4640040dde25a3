/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolver analyzes how entries of a color mapping feed into each
// other when a rewrite is applied more than once.
package resolver

import (
	"fmt"
	"maps"
	"slices"

	"bennypowers.dev/recolor/palette"
	"bennypowers.dev/recolor/parser"
	"bennypowers.dev/recolor/remap"
)

// DependencyGraph is a directed graph over mapping keys. An edge from a to b
// means a second rewrite pass would remap a's target using entry b.
type DependencyGraph struct {
	dependencies map[string][]string
	dependents   map[string][]string
	nodes        map[string]bool
}

// BuildDependencyGraph builds the graph for m.
func BuildDependencyGraph(m remap.Mapping) *DependencyGraph {
	graph := &DependencyGraph{
		dependencies: make(map[string][]string),
		dependents:   make(map[string][]string),
		nodes:        make(map[string]bool),
	}

	for key := range m {
		graph.nodes[key] = true
	}

	keys := slices.Sorted(maps.Keys(m))
	for _, key := range keys {
		// an entry that maps to itself rewrites nothing
		deps := slices.DeleteFunc(nextEntries(m, keys, m[key]), func(dep string) bool { return dep == key })
		if len(deps) == 0 {
			continue
		}
		graph.dependencies[key] = deps
		for _, dep := range deps {
			graph.dependents[dep] = append(graph.dependents[dep], key)
		}
	}

	return graph
}

// nextEntries returns the keys of m that could rewrite target on a second
// pass. An exact or family entry decides alone, as in the resolution ladder;
// a bare color name also reaches every shade entry of that family.
func nextEntries(m remap.Mapping, keys []string, target string) []string {
	candidates := []string{target}
	if tok, ok := parser.Classify(target); ok {
		candidates = append(candidates, tok.Color)
		if tok.HasShade() {
			candidates = append(candidates, tok.Color+"-"+tok.Shade)
		}
	} else if family, _, ok := palette.SplitShade(target); ok {
		candidates = append(candidates, family)
	}

	for _, c := range candidates {
		if m[c] != "" {
			return []string{c}
		}
	}

	if !palette.IsFamily(target) {
		return nil
	}
	var deps []string
	for _, key := range keys {
		if family, _, ok := palette.SplitShade(key); ok && family == target && m[key] != "" {
			deps = append(deps, key)
		}
	}
	return deps
}

// Dependencies returns the entries that would rewrite key's target.
func (g *DependencyGraph) Dependencies(key string) []string {
	if deps, ok := g.dependencies[key]; ok {
		return deps
	}
	return []string{}
}

// IsIdempotent reports whether rewriting twice gives the same result as
// rewriting once, which holds exactly when the graph has no edges.
func (g *DependencyGraph) IsIdempotent() bool {
	return len(g.dependencies) == 0
}

// HasCycle returns true if the graph contains a cycle.
func (g *DependencyGraph) HasCycle() bool {
	return g.FindCycle() != nil
}

// FindCycle returns the cycle path if one exists, or nil if no cycle.
// Nodes are visited in sorted order so the result is deterministic.
func (g *DependencyGraph) FindCycle() []string {
	visited := make(map[string]bool)
	recStack := make(map[string]bool)

	for _, node := range g.sortedNodes() {
		if cycle := g.findCycleDFS(node, visited, recStack, nil); cycle != nil {
			return cycle
		}
	}
	return nil
}

func (g *DependencyGraph) findCycleDFS(node string, visited, recStack map[string]bool, path []string) []string {
	if recStack[node] {
		start := slices.Index(path, node)
		if start == -1 {
			panic(fmt.Sprintf("cycle detection invariant violated: node %q in recStack but not in path %v", node, path))
		}
		return append(slices.Clone(path[start:]), node)
	}
	if visited[node] {
		return nil
	}

	visited[node] = true
	recStack[node] = true
	path = append(path, node)

	for _, dep := range g.dependencies[node] {
		if cycle := g.findCycleDFS(dep, visited, recStack, path); cycle != nil {
			return cycle
		}
	}

	recStack[node] = false
	return nil
}

// Chains returns every maximal chain of two or more entries, starting from
// entries no other entry leads to. Entries on a cycle are reported by
// FindCycle instead.
func (g *DependencyGraph) Chains() [][]string {
	var chains [][]string
	for _, node := range g.sortedNodes() {
		if len(g.dependents[node]) > 0 || len(g.dependencies[node]) == 0 {
			continue
		}
		chain := []string{node}
		seen := map[string]bool{node: true}
		for cur := node; len(g.Dependencies(cur)) > 0; {
			cur = g.Dependencies(cur)[0]
			if seen[cur] {
				break
			}
			seen[cur] = true
			chain = append(chain, cur)
		}
		chains = append(chains, chain)
	}
	return chains
}

func (g *DependencyGraph) sortedNodes() []string {
	return slices.Sorted(maps.Keys(g.nodes))
}
