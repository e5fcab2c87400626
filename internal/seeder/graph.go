package seeder

import (
	"fmt"

	"github.com/semegn19/life-saving-connector/internal/models"
)

// DependencyGraph records, per entity, the set of entities it references.
// An edge A→B exists when a field of A holds a reference (direct or through
// an array) to a known entity B other than A itself. References to unknown
// targets are opaque identifiers, not schedulable dependencies.
type DependencyGraph struct {
	declared []string
	deps     map[string]map[string]bool
}

func BuildDependencyGraph(entities []models.EntityDescriptor) (*DependencyGraph, error) {
	if len(entities) == 0 {
		return nil, fmt.Errorf("cannot build dependency graph: empty entity set")
	}

	known := make(map[string]bool, len(entities))
	for _, e := range entities {
		known[e.Name] = true
	}

	g := &DependencyGraph{
		deps: make(map[string]map[string]bool, len(entities)),
	}

	for _, e := range entities {
		set := make(map[string]bool)
		for _, f := range e.Fields {
			if f.Kind != models.ObjectRef && f.Kind != models.ArrayOfObjectRef {
				continue
			}
			if f.Ref == "" || f.Ref == e.Name || !known[f.Ref] {
				continue
			}
			set[f.Ref] = true
		}
		g.declared = append(g.declared, e.Name)
		g.deps[e.Name] = set
	}

	return g, nil
}

// Dependencies returns the entities the named entity references.
func (g *DependencyGraph) Dependencies(entity string) map[string]bool {
	return g.deps[entity]
}

// InsertionOrder computes the seed plan with Kahn's algorithm: entities with
// no unsatisfied dependencies are scheduled first, and scheduling an entity
// releases the entities depending on it. Entities left unplaced by cycles
// are appended in declaration order — the plan always contains every entity
// exactly once and the computation always terminates. Referential existence
// inside cyclic subgraphs is handled later by minting placeholder
// identifiers, never by waiting here.
func (g *DependencyGraph) InsertionOrder() []string {
	inDegree := make(map[string]int, len(g.declared))
	dependents := make(map[string][]string, len(g.declared))

	for _, name := range g.declared {
		inDegree[name] = len(g.deps[name])
	}
	for _, name := range g.declared {
		for dep := range g.deps[name] {
			dependents[dep] = append(dependents[dep], name)
		}
	}

	var queue []string
	for _, name := range g.declared {
		if inDegree[name] == 0 {
			queue = append(queue, name)
		}
	}

	order := make([]string, 0, len(g.declared))
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		order = append(order, name)

		for _, dependent := range dependents[name] {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				queue = append(queue, dependent)
			}
		}
	}

	// Cycles leave entities unplaced; append them in declaration order
	if len(order) != len(g.declared) {
		placed := make(map[string]bool, len(order))
		for _, name := range order {
			placed[name] = true
		}
		for _, name := range g.declared {
			if !placed[name] {
				order = append(order, name)
			}
		}
	}

	return order
}
