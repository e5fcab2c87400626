package seeder

import (
	"testing"

	"github.com/semegn19/life-saving-connector/internal/models"
)

func refField(name, target string) models.FieldDescriptor {
	return models.FieldDescriptor{Name: name, Kind: models.ObjectRef, Ref: target}
}

func TestBuildDependencyGraphEmpty(t *testing.T) {
	if _, err := BuildDependencyGraph(nil); err == nil {
		t.Error("Expected error for empty entity set")
	}
}

func TestBuildDependencyGraphIgnoresSelfAndUnknownRefs(t *testing.T) {
	entities := []models.EntityDescriptor{
		{Name: "Comment", Fields: []models.FieldDescriptor{
			refField("parentId", "Comment"),
			refField("authorId", "Ghost"),
			{Name: "resourceId", Kind: models.ObjectRef},
			{Name: "body", Kind: models.String},
		}},
	}

	g, err := BuildDependencyGraph(entities)
	if err != nil {
		t.Fatalf("BuildDependencyGraph failed: %v", err)
	}

	if len(g.Dependencies("Comment")) != 0 {
		t.Errorf("Expected no dependencies, got %v", g.Dependencies("Comment"))
	}
}

func TestInsertionOrderAcyclic(t *testing.T) {
	// Declared deliberately in reverse dependency order
	entities := []models.EntityDescriptor{
		{Name: "Opportunity", Fields: []models.FieldDescriptor{refField("organizationId", "Organization")}},
		{Name: "Organization", Fields: []models.FieldDescriptor{
			{Name: "adminUsers", Kind: models.ArrayOfObjectRef, Ref: "User"},
		}},
		{Name: "User"},
	}

	g, err := BuildDependencyGraph(entities)
	if err != nil {
		t.Fatalf("BuildDependencyGraph failed: %v", err)
	}

	order := g.InsertionOrder()
	expected := []string{"User", "Organization", "Opportunity"}
	if len(order) != len(expected) {
		t.Fatalf("Expected %d entities in plan, got %d", len(expected), len(order))
	}
	for i, name := range expected {
		if order[i] != name {
			t.Errorf("Expected %s at position %d, got %s", name, i, order[i])
		}
	}
}

func TestInsertionOrderPlacesEntitiesAfterDependencies(t *testing.T) {
	entities := []models.EntityDescriptor{
		{Name: "D", Fields: []models.FieldDescriptor{refField("c", "C"), refField("a", "A")}},
		{Name: "C", Fields: []models.FieldDescriptor{refField("b", "B")}},
		{Name: "B", Fields: []models.FieldDescriptor{refField("a", "A")}},
		{Name: "A"},
	}

	g, err := BuildDependencyGraph(entities)
	if err != nil {
		t.Fatalf("BuildDependencyGraph failed: %v", err)
	}

	order := g.InsertionOrder()
	position := make(map[string]int, len(order))
	for i, name := range order {
		position[name] = i
	}

	for _, e := range entities {
		for dep := range g.Dependencies(e.Name) {
			if position[dep] > position[e.Name] {
				t.Errorf("%s placed before its dependency %s: %v", e.Name, dep, order)
			}
		}
	}
}

func TestInsertionOrderCycleTerminates(t *testing.T) {
	entities := []models.EntityDescriptor{
		{Name: "A", Fields: []models.FieldDescriptor{refField("b", "B")}},
		{Name: "B", Fields: []models.FieldDescriptor{refField("a", "A")}},
		{Name: "C"},
	}

	g, err := BuildDependencyGraph(entities)
	if err != nil {
		t.Fatalf("BuildDependencyGraph failed: %v", err)
	}

	order := g.InsertionOrder()
	expected := []string{"C", "A", "B"}
	if len(order) != len(expected) {
		t.Fatalf("Expected %d entities in plan, got %d: %v", len(expected), len(order), order)
	}
	for i, name := range expected {
		if order[i] != name {
			t.Errorf("Expected %s at position %d, got %s", name, i, order[i])
		}
	}
}

func TestInsertionOrderIsPermutationOfRegistry(t *testing.T) {
	entities := models.Registry()

	g, err := BuildDependencyGraph(entities)
	if err != nil {
		t.Fatalf("BuildDependencyGraph failed: %v", err)
	}

	order := g.InsertionOrder()
	if len(order) != len(entities) {
		t.Fatalf("Plan has %d entities, registry has %d", len(order), len(entities))
	}

	seen := make(map[string]bool, len(order))
	for _, name := range order {
		if seen[name] {
			t.Errorf("Entity %s scheduled twice", name)
		}
		seen[name] = true
	}
	for _, e := range entities {
		if !seen[e.Name] {
			t.Errorf("Entity %s missing from plan", e.Name)
		}
	}
}

func TestInsertionOrderDeterministic(t *testing.T) {
	for run := 0; run < 10; run++ {
		g1, err := BuildDependencyGraph(models.Registry())
		if err != nil {
			t.Fatalf("BuildDependencyGraph failed: %v", err)
		}
		g2, err := BuildDependencyGraph(models.Registry())
		if err != nil {
			t.Fatalf("BuildDependencyGraph failed: %v", err)
		}

		o1 := g1.InsertionOrder()
		o2 := g2.InsertionOrder()
		for i := range o1 {
			if o1[i] != o2[i] {
				t.Fatalf("Plans differ at position %d: %s vs %s", i, o1[i], o2[i])
			}
		}
	}
}
