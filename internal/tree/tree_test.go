package tree

import "testing"

func fixture() map[string]interface{} {
	return map[string]interface{}{
		"vendor": "Adobe",
		"id":     "47",
		"partners": []interface{}{
			"Bob", "Sam", "Jane",
		},
		"terms": map[string]interface{}{
			"seats":   25,
			"renewal": "automatic",
			"support": map[string]interface{}{
				"tier": "premium",
			},
		},
		"notes": nil,
	}
}

func findRoot(t *testing.T, m *Model, label string) string {
	t.Helper()
	for _, id := range m.ChildUIDs("") {
		node, ok := m.Node(id)
		if !ok {
			t.Fatalf("missing node for id %s", id)
		}
		if node.Label == label {
			return id
		}
	}
	t.Fatalf("no root node labeled %q", label)
	return ""
}

func TestBuild_Structure(t *testing.T) {
	m := Build(fixture())

	roots := m.ChildUIDs("")
	if len(roots) != 5 {
		t.Fatalf("expected 5 root rows, got %d", len(roots))
	}

	// Sorted key order: id, notes, partners, terms, vendor.
	wantLabels := []string{"id", "notes", "partners:", "terms", "vendor"}
	for i, id := range roots {
		node, _ := m.Node(id)
		if node.Label != wantLabels[i] {
			t.Fatalf("root %d label = %q, want %q", i, node.Label, wantLabels[i])
		}
	}
}

func TestBuild_SequenceChildren(t *testing.T) {
	m := Build(fixture())

	partners := findRoot(t, m, "partners:")
	if !m.IsBranch(partners) {
		t.Fatal("partners should be a branch")
	}

	children := m.ChildUIDs(partners)
	if len(children) != 3 {
		t.Fatalf("expected 3 partner rows, got %d", len(children))
	}
	first, _ := m.Node(children[0])
	if first.Label != "0" || first.Value != `"Bob"` {
		t.Fatalf("first partner row = %q %q", first.Label, first.Value)
	}
}

func TestBuild_NestedMapping(t *testing.T) {
	m := Build(fixture())

	terms := findRoot(t, m, "terms")
	var support string
	for _, id := range m.ChildUIDs(terms) {
		node, _ := m.Node(id)
		if node.Label == "support" {
			support = id
		}
	}
	if support == "" {
		t.Fatal("terms.support branch missing")
	}

	children := m.ChildUIDs(support)
	if len(children) != 1 {
		t.Fatalf("expected 1 support row, got %d", len(children))
	}
	if got := m.Text(children[0]); got != `tier: "premium"` {
		t.Fatalf("support row text = %q", got)
	}
}

func TestBuild_NilRendersAsNone(t *testing.T) {
	m := Build(fixture())

	notes := findRoot(t, m, "notes")
	node, _ := m.Node(notes)
	if node.Branch {
		t.Fatal("nil value should be a leaf")
	}
	if node.Value != `"None"` {
		t.Fatalf("nil value rendered as %q", node.Value)
	}
}

func TestExpandCollapse_Idempotent(t *testing.T) {
	m := Build(fixture())

	branches := len(m.BranchIDs())
	if branches == 0 {
		t.Fatal("fixture should produce branches")
	}

	m.ExpandAll()
	if m.OpenCount() != branches {
		t.Fatalf("expand all opened %d of %d branches", m.OpenCount(), branches)
	}
	m.ExpandAll()
	if m.OpenCount() != branches {
		t.Fatalf("second expand all changed open count to %d", m.OpenCount())
	}

	m.CollapseAll()
	if m.OpenCount() != 0 {
		t.Fatalf("collapse all left %d branches open", m.OpenCount())
	}
	m.CollapseAll()
	if m.OpenCount() != 0 {
		t.Fatalf("second collapse all left %d branches open", m.OpenCount())
	}
}

func TestSetOpen_SingleBranch(t *testing.T) {
	m := Build(fixture())
	terms := findRoot(t, m, "terms")

	if m.IsOpen(terms) {
		t.Fatal("branch should start closed")
	}
	m.SetOpen(terms, true)
	if !m.IsOpen(terms) {
		t.Fatal("branch should be open")
	}
	m.SetOpen(terms, false)
	if m.IsOpen(terms) {
		t.Fatal("branch should be closed again")
	}
}

func TestBuild_EmptyDocument(t *testing.T) {
	m := Build(map[string]interface{}{})
	if len(m.ChildUIDs("")) != 0 {
		t.Fatal("empty document should have no rows")
	}
	if m.Len() != 0 {
		t.Fatalf("empty document node count = %d", m.Len())
	}
}
