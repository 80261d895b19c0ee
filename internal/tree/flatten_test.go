package tree

import "testing"

func TestFlattenPreOrder(t *testing.T) {
	grandchild := &Node{Name: "grandchild"}
	childA := &Node{Name: "childA", Children: []*Node{grandchild}}
	childB := &Node{Name: "childB"}
	rootA := &Node{Name: "rootA", Children: []*Node{childA, childB}}
	rootB := &Node{Name: "rootB"}

	flat := Flatten([]*Node{rootA, rootB})
	want := []*Node{rootA, childA, grandchild, childB, rootB}

	if len(flat) != len(want) {
		t.Fatalf("got %d nodes, want %d", len(flat), len(want))
	}
	for i := range want {
		if flat[i] != want[i] {
			t.Errorf("position %d: got %q, want %q", i, flat[i].Name, want[i].Name)
		}
	}
}

func TestFlattenEmpty(t *testing.T) {
	if flat := Flatten(nil); len(flat) != 0 {
		t.Errorf("flatten of empty forest returned %d nodes", len(flat))
	}
}

func TestFlattenRestartable(t *testing.T) {
	forest := []*Node{{Name: "a", Children: []*Node{{Name: "b"}}}}
	first := Flatten(forest)
	second := Flatten(forest)
	if len(first) != len(second) {
		t.Fatal("repeated flatten changed length")
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("position %d differs across flattens", i)
		}
	}
	// Independent slices: mutating one must not leak into the next run.
	first[0] = nil
	if third := Flatten(forest); third[0] == nil {
		t.Error("flatten returned a shared backing slice")
	}
}

func TestWalkReportsParents(t *testing.T) {
	child := &Node{Name: "child"}
	root := &Node{Name: "root", Children: []*Node{child}}

	parents := map[*Node]*Node{}
	Walk([]*Node{root}, func(node, parent *Node) {
		parents[node] = parent
	})

	if parents[root] != nil {
		t.Error("root should have nil parent")
	}
	if parents[child] != root {
		t.Error("child's parent should be root")
	}
}
