package runtime

import (
	"testing"

	"github.com/germtb/interop"
)

func panelTree() interop.VNode {
	return interop.Element("div", interop.Props{"className": "panel"},
		interop.Element("h3", nil, interop.Text("Interop from Global Scope")),
		interop.Element("div", interop.Props{"role": "alert"},
			interop.Element("strong", nil, interop.Text("running")),
		),
	)
}

func TestWalkTreeDepthFirst(t *testing.T) {
	type visit struct {
		tag   string
		depth int
	}
	var got []visit
	WalkTree(panelTree(), WalkFunc(func(node interop.VNode, depth int) bool {
		if node.IsIntrinsic() {
			got = append(got, visit{node.Tag(), depth})
		}
		return true
	}))

	want := []visit{{"div", 0}, {"h3", 1}, {"div", 1}, {"strong", 2}}
	if len(got) != len(want) {
		t.Fatalf("visited %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("visit %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestWalkTreeSkipsRejectedSubtrees(t *testing.T) {
	var tags []string
	WalkTree(panelTree(), WalkFunc(func(node interop.VNode, _ int) bool {
		tags = append(tags, node.Tag())
		return node.Props["role"] != "alert"
	}))

	for _, tag := range tags {
		if tag == "strong" {
			t.Errorf("walked into a rejected subtree: %v", tags)
		}
	}
}

func TestCountNodes(t *testing.T) {
	if n := CountNodes(panelTree()); n != 6 {
		t.Errorf("CountNodes = %d, want 6", n)
	}
	if n := CountNodes(interop.Text("x")); n != 1 {
		t.Errorf("CountNodes(text) = %d, want 1", n)
	}
}

func TestRenderFunc(t *testing.T) {
	var gotID string
	var r Renderer = RenderFunc(func(node interop.VNode, mountID string) error {
		gotID = mountID
		return nil
	})

	if err := r.Render(interop.Text("x"), "reverse-global"); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if gotID != "reverse-global" {
		t.Errorf("mountID = %q, want 'reverse-global'", gotID)
	}
}
