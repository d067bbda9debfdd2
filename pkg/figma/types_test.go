package figma

import "testing"

func TestNodePredicates(t *testing.T) {
	fontSize := func(size float64) *TypeStyle { return &TypeStyle{FontSize: size} }

	tests := []struct {
		name        string
		node        Node
		leaf        bool
		text        bool
		image       bool
		interactive bool
		heading     bool
	}{
		{
			name: "plain frame with child",
			node: Node{Type: NodeFrame, Name: "Hero Section", Children: []Node{{Type: NodeText}}},
		},
		{
			name: "leaf rectangle",
			node: Node{Type: NodeRectangle, Name: "Divider"},
			leaf: true,
		},
		{
			name:  "rectangle with image fill",
			node:  Node{Type: NodeRectangle, Name: "Photo", Fills: []Paint{{Type: "IMAGE", ImageRef: "abc"}}},
			leaf:  true,
			image: true,
		},
		{
			name: "solid fill is not an image",
			node: Node{Type: NodeRectangle, Name: "Card", Fills: []Paint{{Type: "SOLID", Color: &Color{R: 1, A: 1}}}},
			leaf: true,
		},
		{
			name:        "button by name, case-insensitive",
			node:        Node{Type: NodeFrame, Name: "Submit BUTTON"},
			leaf:        true,
			interactive: true,
		},
		{
			name:        "link keyword inside name",
			node:        Node{Type: NodeText, Name: "footer-link-home"},
			leaf:        true,
			text:        true,
			interactive: true,
		},
		{
			name:    "heading by name keyword",
			node:    Node{Type: NodeText, Name: "Page Title", Style: fontSize(14)},
			leaf:    true,
			text:    true,
			heading: true,
		},
		{
			name:    "heading by font size",
			node:    Node{Type: NodeText, Name: "Plain text", Style: fontSize(28)},
			leaf:    true,
			text:    true,
			heading: true,
		},
		{
			name: "boundary font size is not a heading",
			node: Node{Type: NodeText, Name: "Plain text", Style: fontSize(20)},
			leaf: true,
			text: true,
		},
		{
			name: "non-text node named header is not a heading",
			node: Node{Type: NodeFrame, Name: "Header"},
			leaf: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.IsLeaf(); got != tt.leaf {
				t.Errorf("IsLeaf() = %v, want %v", got, tt.leaf)
			}
			if got := tt.node.IsText(); got != tt.text {
				t.Errorf("IsText() = %v, want %v", got, tt.text)
			}
			if got := tt.node.IsImage(); got != tt.image {
				t.Errorf("IsImage() = %v, want %v", got, tt.image)
			}
			if got := tt.node.IsInteractive(); got != tt.interactive {
				t.Errorf("IsInteractive() = %v, want %v", got, tt.interactive)
			}
			if got := tt.node.IsHeading(); got != tt.heading {
				t.Errorf("IsHeading() = %v, want %v", got, tt.heading)
			}
		})
	}
}

func TestFindByID(t *testing.T) {
	root := Node{
		ID: "0:0",
		Children: []Node{
			{ID: "1:1", Children: []Node{{ID: "2:1"}, {ID: "2:2"}}},
			{ID: "1:2", Children: []Node{{ID: "2:2", Name: "shadowed"}}},
		},
	}

	if got := root.FindByID("2:1"); got == nil || got.ID != "2:1" {
		t.Fatalf("FindByID(2:1) = %v, want node 2:1", got)
	}
	// Pre-order: the first 2:2 wins, not the one under 1:2.
	if got := root.FindByID("2:2"); got == nil || got.Name == "shadowed" {
		t.Fatalf("FindByID(2:2) should return the first pre-order match")
	}
	if got := root.FindByID("9:9"); got != nil {
		t.Fatalf("FindByID(9:9) = %v, want nil", got)
	}
}
