package formatter

import (
	"fmt"
	"strings"

	"github.com/nbarden/edict/internal/domain"
)

// renderNode is the intermediate form built by the numbering pass: the
// assigned label, the intent, metadata already formatted as lines, and
// children. Layout concerns never touch this pass, which keeps the
// numbering walk testable on its own and the connector pass free of
// counter state.
type renderNode struct {
	label    int
	intent   string
	meta     []string
	children []*renderNode
}

// RenderPrompt renders a validated task prompt as deterministic text.
// It is total: the empty prompt renders to the empty string, and
// re-rendering the same prompt yields byte-identical output.
//
// Labels are assigned globally in pre-order across the whole forest: a
// node is numbered before its subtasks, and its subtasks before the
// next sibling. A prompt that decomposes into exactly one node uses a
// flat indented block; anything larger is drawn as a connector tree in
// which the first node acts as the root and every other node — later
// top-level tasks included — hangs beneath it.
func RenderPrompt(p domain.Prompt) string {
	counter := 0
	forest := make([]*renderNode, 0, len(p.Tasks))
	for _, t := range p.Tasks {
		forest = append(forest, buildNode(t, &counter))
	}

	if counter == 0 {
		return ""
	}

	if counter == 1 {
		n := forest[0]
		lines := []string{fmt.Sprintf("%d. %s", n.label, n.intent)}
		for _, m := range n.meta {
			lines = append(lines, "  "+m)
		}
		return strings.Join(lines, "\n")
	}

	root := forest[0]
	root.children = append(root.children, forest[1:]...)

	var lines []string
	emit(root, "", "", &lines)
	return strings.Join(lines, "\n")
}

// buildNode assigns pre-order labels from a shared counter and formats
// metadata into display lines.
func buildNode(t domain.Task, counter *int) *renderNode {
	*counter++
	n := &renderNode{
		label:  *counter,
		intent: t.Intent,
		meta:   metaLines(t),
	}
	for _, st := range t.Subtasks {
		n.children = append(n.children, buildNode(st, counter))
	}
	return n
}

func metaLines(t domain.Task) []string {
	var lines []string
	if len(t.Targets) > 0 {
		lines = append(lines, "Targets: "+strings.Join(t.Targets, ", "))
	}
	if len(t.Constraints) > 0 {
		lines = append(lines, "Constraints: "+strings.Join(t.Constraints, ", "))
	}
	if t.Context != "" {
		lines = append(lines, "Context: "+t.Context)
	}
	return lines
}

// emit is the layout pass. ownPrefix precedes the node's own line;
// childPrefix precedes every line drawn beneath it (metadata bars, gap
// lines, child connectors). Descendant connectors align under their own
// parent's branch glyph because each child extends childPrefix with
// "│  " or blank padding, never the grandparent's connector.
func emit(n *renderNode, ownPrefix, childPrefix string, out *[]string) {
	label := fmt.Sprintf("%d.", n.label)
	*out = append(*out, fmt.Sprintf("%s%s %s", ownPrefix, label, n.intent))

	for _, m := range n.meta {
		*out = append(*out, childPrefix+"│"+strings.Repeat(" ", len(label))+"> "+m)
	}

	for i, c := range n.children {
		// Gap line before the first child and between siblings.
		*out = append(*out, childPrefix+"│")

		last := i == len(n.children)-1
		conn, cont := "├──", "│  "
		if last {
			conn, cont = "└──", "   "
		}
		if len(c.children) > 0 {
			conn += "┬ "
		} else {
			conn += " "
		}
		emit(c, childPrefix+conn, childPrefix+cont, out)
	}
}
