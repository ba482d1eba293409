package predict

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
)

// maxUsagePatterns caps the labels collected for one identifier; beyond a
// handful they stop adding signal.
const maxUsagePatterns = 8

// UsagePatterns scans the tree for other references to name and labels how the
// identifier is used elsewhere: as a property-access base, as a callee (with
// argument count), or as an assignment target. Labels are deduplicated and
// reported in encounter order.
func UsagePatterns(root *sitter.Node, src []byte, name string) []string {
	var patterns []string
	seen := map[string]bool{}
	add := func(label string) {
		if !seen[label] && len(patterns) < maxUsagePatterns {
			seen[label] = true
			patterns = append(patterns, label)
		}
	}
	stack := []*sitter.Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.Type() == "identifier" && n.Content(src) == name {
			if parent := n.Parent(); parent != nil {
				switch parent.Type() {
				case "member_expression":
					if isField(parent, n, "object") {
						add("property-access")
					}
				case "call_expression":
					if isField(parent, n, "function") {
						argCount := 0
						if args := parent.ChildByFieldName("arguments"); args != nil {
							argCount = int(args.NamedChildCount())
						}
						add(fmt.Sprintf("called-with-%d-args", argCount))
					}
				case "assignment_expression":
					if isField(parent, n, "left") {
						add("assignment-target")
					}
				}
			}
		}
		for i := int(n.NamedChildCount()) - 1; i >= 0; i-- {
			stack = append(stack, n.NamedChild(i))
		}
	}
	return patterns
}
