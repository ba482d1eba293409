package predict

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// SyntacticContext labels how an identifier occurrence is used, chosen by the
// first matching rule in a fixed priority order: assignment target, variable
// declaration, parameter, member access, call expression, return statement.
// When no rule matches, the parent node's own kind name is the label.
func SyntacticContext(n *sitter.Node) string {
	parent := n.Parent()
	if parent == nil {
		return "unknown"
	}
	switch parent.Type() {
	case "assignment_expression", "augmented_assignment_expression":
		if isField(parent, n, "left") {
			return "assignment"
		}
	case "variable_declarator":
		if isField(parent, n, "name") {
			return "variable-declaration"
		}
	case "formal_parameters", "required_parameter", "optional_parameter":
		return "parameter"
	case "member_expression":
		return "member-access"
	case "call_expression":
		return "function-call"
	case "return_statement":
		return "return"
	}
	return parent.Type()
}

var hintRules = []struct {
	hint       string
	substrings []string
	prefixes   []string
}{
	{hint: "likely-number", substrings: []string{"count", "length", "size", "index", "total", "num"}},
	{hint: "likely-string", substrings: []string{"name", "title", "text", "message", "label"}},
	{hint: "likely-boolean", prefixes: []string{"is", "has", "can", "should"}},
	{hint: "likely-array", substrings: []string{"list", "array", "items"}},
}

// SemanticHints derives heuristic type-category guesses from substring cues in
// an identifier's name. Zero, one, or several hints may apply; this is a
// best-effort heuristic, not a classifier.
func SemanticHints(name string) []string {
	lower := strings.ToLower(name)
	var hints []string
	for _, rule := range hintRules {
		matched := false
		for _, sub := range rule.substrings {
			if strings.Contains(lower, sub) {
				matched = true
				break
			}
		}
		if !matched {
			for _, prefix := range rule.prefixes {
				if strings.HasPrefix(lower, prefix) && len(lower) > len(prefix) {
					matched = true
					break
				}
			}
		}
		// plural names lean towards collections
		if !matched && rule.hint == "likely-array" && len(lower) > 3 && strings.HasSuffix(lower, "s") {
			matched = true
		}
		if matched {
			hints = append(hints, rule.hint)
		}
	}
	return hints
}

// isField reports whether child occupies the named field slot of parent.
// Nodes are compared by byte range since tree-sitter hands out fresh wrappers.
func isField(parent, child *sitter.Node, field string) bool {
	slot := parent.ChildByFieldName(field)
	if slot == nil {
		return false
	}
	return slot.StartByte() == child.StartByte() && slot.EndByte() == child.EndByte()
}
