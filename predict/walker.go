package predict

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
)

// Occurrence is one value-bearing identifier reference found during a walk,
// labelled with its position and the scope it occurs in.
type Occurrence struct {
	Node      *sitter.Node
	Name      string
	Line      int // 1-based
	Column    int // 0-based
	ScopePath string
}

// Walk performs a single depth-first pass over root, maintaining a scope stack
// across class, function, method and arrow-function boundaries, and invokes
// visit for every identifier occurrence that carries a runtime value. Purely
// declarative names (class name, function name, method key, property key,
// import specifiers) are skipped.
func Walk(root *sitter.Node, src []byte, visit func(Occurrence)) {
	scopes := NewScopeStack()
	walk(root, src, scopes, visit)
}

func walk(n *sitter.Node, src []byte, scopes *ScopeStack, visit func(Occurrence)) {
	entered := false
	switch n.Type() {
	case "function_declaration", "function_expression", "function", "generator_function_declaration":
		scopes.Enter("function:" + nodeName(n, src))
		entered = true
	case "class_declaration", "class":
		scopes.Enter("class:" + nodeName(n, src))
		entered = true
	case "method_definition":
		scopes.EnterMember(nodeName(n, src))
		entered = true
	case "arrow_function":
		scopes.Enter(fmt.Sprintf("arrow@L%d", int(n.StartPoint().Row)+1))
		entered = true
	case "identifier":
		if !isDeclarativeName(n) {
			point := n.StartPoint()
			visit(Occurrence{
				Node:      n,
				Name:      n.Content(src),
				Line:      int(point.Row) + 1,
				Column:    int(point.Column),
				ScopePath: scopes.Current(),
			})
		}
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		walk(n.NamedChild(i), src, scopes, visit)
	}
	if entered {
		scopes.Exit()
	}
}

// nodeName resolves the name field of a structural node, falling back to
// "anonymous" for unnamed function or class expressions.
func nodeName(n *sitter.Node, src []byte) string {
	if nameNode := n.ChildByFieldName("name"); nameNode != nil {
		return nameNode.Content(src)
	}
	return "anonymous"
}

// isDeclarativeName reports whether the identifier merely names a declaration
// rather than referencing a value.
func isDeclarativeName(n *sitter.Node) bool {
	parent := n.Parent()
	if parent == nil {
		return false
	}
	switch parent.Type() {
	case "function_declaration", "function_expression", "generator_function_declaration",
		"class_declaration", "class", "method_definition":
		return isField(parent, n, "name")
	case "pair":
		return isField(parent, n, "key")
	case "import_specifier", "namespace_import", "import_clause":
		return true
	case "labeled_statement":
		return isField(parent, n, "label")
	}
	return false
}
