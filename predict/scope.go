package predict

// RootScope is the outermost scope label; the stack never drops below it.
const RootScope = "global"

// ScopeStack models lexical nesting during a single traversal pass. Scopes are
// pushed on entering a structural node (class, function, method, arrow) and
// popped on leaving it. An explicit stack rather than call-implicit scoping so
// iterative traversals work and transitions are testable in isolation.
type ScopeStack struct {
	entries []string
}

// NewScopeStack creates a stack holding only the root scope.
func NewScopeStack() *ScopeStack {
	return &ScopeStack{entries: []string{RootScope}}
}

// Current returns the top of the stack.
func (s *ScopeStack) Current() string {
	return s.entries[len(s.entries)-1]
}

// Enter pushes label as the new current scope.
func (s *ScopeStack) Enter(label string) {
	s.entries = append(s.entries, label)
}

// EnterMember pushes the current scope extended with label, producing
// dotted paths such as "class:Foo.bar" for methods.
func (s *ScopeStack) EnterMember(label string) {
	s.Enter(s.Current() + "." + label)
}

// Exit pops the current scope. Exit on a root-only stack is a no-op, which
// guards against underflow from unbalanced traversal callbacks.
func (s *ScopeStack) Exit() {
	if len(s.entries) > 1 {
		s.entries = s.entries[:len(s.entries)-1]
	}
}

// Depth returns the number of entries including the root scope.
func (s *ScopeStack) Depth() int {
	return len(s.entries)
}
