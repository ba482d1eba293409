package predict

// Context bundles the scope and syntactic metadata captured for one
// identifier occurrence during traversal.
type Context struct {
	ScopePath     string   `yaml:"scopePath"`
	Syntactic     string   `yaml:"syntactic"`               // e.g. "assignment", "variable-declaration", "function-call"
	SemanticHints []string `yaml:"semanticHints,omitempty"` // e.g. "likely-number", "likely-string"
	UsagePatterns []string `yaml:"usagePatterns,omitempty"` // e.g. "property-access", "called-with-2-args"
}

// TypePrediction is a producer-emitted guess of an identifier's type at a
// specific source position. Lines are 1-based, columns 0-based.
type TypePrediction struct {
	Identifier string  `yaml:"identifier"`
	Type       string  `yaml:"type"`
	Line       int     `yaml:"line"`
	Column     int     `yaml:"column"`
	Context    Context `yaml:"context"`
}
