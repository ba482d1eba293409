package corpus

// Position locates an identifier occurrence within source text.
// Lines are 1-based, columns 0-based, matching the traversal convention
// used by prediction producers.
type Position struct {
	Line   int `yaml:"line"`
	Column int `yaml:"column"`
}

// GroundTruth is the verified type of one identifier occurrence.
type GroundTruth struct {
	Identifier string   `yaml:"identifier"`          // Identifier name
	Type       string   `yaml:"type"`                // Actual type label
	Position   Position `yaml:"position"`            // Occurrence position
	ScopePath  string   `yaml:"scopePath,omitempty"` // Enclosing scope path, e.g. "class:Foo.bar"
}

// Metadata carries optional classification of a test case.
type Metadata struct {
	Category   string   `yaml:"category,omitempty"`
	Difficulty string   `yaml:"difficulty,omitempty"`
	Tags       []string `yaml:"tags,omitempty"`
}

// TestCase binds source text to its ground-truth identifier types.
// Instances are constructed by a loader and treated as immutable afterwards.
type TestCase struct {
	ID          string        `yaml:"id,omitempty"`
	Name        string        `yaml:"name"`
	FilePath    string        `yaml:"filePath,omitempty"` // Nominal path, drives language selection
	Source      string        `yaml:"source"`
	GroundTruth []GroundTruth `yaml:"groundTruth"`
	Metadata    Metadata      `yaml:"metadata,omitempty"`
	Fingerprint uint64        `yaml:"-"` // Content hash of Source, set by the loader
}

// TypeCount tallies ground-truth entries per actual type label.
func TypeCount(cases []*TestCase) map[string]int {
	counts := make(map[string]int)
	for _, tc := range cases {
		for _, gt := range tc.GroundTruth {
			counts[gt.Type]++
		}
	}
	return counts
}
