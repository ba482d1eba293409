package predict

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// LanguageFor selects a tree-sitter grammar based on file extension.
// Plain JavaScript is the default; the javascript grammar also covers JSX.
func LanguageFor(filePath string) *sitter.Language {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".ts":
		return typescript.GetLanguage()
	case ".tsx":
		return tsx.GetLanguage()
	default:
		return javascript.GetLanguage()
	}
}

// Parse parses source with the grammar selected for filePath. Syntactically
// invalid source still yields a tree with error nodes; callers walk whatever
// parsed.
func Parse(ctx context.Context, src []byte, filePath string) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(LanguageFor(filePath))
	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filePath, err)
	}
	return tree, nil
}
