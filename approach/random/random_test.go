package random

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApproach_ZeroProbabilityEmitsNothing(t *testing.T) {
	a := New()
	ctx := context.Background()
	require.NoError(t, a.Initialize(ctx, map[string]interface{}{"randomTypeProbability": 0}))

	predictions, err := a.Predict(ctx, "const count = 5;\nlet name = 'x';\n", "case.js")
	require.NoError(t, err)
	assert.Empty(t, predictions)
	require.NoError(t, a.Dispose(ctx))
}

func TestApproach_FullProbabilitySingleType(t *testing.T) {
	a := New()
	ctx := context.Background()
	config := map[string]interface{}{
		"availableTypes":        []interface{}{"number"},
		"randomTypeProbability": 1,
		"seed":                  42,
		"unrecognizedOption":    true,
	}
	require.NoError(t, a.Initialize(ctx, config))

	predictions, err := a.Predict(ctx, "const count = 5;", "case.js")
	require.NoError(t, err)
	require.Len(t, predictions, 1)

	prediction := predictions[0]
	assert.Equal(t, "count", prediction.Identifier)
	assert.Equal(t, "number", prediction.Type)
	assert.Equal(t, 1, prediction.Line)
	assert.Equal(t, 6, prediction.Column)
	assert.Equal(t, "global", prediction.Context.ScopePath)
	assert.Equal(t, "variable-declaration", prediction.Context.Syntactic)
	assert.Equal(t, []string{"likely-number"}, prediction.Context.SemanticHints)
}

func TestApproach_DeterministicUnderFixedConfig(t *testing.T) {
	source := `function add(a, b) {
  return a;
}
const items = [];
`
	ctx := context.Background()
	config := map[string]interface{}{
		"availableTypes":        []interface{}{"number"},
		"randomTypeProbability": 1,
	}

	a := New()
	require.NoError(t, a.Initialize(ctx, config))
	first, err := a.Predict(ctx, source, "case.js")
	require.NoError(t, err)

	require.NoError(t, a.Initialize(ctx, config))
	second, err := a.Predict(ctx, source, "case.js")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}

func TestApproach_MalformedSourceReturnsPartial(t *testing.T) {
	a := New()
	ctx := context.Background()
	require.NoError(t, a.Initialize(ctx, map[string]interface{}{"randomTypeProbability": 1}))

	predictions, err := a.Predict(ctx, "function ((( {", "broken.js")
	assert.NoError(t, err, "malformed source must not fail predict")
	_ = predictions
}

func TestApproach_MissingKeysKeepDefaults(t *testing.T) {
	a := New()
	ctx := context.Background()
	require.NoError(t, a.Initialize(ctx, nil))
	assert.Equal(t, DefaultTypes, a.availableTypes)
	assert.Equal(t, DefaultProbability, a.probability)
}
