package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestReadDoc_RegisteredWithSwag(t *testing.T) {
	doc, err := swag.ReadDoc()
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))
	assert.Equal(t, "3.0.3", parsed["openapi"])
	assert.Contains(t, parsed, "paths")
}
