package cmd_test

import (
	"encoding/json"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaPrintsJSONSchema(t *testing.T) {
	t.Parallel()

	out, err := execute(t, afero.NewMemMapFs(), "schema")

	require.NoError(t, err)
	require.True(t, json.Valid([]byte(out)))
	assert.Contains(t, out, `"title": "fagen Configuration"`)
}

func TestSchemaWritesFile(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()

	out, err := execute(t, fs, "schema", "--output", "schemas/fagen.schema.json")

	require.NoError(t, err)
	assert.Equal(t, "✚ wrote 'schemas/fagen.schema.json'\n", out)

	content, err := afero.ReadFile(fs, "schemas/fagen.schema.json")
	require.NoError(t, err)
	assert.True(t, json.Valid(content))

	out, err = execute(t, fs, "schema", "-o", "schemas/fagen.schema.json")

	require.NoError(t, err)
	assert.Equal(t, "⚠ skipped 'schemas/fagen.schema.json', file exists use --force to overwrite\n", out)

	out, err = execute(t, fs, "schema", "-o", "schemas/fagen.schema.json", "--force")

	require.NoError(t, err)
	assert.Equal(t, "✚ wrote 'schemas/fagen.schema.json'\n", out)
}
