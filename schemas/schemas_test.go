package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/candidate-assessor/internal/schemas"
)

var schemaFiles = []string{
	"candidate.schema.json",
	"job_posting.schema.json",
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			schemaPath := filepath.Join(".", schemaFile)
			data, err := os.ReadFile(schemaPath)
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestSchemaFiles_ValidJSONSchema(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			schemaPath := filepath.Join(".", schemaFile)
			data, err := os.ReadFile(schemaPath)
			require.NoError(t, err)

			var schemaObj map[string]interface{}
			err = json.Unmarshal(data, &schemaObj)
			require.NoError(t, err)

			// Check for required JSON Schema fields
			_, hasType := schemaObj["type"]
			_, hasSchema := schemaObj["$schema"]
			_, hasProps := schemaObj["properties"]

			assert.True(t, hasType && hasSchema && hasProps,
				"schema should declare type, $schema, and properties")
		})
	}
}

func TestJobPostingSchema_AcceptsMinimalPosting(t *testing.T) {
	data, err := os.ReadFile("job_posting.schema.json")
	require.NoError(t, err)

	err = schemas.ValidateJSONString(string(data), `{"position_title": "Administrative Aide"}`)
	assert.NoError(t, err)
}

func TestJobPostingSchema_RejectsMissingTitle(t *testing.T) {
	data, err := os.ReadFile("job_posting.schema.json")
	require.NoError(t, err)

	err = schemas.ValidateJSONString(string(data), `{"department": "Registrar"}`)
	require.Error(t, err)

	_, ok := err.(*schemas.ValidationError)
	assert.True(t, ok, "error should be ValidationError type")
}

func TestCandidateSchema_AcceptsFullRecord(t *testing.T) {
	data, err := os.ReadFile("candidate.schema.json")
	require.NoError(t, err)

	record := `{
		"id": "cand-001",
		"name": "Maria Santos",
		"education": [
			{"level": "Graduate Studies", "degree": "Master of Science in Mathematics"}
		],
		"experience": [
			{"position": "Instructor", "company": "City College", "from": "2015-06-01", "to": "present"}
		],
		"training": [
			{"title": "Outcomes-Based Education Workshop", "hours": "24"}
		],
		"eligibility": [
			{"name": "RA 1080 (Teacher Board Exam)", "rating": "85.2"}
		],
		"awards": ["Cum Laude"]
	}`

	err = schemas.ValidateJSONString(string(data), record)
	assert.NoError(t, err)
}
