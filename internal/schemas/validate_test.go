package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestResolveSchemaPath_FindsRepoSchemas(t *testing.T) {
	// Running from internal/schemas, the repo schemas are two levels up
	assert.NotEmpty(t, ResolveSchemaPath(CandidateSchemaPath))
	assert.NotEmpty(t, ResolveSchemaPath(JobSchemaPath))
}

func TestResolveSchemaPath_NotFound(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath("schemas/no_such.schema.json"))
}

func TestValidateJobFile_Valid(t *testing.T) {
	jsonPath := writeTempJSON(t, `{
		"position_title": "Instructor 1",
		"education_requirements": "Master's degree in Computer Science required",
		"salary_grade": 12
	}`)

	assert.NoError(t, ValidateJobFile(jsonPath))
}

func TestValidateJobFile_MissingRequiredField(t *testing.T) {
	jsonPath := writeTempJSON(t, `{
		"education_requirements": "Bachelor's degree"
	}`)

	err := ValidateJobFile(jsonPath)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateJobFile_WrongType(t *testing.T) {
	jsonPath := writeTempJSON(t, `{
		"position_title": "Instructor 1",
		"salary_grade": "twelve"
	}`)

	err := ValidateJobFile(jsonPath)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateCandidateFile_Valid(t *testing.T) {
	jsonPath := writeTempJSON(t, `{
		"id": "cand-001",
		"name": "Juan dela Cruz",
		"education": [
			{"level": "College", "degree": "BS Computer Science", "institution": "State University"}
		],
		"eligibility": [
			{"name": "Civil Service Eligibility - Professional"}
		]
	}`)

	assert.NoError(t, ValidateCandidateFile(jsonPath))
}

func TestValidateCandidateFile_WrongShape(t *testing.T) {
	jsonPath := writeTempJSON(t, `{
		"education": "BS Computer Science"
	}`)

	err := ValidateCandidateFile(jsonPath)
	require.Error(t, err)
}

func TestValidateJSON_NonExistentSchema(t *testing.T) {
	jsonPath := writeTempJSON(t, `{}`)

	err := ValidateJSON("testdata/nonexistent_schema.json", jsonPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSON_NonExistentJSON(t *testing.T) {
	err := ValidateJSON(ResolveSchemaPath(JobSchemaPath), "testdata/nonexistent_json.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSON_MalformedJSON(t *testing.T) {
	malformedJSON := writeTempJSON(t, "{ invalid json }")

	valErr := ValidateJSON(ResolveSchemaPath(JobSchemaPath), malformedJSON)
	require.Error(t, valErr)
	// The error might be from gojsonschema parsing, not our code
}

func TestValidateJSONString_Valid(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string"}
		}
	}`
	jsonContent := `{"name": "test"}`

	err := ValidateJSONString(schemaContent, jsonContent)
	assert.NoError(t, err)
}

func TestValidateJSONString_Invalid(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string"}
		}
	}`
	jsonContent := `{"age": 30}`

	err := ValidateJSONString(schemaContent, jsonContent)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "position_title", Message: "is required"},
			{Field: "salary_grade", Message: "must be an integer"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "position_title")
	assert.Contains(t, errorMsg, "salary_grade")
}

func TestValidateJSONString_NestedFieldValidation(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["education"],
		"properties": {
			"education": {
				"type": "array",
				"items": {
					"type": "object",
					"required": ["degree"],
					"properties": {
						"degree": {"type": "string"}
					}
				}
			}
		}
	}`

	jsonContent := `{"education": [{}]}`

	err := ValidateJSONString(schemaContent, jsonContent)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Greater(t, len(validationErr.Errors), 0)
	// Check that the field path includes nested field
	found := false
	for _, fieldErr := range validationErr.Errors {
		if fieldErr.Field != "" {
			found = true
			break
		}
	}
	assert.True(t, found, "should include field path in error")
}
