package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-advisor/internal/learning"
)

func setValidateFlags(t *testing.T, schema, file string) {
	t.Helper()
	prevSchema, prevFile := validateSchemaFlag, validateFileFlag
	validateSchemaFlag, validateFileFlag = schema, file
	t.Cleanup(func() {
		validateSchemaFlag, validateFileFlag = prevSchema, prevFile
	})
}

func TestRunValidate_ValidLearningPath(t *testing.T) {
	path, err := learning.GeneratePath("data engineer", []string{"spark", "airflow"}, 3)
	require.NoError(t, err)

	data, err := json.Marshal(path)
	require.NoError(t, err)
	filePath := filepath.Join(t.TempDir(), "path.json")
	require.NoError(t, os.WriteFile(filePath, data, 0644))

	setValidateFlags(t, "learning_path", filePath)
	err = runValidate(validateCmd, nil)
	assert.NoError(t, err)
}

func TestRunValidate_InvalidDocument(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(filePath, []byte(`{"timeline_months": -1}`), 0644))

	setValidateFlags(t, "learning_path", filePath)
	err := runValidate(validateCmd, nil)
	assert.Error(t, err)
}

func TestRunValidate_UnknownSchema(t *testing.T) {
	setValidateFlags(t, "resume_plan", "whatever.json")

	err := runValidate(validateCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown schema")
}

func TestRunValidate_MissingFlags(t *testing.T) {
	setValidateFlags(t, "", "")

	err := runValidate(validateCmd, nil)
	assert.Error(t, err)
}
