package workflow

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intelia/rfpaccel/store"
)

func TestContext_Strings(t *testing.T) {
	testCases := []struct {
		description string
		value       interface{}
		expected    []string
	}{
		{
			description: "native slice",
			value:       []string{"a@example.com", "b@example.com"},
			expected:    []string{"a@example.com", "b@example.com"},
		},
		{
			description: "slice restored from JSON",
			value:       []interface{}{"a@example.com", "b@example.com"},
			expected:    []string{"a@example.com", "b@example.com"},
		},
		{
			description: "non-string elements dropped",
			value:       []interface{}{"a@example.com", 42},
			expected:    []string{"a@example.com"},
		},
		{
			description: "non-slice value",
			value:       "a@example.com",
			expected:    nil,
		},
	}

	for _, testCase := range testCases {
		workflowContext := Context{KeyTeamMembers: testCase.value}
		actual := workflowContext.Strings(KeyTeamMembers)
		assert.EqualValues(t, testCase.expected, actual, testCase.description)
	}

	assert.Nil(t, Context{}.Strings(KeyTeamMembers), "absent key")
}

func TestContext_RequiredString(t *testing.T) {
	workflowContext := Context{KeyClientName: "Acme"}
	actual, err := workflowContext.RequiredString(KeyClientName)
	require.NoError(t, err)
	assert.EqualValues(t, "Acme", actual)

	_, err = workflowContext.RequiredString(KeyRFPTitle)
	require.Error(t, err)
	assert.EqualValues(t, "missing required context key: rfp_title", err.Error())
}

func TestContext_Subfolders(t *testing.T) {
	native := store.Subfolders{
		SourceDocuments: store.Folder{ID: "a", URL: "mem://localhost/ws/src"},
		Analysis:        store.Folder{ID: "b", URL: "mem://localhost/ws/analysis"},
	}

	workflowContext := Context{KeySubfolders: native}
	actual, err := workflowContext.Subfolders()
	require.NoError(t, err)
	assert.EqualValues(t, "mem://localhost/ws/src", actual.SourceDocuments.URL)

	// Restored from persisted JSON the value is a generic map.
	data, err := json.Marshal(native)
	require.NoError(t, err)
	var restored interface{}
	require.NoError(t, json.Unmarshal(data, &restored))

	workflowContext = Context{KeySubfolders: restored}
	actual, err = workflowContext.Subfolders()
	require.NoError(t, err)
	assert.EqualValues(t, "mem://localhost/ws/src", actual.SourceDocuments.URL)
	assert.EqualValues(t, "mem://localhost/ws/analysis", actual.Analysis.URL)

	_, err = Context{}.Subfolders()
	require.Error(t, err)
	assert.EqualValues(t, "missing required context key: subfolders", err.Error())
}

func TestContext_Merge(t *testing.T) {
	workflowContext := Context{"keep": "original", "overwrite": "old"}
	workflowContext.Merge(map[string]interface{}{"overwrite": "new", "added": true})

	assert.EqualValues(t, "original", workflowContext.String("keep"))
	assert.EqualValues(t, "new", workflowContext.String("overwrite"))
	assert.True(t, workflowContext.Bool("added"))
	assert.Len(t, workflowContext, 3)
}

func TestContext_Clone(t *testing.T) {
	original := Context{"key": "value"}
	clone := original.Clone()
	clone.Set("key", "changed")
	clone.Set("extra", 1)

	assert.EqualValues(t, "value", original.String("key"))
	assert.Len(t, original, 1)
}
