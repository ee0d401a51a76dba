package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	var body struct {
		Title       Optional[string]  `json:"title"`
		Description Optional[*string] `json:"description"`
		Completed   Optional[bool]    `json:"completed"`
	}

	err := json.Unmarshal([]byte(`{"description": null, "completed": true}`), &body)
	require.NoError(t, err)

	assert.False(t, body.Title.Set, "absent field is not set")
	assert.True(t, body.Description.Set)
	assert.True(t, body.Description.Null)
	assert.Nil(t, body.Description.Value)
	assert.True(t, body.Completed.Set)
	assert.False(t, body.Completed.Null)
	assert.True(t, body.Completed.Value)
}

func TestOptional_UnmarshalJSON_TypeMismatch(t *testing.T) {
	t.Parallel()

	var body struct {
		Completed Optional[bool] `json:"completed"`
	}

	err := json.Unmarshal([]byte(`{"completed": "yes"}`), &body)
	assert.Error(t, err)
}

func TestOptional_MarshalJSON(t *testing.T) {
	t.Parallel()

	out, err := json.Marshal(Some("hello"))
	require.NoError(t, err)
	assert.JSONEq(t, `"hello"`, string(out))

	out, err = json.Marshal(Optional[string]{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}
