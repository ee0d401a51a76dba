package api

import (
	"encoding/json"
	"testing"

	"github.com/phrazzld/taskhub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateTaskRequest_Decode(t *testing.T) {
	var req UpdateTaskRequest
	require.NoError(t, json.Unmarshal([]byte(`{"completed":true,"description":null}`), &req))

	patch := req.ToPatch()
	assert.False(t, patch.Title.Set)
	assert.True(t, patch.Completed.Set)
	assert.True(t, patch.Completed.Value)
	assert.True(t, patch.Description.Set)
	assert.True(t, patch.Description.Null)
	assert.NoError(t, req.Validate())
}

func TestUpdateTaskRequest_Validate(t *testing.T) {
	var req UpdateTaskRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title":null}`), &req))
	assert.ErrorIs(t, req.Validate(), domain.ErrNullField)

	req = UpdateTaskRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"title":"  "}`), &req))
	assert.ErrorIs(t, req.Validate(), domain.ErrEmptyTitle)
}
