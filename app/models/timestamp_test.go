package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampJSON(t *testing.T) {
	ts := NewTimestamp(time.Date(2025, 1, 2, 3, 4, 5, 6789000, time.UTC))

	data, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, `"2025-01-02T03:04:05.006Z"`, string(data))

	var decoded Timestamp
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, ts.Equal(decoded.Time))
}

func TestCommentJSONFieldNames(t *testing.T) {
	comment := &Comment{
		ID:        2,
		PostID:    1,
		Content:   "c",
		Author:    "a",
		CreatedAt: NewTimestamp(time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)),
	}

	data, err := json.Marshal(comment)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":2,"postId":1,"content":"c","author":"a","createdAt":"2025-01-02T03:04:05.000Z"}`, string(data))
}

func TestTimestampRejectsGarbage(t *testing.T) {
	var ts Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
}
