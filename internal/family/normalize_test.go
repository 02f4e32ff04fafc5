package family

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeMembersSortedWithKeyAsID(t *testing.T) {
	raw := SubtreeFromStrings(map[string]string{
		"m-2": `{"name":"Bob","color":"#00f","points":30}`,
		"m-1": `{"id":"stale","name":"Alice","color":"#f00","points":10}`,
	})

	members, err := NormalizeMembers(raw)
	require.NoError(t, err)
	require.Len(t, members, 2)

	// key 升序，且 key 覆盖条目内嵌的 id
	assert.Equal(t, "m-1", members[0].ID)
	assert.Equal(t, "Alice", members[0].Name)
	assert.Equal(t, "m-2", members[1].ID)
	assert.Equal(t, 30, members[1].Points)
}

func TestNormalizeMembersEmptySubtree(t *testing.T) {
	members, err := NormalizeMembers(map[string]json.RawMessage{})
	require.NoError(t, err)
	assert.NotNil(t, members)
	assert.Empty(t, members)
}

func TestNormalizeAssignments(t *testing.T) {
	raw := SubtreeFromStrings(map[string]string{
		"a-1": `{"task_id":5,"member_id":"m-1","assigned_at":"2026-08-10T09:00:00Z"}`,
	})

	assignments, err := NormalizeAssignments(raw)
	require.NoError(t, err)
	require.Len(t, assignments, 1)
	assert.Equal(t, "a-1", assignments[0].ID)
	assert.Equal(t, int64(5), assignments[0].TaskID)
	assert.Equal(t, "m-1", assignments[0].MemberID)
}

func TestNormalizeComments(t *testing.T) {
	raw := SubtreeFromStrings(map[string]string{
		"c-2": `{"task_id":5,"member_id":"m-1","comment":"second"}`,
		"c-1": `{"task_id":5,"member_id":"m-2","comment":"first"}`,
	})

	comments, err := NormalizeComments(raw)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Comment)
	assert.Equal(t, "second", comments[1].Comment)
}

func TestNormalizeHistoryKeepsEventIDs(t *testing.T) {
	raw := SubtreeFromStrings(map[string]string{
		"5_2026-08-10": `{"id":123,"task_id":5,"day":"2026-08-10"}`,
	})

	events, err := NormalizeHistory(raw)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, int64(123), events[0].ID)
	assert.Equal(t, int64(5), events[0].TaskID)
	assert.Equal(t, "2026-08-10", events[0].Day)
}

func TestNormalizeRejectsMalformedEntry(t *testing.T) {
	raw := SubtreeFromStrings(map[string]string{"m-1": `"not an object"`})

	_, err := NormalizeMembers(raw)
	assert.Error(t, err)
}
