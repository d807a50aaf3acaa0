package codec

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evict-bt/evict/internal/types"
)

func TestTimeFormatRoundTripsByteIdentical(t *testing.T) {
	at := time.Date(2024, 3, 5, 16, 42, 7, 0, time.UTC)
	formatted := at.Format(TimeFormat)
	assert.Equal(t, "2024-03-05 2024 at 16:42:07", formatted)

	parsed, err := time.Parse(TimeFormat, formatted)
	require.NoError(t, err)
	assert.Equal(t, formatted, parsed.Format(TimeFormat))
}

func TestIssueRoundTrip(t *testing.T) {
	issue := types.NewIssue("Foo", "Body", "Author", "main")

	node := EncodeIssueMetadata(issue)
	read, err := DecodeIssue(node)
	require.NoError(t, err)

	assert.True(t, read.Equals(issue))
	assert.Equal(t, issue.Title, read.Title)
	assert.Equal(t, issue.Author, read.Author)
	assert.Equal(t, issue.ID, read.ID)
	assert.Equal(t, issue.Branch, read.Branch)
	assert.Equal(t,
		issue.CreatedAt.Format(TimeFormat),
		read.CreatedAt.Format(TimeFormat))
}

func TestIssueRoundTripThroughJSON(t *testing.T) {
	issue := types.NewIssue("Foo", "Body", "Author", "main")
	issue.AddComment(types.NewComment("Author", "first", "main"))
	issue.AddTag(types.NewTag("urgent", "Author", true))

	data, err := json.Marshal(EncodeIssue(issue))
	require.NoError(t, err)

	var node any
	require.NoError(t, json.Unmarshal(data, &node))

	read, err := DecodeIssue(node)
	require.NoError(t, err)
	assert.True(t, read.Equals(issue))
	require.Len(t, read.Events, 2)
	comment, ok := read.Events[0].(*types.Comment)
	require.True(t, ok)
	assert.Equal(t, "first", comment.Body)
	tag, ok := read.Events[1].(*types.Tag)
	require.True(t, ok)
	assert.Equal(t, "urgent", tag.Name)
	assert.True(t, tag.Enabled)
}

func TestDecodeMissingVersionIsTypedError(t *testing.T) {
	node := EncodeIssueMetadata(types.NewIssue("Foo", "", "Author", "main"))
	delete(node, VersionKey)

	_, err := DecodeIssue(node)
	assert.ErrorIs(t, err, ErrMissingVersion)
}

func TestDecodeUnsupportedVersionIsAMiss(t *testing.T) {
	node := EncodeIssueMetadata(types.NewIssue("Foo", "", "Author", "main"))

	node[VersionKey] = "2"
	_, err := DecodeIssue(node)
	assert.ErrorIs(t, err, ErrUnsupportedVersion)

	node[VersionKey] = "not-a-number"
	_, err = DecodeIssue(node)
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestDecodeMissingRequiredFieldIsAMiss(t *testing.T) {
	for _, key := range []string{TitleKey, AuthorKey, BranchKey, IDKey, TimeKey} {
		node := EncodeIssueMetadata(types.NewIssue("Foo", "", "Author", "main"))
		delete(node, key)
		_, err := DecodeIssue(node)
		assert.ErrorIs(t, err, ErrMalformedIssue, "missing %s", key)
	}

	node := EncodeIssueMetadata(types.NewIssue("Foo", "", "Author", "main"))
	node[TimeKey] = "yesterday-ish"
	_, err := DecodeIssue(node)
	assert.ErrorIs(t, err, ErrMalformedIssue)
}

func TestDecodeStatusFallsBackToDefault(t *testing.T) {
	issue := types.NewIssue("Foo", "", "Author", "main")
	issue.Status = types.NewStatus("in-progress")

	node := EncodeIssueMetadata(issue)
	read, err := DecodeIssue(node)
	require.NoError(t, err)
	assert.Equal(t, "in-progress", read.Status.Name)

	// Mistyped status never sinks the issue.
	node[StatusKey] = "in-progress"
	read, err = DecodeIssue(node)
	require.NoError(t, err)
	assert.Equal(t, types.DefaultStatusName, read.Status.Name)

	// Absent status decodes as the default too.
	delete(node, StatusKey)
	read, err = DecodeIssue(node)
	require.NoError(t, err)
	assert.Equal(t, types.DefaultStatus(), read.Status)
}

func TestLegacyBareCommentDecodes(t *testing.T) {
	payload := map[string]any{
		BodyKey:   "old style comment",
		TimeKey:   "2013-07-01 2013 at 09:30:00",
		AuthorKey: "Author",
		BranchKey: "master",
		IDKey:     "13725530001234",
	}

	bare, ok := DecodeEvent(payload)
	require.True(t, ok, "bare payload must decode as a comment")
	wrapped, ok := DecodeEvent([]any{types.KindComment, payload})
	require.True(t, ok)

	bareComment := bare.(*types.Comment)
	wrappedComment := wrapped.(*types.Comment)
	assert.Equal(t, *wrappedComment, *bareComment)
}

func TestLegacyCommentWithoutIDGetsOne(t *testing.T) {
	payload := map[string]any{
		BodyKey:   "no id recorded",
		TimeKey:   "2013-07-01 2013 at 09:30:00",
		AuthorKey: "Author",
		BranchKey: "master",
	}

	evt, ok := DecodeEvent(payload)
	require.True(t, ok)
	assert.NotEmpty(t, evt.EventID())
}

func TestMalformedEventIsDroppedNotFatal(t *testing.T) {
	goodTag := map[string]any{
		TimeKey:    "2024-03-05 2024 at 10:00:00",
		AuthorKey:  "Author",
		NameKey:    "urgent",
		EnabledKey: true,
		IDKey:      "17000000001",
	}
	missingName := map[string]any{
		TimeKey:    "2024-03-05 2024 at 10:00:01",
		AuthorKey:  "Author",
		EnabledKey: true,
		IDKey:      "17000000002",
	}

	events := DecodeEvents([]any{
		[]any{types.KindTag, goodTag},
		[]any{types.KindTag, missingName},
	})
	require.Len(t, events, 1)
	assert.Equal(t, "urgent", events[0].(*types.Tag).Name)
}

func TestDecodeEventRejectsJunk(t *testing.T) {
	cases := []any{
		[]any{"tag"},                       // too short
		[]any{"comment", "x", "y"},         // too long
		[]any{42, map[string]any{}},        // non-string kind
		[]any{"widget", map[string]any{}},  // unknown kind
		"just a string",                    // not a pair, not a comment object
	}
	for _, node := range cases {
		_, ok := DecodeEvent(node)
		assert.False(t, ok)
	}
}

func TestDecodeSortsEventsChronologically(t *testing.T) {
	issue := types.NewIssue("Foo", "", "Author", "main")

	late := types.NewTag("late", "Author", true)
	late.Time = time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
	early := types.NewComment("Author", "early", "main")
	early.CreatedAt = time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)
	issue.AddTag(late)
	issue.AddComment(early)

	read, err := DecodeIssue(EncodeIssue(issue))
	require.NoError(t, err)
	require.Len(t, read.Events, 2)
	assert.Equal(t, types.KindComment, read.Events[0].EventKind())
	assert.Equal(t, types.KindTag, read.Events[1].EventKind())
}

func TestEncodeEventWireShape(t *testing.T) {
	tag := types.NewTag("urgent", "Author", true)
	pair := EncodeEvent(tag)

	require.Len(t, pair, 2)
	assert.Equal(t, types.KindTag, pair[0])
	payload := pair[1].(map[string]any)
	assert.Equal(t, "urgent", payload[NameKey])
	assert.Equal(t, true, payload[EnabledKey])
	assert.Equal(t, tag.ID, payload[IDKey])
}
