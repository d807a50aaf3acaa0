// Package codec maps issues to and from the versioned JSON tree form used
// by the on-disk collection store.
//
// Trees are the generic values encoding/json produces: map[string]any for
// objects, []any for arrays. Decoding is deliberately forgiving: a
// malformed event is dropped, a malformed status falls back to the
// default, and a malformed issue is reported as an error the caller can
// treat as "could not load this issue".
package codec

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/evict-bt/evict/internal/idgen"
	"github.com/evict-bt/evict/internal/types"
)

// TimeFormat is the fixed timestamp layout used on the wire. The year
// appears twice; that quirk is part of the stored format, and values must
// round-trip through this exact layout byte for byte.
const TimeFormat = "2006-01-02 2006 at 15:04:05"

// CurrentVersion is the only format version this codec writes. It is
// stored as a string.
const CurrentVersion = "1"

// Envelope and payload keys.
const (
	VersionKey = "evict-version"
	TitleKey   = "title"
	TimeKey    = "time"
	AuthorKey  = "author"
	IDKey      = "id"
	BranchKey  = "branch"
	StatusKey  = "status"
	EventsKey  = "events"
	BodyKey    = "bodyText"
	NameKey    = "name"
	EnabledKey = "enabled"
)

var (
	// ErrMissingVersion reports an issue tree with no format-version
	// field at all.
	ErrMissingVersion = errors.New("issue has no format version")

	// ErrUnsupportedVersion reports a format version this codec cannot
	// read.
	ErrUnsupportedVersion = errors.New("unsupported format version")

	// ErrMalformedIssue reports a required issue field that is missing or
	// has the wrong type.
	ErrMalformedIssue = errors.New("malformed issue")
)

// EncodeIssueMetadata writes the issue envelope without its timeline:
// version, title, creation time, author, identifier, branch and status.
// Merging the event list in is the store's concern.
func EncodeIssueMetadata(issue *types.Issue) map[string]any {
	return map[string]any{
		VersionKey: CurrentVersion,
		TitleKey:   issue.Title,
		TimeKey:    issue.CreatedAt.Format(TimeFormat),
		AuthorKey:  issue.Author,
		IDKey:      issue.ID,
		BranchKey:  issue.Branch,
		StatusKey:  encodeStatus(issue.Status),
	}
}

// EncodeIssue writes the envelope with the timeline merged in under the
// events key.
func EncodeIssue(issue *types.Issue) map[string]any {
	node := EncodeIssueMetadata(issue)
	events := make([]any, 0, len(issue.Events))
	for _, evt := range issue.Events {
		events = append(events, EncodeEvent(evt))
	}
	node[EventsKey] = events
	return node
}

// EncodeEvent writes a timeline entry as its wire form: a 2-element
// [kind, payload] pair.
func EncodeEvent(evt types.TimelineEvent) []any {
	return []any{evt.EventKind(), encodeEventPayload(evt)}
}

func encodeEventPayload(evt types.TimelineEvent) map[string]any {
	switch e := evt.(type) {
	case *types.Comment:
		return map[string]any{
			BodyKey:   e.Body,
			TimeKey:   e.CreatedAt.Format(TimeFormat),
			AuthorKey: e.Author,
			BranchKey: e.Branch,
			IDKey:     e.ID,
		}
	case *types.Tag:
		return map[string]any{
			TimeKey:    e.Time.Format(TimeFormat),
			AuthorKey:  e.Author,
			NameKey:    e.Name,
			EnabledKey: e.Enabled,
			IDKey:      e.ID,
		}
	default:
		// closed sum; unreachable
		return nil
	}
}

// DecodeIssue reads a versioned issue tree. The version field dispatches
// the decode: a missing field is ErrMissingVersion, an unrecognized value
// is ErrUnsupportedVersion, and neither aborts the process. The returned
// issue's events are sorted chronologically, so queries that assume a
// time-ordered timeline are safe on it.
func DecodeIssue(node any) (*types.Issue, error) {
	m, ok := node.(map[string]any)
	if !ok {
		return nil, ErrMalformedIssue
	}
	raw, ok := stringForKey(m, VersionKey)
	if !ok {
		return nil, ErrMissingVersion
	}
	version, err := strconv.Atoi(raw)
	if err != nil || version != 1 {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedVersion, raw)
	}

	issue, err := decodeIssueV1(m)
	if err != nil {
		return nil, err
	}
	types.SortEventsByTime(issue.Events)
	return issue, nil
}

func decodeIssueV1(m map[string]any) (*types.Issue, error) {
	title, ok := stringForKey(m, TitleKey)
	if !ok {
		return nil, fmt.Errorf("%w: missing %s", ErrMalformedIssue, TitleKey)
	}
	author, ok := stringForKey(m, AuthorKey)
	if !ok {
		return nil, fmt.Errorf("%w: missing %s", ErrMalformedIssue, AuthorKey)
	}
	branch, ok := stringForKey(m, BranchKey)
	if !ok {
		return nil, fmt.Errorf("%w: missing %s", ErrMalformedIssue, BranchKey)
	}
	id, ok := stringForKey(m, IDKey)
	if !ok {
		return nil, fmt.Errorf("%w: missing %s", ErrMalformedIssue, IDKey)
	}
	timeStr, ok := stringForKey(m, TimeKey)
	if !ok {
		return nil, fmt.Errorf("%w: missing %s", ErrMalformedIssue, TimeKey)
	}
	created, err := time.Parse(TimeFormat, timeStr)
	if err != nil {
		return nil, fmt.Errorf("%w: bad %s %q", ErrMalformedIssue, TimeKey, timeStr)
	}

	issue := &types.Issue{
		Title:     title,
		Author:    author,
		Branch:    branch,
		ID:        id,
		CreatedAt: created,
		Status:    types.DefaultStatus(),
	}
	if raw, present := m[StatusKey]; present {
		issue.Status = decodeStatus(raw)
	}
	if raw, present := m[EventsKey]; present {
		issue.Events = DecodeEvents(raw)
	}
	return issue, nil
}

func encodeStatus(s types.IssueStatus) map[string]any {
	return map[string]any{
		NameKey: s.Name,
		TimeKey: s.LastChange.Format(TimeFormat),
	}
}

// decodeStatus never fails: any missing or mistyped field yields the
// default status rather than sinking the whole issue.
func decodeStatus(node any) types.IssueStatus {
	m, ok := node.(map[string]any)
	if !ok {
		return types.DefaultStatus()
	}
	name, ok := stringForKey(m, NameKey)
	if !ok {
		return types.DefaultStatus()
	}
	timeStr, ok := stringForKey(m, TimeKey)
	if !ok {
		return types.DefaultStatus()
	}
	t, err := time.Parse(TimeFormat, timeStr)
	if err != nil {
		return types.DefaultStatus()
	}
	return types.IssueStatus{Name: name, LastChange: t}
}

// DecodeEvents reads a timeline array. Entries that fail to decode are
// dropped; a single bad event never fails the issue that owns it.
func DecodeEvents(node any) []types.TimelineEvent {
	list, ok := node.([]any)
	if !ok {
		return nil
	}
	var events []types.TimelineEvent
	for _, entry := range list {
		if evt, ok := DecodeEvent(entry); ok {
			events = append(events, evt)
		}
	}
	return events
}

// DecodeEvent reads one [kind, payload] pair. A bare payload with no kind
// wrapper is accepted as a comment: collections written before the
// timeline format existed stored comments that way.
func DecodeEvent(node any) (types.TimelineEvent, bool) {
	pair, ok := node.([]any)
	if !ok {
		return decodeComment(node)
	}
	if len(pair) != 2 {
		return nil, false
	}
	kind, ok := pair[0].(string)
	if !ok {
		return nil, false
	}
	switch kind {
	case types.KindComment:
		return decodeComment(pair[1])
	case types.KindTag:
		return decodeTag(pair[1])
	}
	return nil, false
}

func decodeComment(node any) (types.TimelineEvent, bool) {
	m, ok := node.(map[string]any)
	if !ok {
		return nil, false
	}
	body, ok := stringForKey(m, BodyKey)
	if !ok {
		return nil, false
	}
	author, ok := stringForKey(m, AuthorKey)
	if !ok {
		return nil, false
	}
	branch, ok := stringForKey(m, BranchKey)
	if !ok {
		return nil, false
	}
	timeStr, ok := stringForKey(m, TimeKey)
	if !ok {
		return nil, false
	}
	t, err := time.Parse(TimeFormat, timeStr)
	if err != nil {
		return nil, false
	}
	// Pre-timeline comments carried no id; assign one on the way in.
	id, ok := stringForKey(m, IDKey)
	if !ok {
		id = idgen.New()
	}
	return &types.Comment{
		CreatedAt: t,
		Author:    author,
		Body:      body,
		Branch:    branch,
		ID:        id,
	}, true
}

func decodeTag(node any) (types.TimelineEvent, bool) {
	m, ok := node.(map[string]any)
	if !ok {
		return nil, false
	}
	name, ok := stringForKey(m, NameKey)
	if !ok {
		return nil, false
	}
	author, ok := stringForKey(m, AuthorKey)
	if !ok {
		return nil, false
	}
	enabled, ok := m[EnabledKey].(bool)
	if !ok {
		return nil, false
	}
	id, ok := stringForKey(m, IDKey)
	if !ok {
		return nil, false
	}
	timeStr, ok := stringForKey(m, TimeKey)
	if !ok {
		return nil, false
	}
	t, err := time.Parse(TimeFormat, timeStr)
	if err != nil {
		return nil, false
	}
	return &types.Tag{
		Time:    t,
		Name:    name,
		Enabled: enabled,
		Author:  author,
		ID:      id,
	}, true
}

func stringForKey(m map[string]any, key string) (string, bool) {
	s, ok := m[key].(string)
	return s, ok
}
