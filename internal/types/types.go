// Package types defines core data structures for the evict issue tracker.
package types

import (
	"time"

	"github.com/evict-bt/evict/internal/idgen"
)

// Event kind discriminators. These strings are embedded in the persisted
// form of every timeline entry.
const (
	KindComment = "comment"
	KindTag     = "tag"
)

// TimelineEvent is one entry in an issue's timeline. The sum is closed:
// the only implementations are *Comment and *Tag.
type TimelineEvent interface {
	// EventKind returns the stable discriminator string for the variant.
	EventKind() string
	// EventTime returns the event's timestamp, regardless of kind.
	EventTime() time.Time
	// EventID returns the event's identifier, regardless of kind.
	EventID() string

	timelineEvent()
}

// Comment is a body of text appended to an issue's timeline.
type Comment struct {
	CreatedAt time.Time
	Author    string
	Body      string
	Branch    string
	ID        string
}

// NewComment builds a comment stamped with the current time and a fresh
// identifier.
func NewComment(author, body, branch string) *Comment {
	return &Comment{
		CreatedAt: time.Now(),
		Author:    author,
		Body:      body,
		Branch:    branch,
		ID:        idgen.New(),
	}
}

func (c *Comment) EventKind() string    { return KindComment }
func (c *Comment) EventTime() time.Time { return c.CreatedAt }
func (c *Comment) EventID() string      { return c.ID }
func (c *Comment) timelineEvent()       {}

// Tag records a named marker being toggled on or off. The current tag
// state of an issue is derived from these events, never stored directly.
type Tag struct {
	Time    time.Time
	Name    string
	Enabled bool
	Author  string
	ID      string
}

// NewTag builds a tag toggle stamped with the current time and a fresh
// identifier.
func NewTag(name, author string, enabled bool) *Tag {
	return &Tag{
		Time:    time.Now(),
		Name:    name,
		Enabled: enabled,
		Author:  author,
		ID:      idgen.New(),
	}
}

func (t *Tag) EventKind() string    { return KindTag }
func (t *Tag) EventTime() time.Time { return t.Time }
func (t *Tag) EventID() string      { return t.ID }
func (t *Tag) timelineEvent()       {}

// DefaultStatusName is the workflow state an issue starts in.
const DefaultStatusName = "open"

// IssueStatus is the issue's current workflow state, distinct from tags.
type IssueStatus struct {
	Name       string
	LastChange time.Time
}

// NewStatus builds a status changed at the current time.
func NewStatus(name string) IssueStatus {
	return IssueStatus{Name: name, LastChange: time.Now()}
}

// DefaultStatus is the status an issue carries when none has been
// recorded: the default name paired with the zero time.
func DefaultStatus() IssueStatus {
	return IssueStatus{Name: DefaultStatusName}
}

// Issue is a single tracked issue and its timeline. An issue owns its
// events exclusively; no event is shared across issues.
type Issue struct {
	Title     string
	CreatedAt time.Time
	Author    string
	Body      string
	ID        string
	Branch    string
	Status    IssueStatus
	Events    []TimelineEvent
}

// NewIssue creates an issue with an empty timeline, the default status and
// a freshly generated identifier.
func NewIssue(title, body, author, branch string) *Issue {
	return &Issue{
		Title:     title,
		Body:      body,
		Author:    author,
		Branch:    branch,
		ID:        idgen.New(),
		CreatedAt: time.Now(),
		Status:    DefaultStatus(),
	}
}

// Equals reports issue identity. Two issues are the same issue exactly
// when their ids match, regardless of any other content. Stored
// collections rely on this relation, so it must stay an identity check
// and not become structural.
func (i *Issue) Equals(other *Issue) bool {
	return other != nil && i.ID == other.ID
}

// AddComment appends a comment to the timeline. No reordering or
// deduplication happens here.
func (i *Issue) AddComment(c *Comment) {
	i.Events = append(i.Events, c)
}

// AddTag appends a tag toggle to the timeline.
func (i *Issue) AddTag(t *Tag) {
	i.Events = append(i.Events, t)
}

// MostRecentTagForName returns the latest tag event carrying the given
// name, or nil when the issue has none. A candidate replaces the current
// best only on a strictly later timestamp, so on an exact tie the
// earlier-encountered event wins.
func (i *Issue) MostRecentTagForName(name string) *Tag {
	var recent *Tag
	for _, evt := range i.Events {
		tag, ok := evt.(*Tag)
		if !ok || tag.Name != name {
			continue
		}
		if recent == nil || recent.Time.Before(tag.Time) {
			recent = tag
		}
	}
	return recent
}

// AllTags returns the names of every tag currently enabled on the issue.
// The timeline is scanned in reverse chronological order and the first
// event seen for a name decides its verdict: enabled emits the name,
// disabled closes it silently. Either way later (older) history for that
// name is ignored. Assumes events are sorted by time ascending; the codec
// applies this ordering on load, so callers rarely need to sort
// themselves.
func (i *Issue) AllTags() []string {
	decided := make(map[string]bool)
	var tags []string
	for idx := len(i.Events) - 1; idx >= 0; idx-- {
		tag, ok := i.Events[idx].(*Tag)
		if !ok || decided[tag.Name] {
			continue
		}
		decided[tag.Name] = true
		if tag.Enabled {
			tags = append(tags, tag.Name)
		}
	}
	return tags
}
