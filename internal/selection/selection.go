// Package selection locates issues in a collection by identifier fragment.
package selection

import (
	"errors"
	"fmt"
	"strings"

	"github.com/evict-bt/evict/internal/types"
)

var (
	// ErrNoMatch reports a fragment that matches no issue.
	ErrNoMatch = errors.New("no issue matches")

	// ErrAmbiguous reports a fragment that matches more than one issue.
	ErrAmbiguous = errors.New("multiple issues match")
)

// FindByIDFragment returns the single issue whose id equals the fragment
// or ends with it. Anything other than exactly one match is an error the
// command surface turns into a user-facing message.
func FindByIDFragment(fragment string, issues []*types.Issue) (*types.Issue, error) {
	var matches []*types.Issue
	for _, issue := range issues {
		if issue.ID == fragment || strings.HasSuffix(issue.ID, fragment) {
			matches = append(matches, issue)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %s", ErrNoMatch, fragment)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("%w: %s (%d candidates)", ErrAmbiguous, fragment, len(matches))
	}
}

// UpdateIssue applies transform to the issue matching fragment and returns
// the updated collection. On a zero- or multi-match error the collection
// comes back unchanged.
func UpdateIssue(fragment string, issues []*types.Issue, transform func(*types.Issue) *types.Issue) ([]*types.Issue, error) {
	match, err := FindByIDFragment(fragment, issues)
	if err != nil {
		return issues, err
	}
	for idx, issue := range issues {
		if issue.Equals(match) {
			issues[idx] = transform(issue)
		}
	}
	return issues, nil
}
