package scene

import (
	"errors"
	"fmt"
)

// ValidationError describes one problem with a scheme. Item is -1 for
// problems with the group itself, Group is -1 for scheme-wide problems.
type ValidationError struct {
	Group  int
	Item   int
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	switch {
	case e.Group < 0:
		return fmt.Sprintf("scene: %s: %s", e.Field, e.Reason)
	case e.Item < 0:
		return fmt.Sprintf("scene: group %d: %s: %s", e.Group, e.Field, e.Reason)
	default:
		return fmt.Sprintf("scene: group %d item %d: %s: %s", e.Group, e.Item, e.Field, e.Reason)
	}
}

// Validate checks the scheme before any object is built. known reports
// whether a variant type exists; nil accepts every type. All problems
// are returned joined.
func (s Scheme) Validate(known func(string) bool) error {
	var errs []error
	add := func(group, item int, field, reason string) {
		errs = append(errs, &ValidationError{Group: group, Item: item, Field: field, Reason: reason})
	}

	if s.Resolution[0] < 0 || s.Resolution[1] < 0 {
		add(-1, -1, "resolution", fmt.Sprintf("must not be negative, got %v", s.Resolution))
	}
	if len(s.Groups) == 0 {
		add(-1, -1, "groups", "scheme has no groups")
	}

	for gi, g := range s.Groups {
		switch {
		case g.Type == "":
			add(gi, -1, "type", "missing")
		case known != nil && !known(g.Type):
			add(gi, -1, "type", fmt.Sprintf("unknown variant %q", g.Type))
		}
		if len(g.Items) == 0 {
			add(gi, -1, "items", "group has no items")
		}

		for ii, it := range g.Items {
			if it.Size == nil {
				add(gi, ii, "size", "missing")
				continue
			}
			if it.Size[0] < 0 || it.Size[1] < 0 {
				add(gi, ii, "size", fmt.Sprintf("must not be negative, got %v", *it.Size))
			}
		}
	}

	return errors.Join(errs...)
}
