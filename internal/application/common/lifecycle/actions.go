package lifecycle

import (
	"sort"
	"strings"

	"campus/internal/shared/errors"
)

// Actions maps the named bulk actions of an admin list to the status each
// one assigns.
type Actions map[string]string

// MarkActions builds the mark_<status> action set.
func MarkActions(statuses ...string) Actions {
	a := make(Actions, len(statuses))
	for _, s := range statuses {
		a["mark_"+s] = s
	}
	return a
}

func (a Actions) Resolve(action string) (string, error) {
	status, ok := a[action]
	if !ok {
		return "", errors.NewFieldValidationError("action", "unknown action, expected one of: "+strings.Join(a.Names(), ", "))
	}
	return status, nil
}

func (a Actions) Names() []string {
	names := make([]string, 0, len(a))
	for name := range a {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
