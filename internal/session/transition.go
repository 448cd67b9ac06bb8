package session

import (
	"fmt"

	"github.com/alexisbeaulieu97/shayari/internal/poetry"
)

// Action is a user or system event that moves between pages.
type Action string

const (
	ActionBegin   Action = "begin"
	ActionBack    Action = "back"
	ActionSucceed Action = "succeed"
	ActionRestart Action = "restart"
)

// TransitionError reports an action that is not valid from a page.
type TransitionError struct {
	Page   poetry.Page
	Action Action
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid transition: page=%s action=%s", e.Page, e.Action)
}

// Next computes the page reached by applying action on page. State routes
// every page move except GoToPage through it; there is no terminal page.
func Next(page poetry.Page, action Action) (poetry.Page, error) {
	switch page {
	case poetry.PagePortal:
		if action == ActionBegin {
			return poetry.PageJourney, nil
		}
	case poetry.PageJourney:
		switch action {
		case ActionBack:
			return poetry.PagePortal, nil
		case ActionSucceed:
			return poetry.PageEnchantment, nil
		}
	case poetry.PageEnchantment:
		if action == ActionRestart {
			return poetry.PageJourney, nil
		}
	}
	return page, &TransitionError{Page: page, Action: action}
}
