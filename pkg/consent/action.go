package consent

// Action tells how a consent record was produced. It only shows up in audit
// records and metrics.
type Action string

const (
	ActionAcceptAll      Action = "accept_all"
	ActionRejectOptional Action = "reject_optional"
	ActionCustom         Action = "custom"
)

// IsValid reports whether a is one of the known actions.
func (a Action) IsValid() bool {
	switch a {
	case ActionAcceptAll, ActionRejectOptional, ActionCustom:
		return true
	}
	return false
}

func (a Action) String() string {
	return string(a)
}
