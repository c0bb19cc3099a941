package model

// ActionType identifies what happens when a timer runs out.
type ActionType string

const (
	ActionAnnouncement ActionType = "announcement"
	ActionAlarm        ActionType = "alarm"
	ActionTask         ActionType = "task"
)

// Label returns the human-readable name used on the review card.
func (t ActionType) Label() string {
	switch t {
	case ActionAnnouncement:
		return "Announcement"
	case ActionTask:
		return "Automated Task"
	default:
		return "Alarm"
	}
}

// TaskKind identifies the platform handler a task command targets.
type TaskKind string

const (
	TaskCall     TaskKind = "call"
	TaskWhatsApp TaskKind = "whatsapp"
	TaskEmail    TaskKind = "email"
	TaskWebsite  TaskKind = "website"
)

// ParsedTask is the structured form of a task command such as "Call Mom".
// Values are produced by the taskcmd parser and never mutated afterwards.
type ParsedTask struct {
	Kind   TaskKind `json:"kind"`
	Target string   `json:"target"`

	// OriginalText is the command exactly as the user typed it.
	OriginalText string `json:"original_text"`
}

// Action is the completion action attached to a timer.
//
// Content is the announcement text for ActionAnnouncement and the task
// command for ActionTask; it is ignored for ActionAlarm. Parsed is only
// set for tasks whose content was parsed successfully.
type Action struct {
	Type    ActionType  `json:"type"`
	Content string      `json:"content,omitempty"`
	Parsed  *ParsedTask `json:"parsed,omitempty"`
}

// DefaultAction returns the action the wizard starts (and resets) with.
func DefaultAction() Action {
	return Action{Type: ActionAlarm}
}

// AnnouncementAction builds an announcement with the given text.
func AnnouncementAction(content string) Action {
	return Action{Type: ActionAnnouncement, Content: content}
}

// AlarmAction builds an alarm action.
func AlarmAction() Action {
	return Action{Type: ActionAlarm}
}

// TaskAction builds a task action. parsed may be nil when content has not
// been (or cannot be) parsed.
func TaskAction(content string, parsed *ParsedTask) Action {
	return Action{Type: ActionTask, Content: content, Parsed: parsed}
}
