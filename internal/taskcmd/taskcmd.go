// Package taskcmd turns free-text task commands such as "Call Mom" or
// "Open google.com" into structured tasks and platform deep links.
package taskcmd

import (
	"regexp"
	"strings"

	"github.com/nhle/kronaut/internal/model"
)

// rule is one keyword category. Categories are tried in order and the
// first one whose pattern matches wins.
type rule struct {
	kind     model.TaskKind
	keywords []string
	pattern  *regexp.Regexp
}

// Keyword checks are plain substring tests, so "recall" triggers the call
// rule. Kept as-is so saved commands keep resolving the same way.
var rules = []rule{
	{
		kind:     model.TaskCall,
		keywords: []string{"call"},
		pattern:  regexp.MustCompile(`call\s+(.+)`),
	},
	{
		kind:     model.TaskWhatsApp,
		keywords: []string{"whatsapp", "message"},
		pattern:  regexp.MustCompile(`(?:whatsapp|message)\s+(.+)`),
	},
	{
		kind:     model.TaskEmail,
		keywords: []string{"email"},
		pattern:  regexp.MustCompile(`email\s+(.+)`),
	},
	{
		kind:     model.TaskWebsite,
		keywords: []string{"open", "visit", "website"},
		pattern:  regexp.MustCompile(`(?:open|visit|website)\s+(.+)`),
	},
}

// Parse maps text to a task. Matching is done on the trimmed, lower-cased
// text, so Target is always lower case; OriginalText keeps the input as
// given. A keyword with nothing after it falls through to the next
// category. The second return value is false when nothing matched.
func Parse(text string) (*model.ParsedTask, bool) {
	lower := strings.ToLower(strings.TrimSpace(text))

	for _, r := range rules {
		if !containsAny(lower, r.keywords) {
			continue
		}
		m := r.pattern.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		return &model.ParsedTask{
			Kind:         r.kind,
			Target:       strings.TrimSpace(m[1]),
			OriginalText: text,
		}, true
	}

	return nil, false
}

// Valid reports whether text parses as a task command.
func Valid(text string) bool {
	_, ok := Parse(text)
	return ok
}

// DeepLink renders the URL that hands a task to its platform handler.
// The WhatsApp greeting is deliberately not URL-encoded.
func DeepLink(task model.ParsedTask) string {
	switch task.Kind {
	case model.TaskCall:
		return "tel:" + task.Target
	case model.TaskWhatsApp:
		return "https://wa.me/?text=Hello " + task.Target
	case model.TaskEmail:
		return "mailto:" + task.Target
	case model.TaskWebsite:
		if strings.HasPrefix(task.Target, "http") {
			return task.Target
		}
		return "https://" + task.Target
	default:
		return ""
	}
}

// Examples lists the sample commands offered when input does not parse.
func Examples() []string {
	return []string{"Call John", "WhatsApp Sarah", "Email Alex", "Open google.com"}
}

// Describe renders a short label for a parsed task, e.g. "Call mom".
func Describe(task model.ParsedTask) string {
	switch task.Kind {
	case model.TaskCall:
		return "Call " + task.Target
	case model.TaskWhatsApp:
		return "WhatsApp " + task.Target
	case model.TaskEmail:
		return "Email " + task.Target
	case model.TaskWebsite:
		return "Open " + task.Target
	default:
		return task.OriginalText
	}
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
