package taskcmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/kronaut/internal/model"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in     string
		kind   model.TaskKind
		target string
	}{
		{"Call Mom", model.TaskCall, "mom"},
		{"WhatsApp Dad", model.TaskWhatsApp, "dad"},
		{"Message Sarah", model.TaskWhatsApp, "sarah"},
		{"Email boss@x.com", model.TaskEmail, "boss@x.com"},
		{"Open google.com", model.TaskWebsite, "google.com"},
		{"visit https://Example.com/Path", model.TaskWebsite, "https://example.com/path"},
		{"website news.ycombinator.com", model.TaskWebsite, "news.ycombinator.com"},
		{"  CALL   John Smith  ", model.TaskCall, "john smith"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Parse(tt.in)
			require.True(t, ok)
			assert.Equal(t, tt.kind, got.Kind)
			assert.Equal(t, tt.target, got.Target)
			assert.Equal(t, tt.in, got.OriginalText)
		})
	}
}

func TestParse_NoMatch(t *testing.T) {
	for _, in := range []string{"hello", "", "   ", "call", "email", "open", "whatsapp"} {
		got, ok := Parse(in)
		assert.False(t, ok, in)
		assert.Nil(t, got, in)
	}
}

func TestParse_PriorityOrder(t *testing.T) {
	// call is checked before everything else, even when a later keyword
	// appears first in the text.
	got, ok := Parse("email then call bob")
	require.True(t, ok)
	assert.Equal(t, model.TaskCall, got.Kind)
	assert.Equal(t, "bob", got.Target)

	got, ok = Parse("open the message app")
	require.True(t, ok)
	assert.Equal(t, model.TaskWhatsApp, got.Kind)
	assert.Equal(t, "app", got.Target)
}

func TestParse_BareKeywordFallsThrough(t *testing.T) {
	// "call" has no trailing content, so the call rule fails and the
	// website rule picks the text up.
	got, ok := Parse("open call")
	require.True(t, ok)
	assert.Equal(t, model.TaskWebsite, got.Kind)
	assert.Equal(t, "call", got.Target)
}

func TestParse_SubstringQuirk(t *testing.T) {
	got, ok := Parse("Recall Mom")
	require.True(t, ok)
	assert.Equal(t, model.TaskCall, got.Kind)
	assert.Equal(t, "mom", got.Target)
}

func TestDeepLink(t *testing.T) {
	assert.Equal(t, "tel:123", DeepLink(model.ParsedTask{Kind: model.TaskCall, Target: "123"}))
	assert.Equal(t, "https://wa.me/?text=Hello dad", DeepLink(model.ParsedTask{Kind: model.TaskWhatsApp, Target: "dad"}))
	assert.Equal(t, "mailto:a@b.c", DeepLink(model.ParsedTask{Kind: model.TaskEmail, Target: "a@b.c"}))
	assert.Equal(t, "https://x.com", DeepLink(model.ParsedTask{Kind: model.TaskWebsite, Target: "x.com"}))
	assert.Equal(t, "http://x.com", DeepLink(model.ParsedTask{Kind: model.TaskWebsite, Target: "http://x.com"}))
	assert.Equal(t, "", DeepLink(model.ParsedTask{Kind: "fax", Target: "x"}))
}

func TestParseThenDeepLink(t *testing.T) {
	task, ok := Parse("WhatsApp John Doe")
	require.True(t, ok)
	assert.Equal(t, "https://wa.me/?text=Hello john doe", DeepLink(*task))
}

func TestExamplesAllParse(t *testing.T) {
	for _, ex := range Examples() {
		assert.True(t, Valid(ex), ex)
	}
}

func TestDescribe(t *testing.T) {
	task, ok := Parse("Email Alex")
	require.True(t, ok)
	assert.Equal(t, "Email alex", Describe(*task))
}
