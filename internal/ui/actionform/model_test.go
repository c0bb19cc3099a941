package actionform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/kronaut/internal/model"
)

func TestToAction(t *testing.T) {
	a := toAction(&formBindings{actionType: model.ActionAlarm, content: "ignored"})
	assert.Equal(t, model.AlarmAction(), a)

	a = toAction(&formBindings{actionType: model.ActionAnnouncement, content: "  Stand up  "})
	assert.Equal(t, model.AnnouncementAction("Stand up"), a)

	a = toAction(&formBindings{actionType: model.ActionTask, content: "Call Mom"})
	assert.Equal(t, model.ActionTask, a.Type)
	require.NotNil(t, a.Parsed)
	assert.Equal(t, model.TaskCall, a.Parsed.Kind)
}

func TestValidateContent(t *testing.T) {
	assert.NoError(t, validateContent(model.ActionAlarm, ""))
	assert.NoError(t, validateContent(model.ActionTask, "Open google.com"))

	err := validateContent(model.ActionAnnouncement, " ")
	assert.EqualError(t, err, "Please enter content for your announcement")

	err = validateContent(model.ActionTask, "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid task command. Try:")
}

func TestHandleSubmit(t *testing.T) {
	m := New(80, 24)
	m.fb.actionType = model.ActionAnnouncement
	m.fb.content = "Tea is ready"

	msg := m.handleSubmit()()
	assert.Equal(t, ActionSetMsg{Action: model.AnnouncementAction("Tea is ready")}, msg)
}

func TestStartKeepsDraft(t *testing.T) {
	m := New(80, 24)
	m.Start(model.TaskAction("Email Alex", nil))
	assert.Equal(t, model.ActionTask, m.fb.actionType)
	assert.Equal(t, "Email Alex", m.fb.content)
	assert.Contains(t, m.View(), "When the timer ends")

	assert.Equal(t, "Task command", contentTitle(model.ActionTask))
	assert.Contains(t, contentHint(model.ActionTask), "Call John")
}
