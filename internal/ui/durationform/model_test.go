package durationform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/kronaut/internal/model"
)

func TestPresetFor(t *testing.T) {
	assert.Equal(t, 5, presetFor(model.DefaultDuration()))
	assert.Equal(t, 30, presetFor(model.Duration{Minutes: 30}))
	assert.Equal(t, custom, presetFor(model.Duration{Minutes: 7}))
	assert.Equal(t, custom, presetFor(model.Duration{Hours: 1, Minutes: 5}))
}

func TestToDuration(t *testing.T) {
	assert.Equal(t, model.Duration{Minutes: 15}, toDuration(&formBindings{preset: 15, hours: "9"}))
	assert.Equal(t, model.Duration{Hours: 1, Minutes: 30}, toDuration(&formBindings{preset: custom, hours: "1", minutes: "30"}))
	assert.Equal(t, model.Duration{}, toDuration(&formBindings{preset: custom, hours: " ", minutes: ""}))
}

func TestValidateRange(t *testing.T) {
	v := validateRange("Minutes", model.MaxMinutes)
	assert.NoError(t, v(""))
	assert.NoError(t, v("59"))
	assert.Error(t, v("60"))
	assert.Error(t, v("-1"))
	assert.Error(t, v("ten"))
}

func TestHandleSubmit(t *testing.T) {
	m := New(80, 24)

	m.fb.preset = 10
	msg := m.handleSubmit()()
	assert.Equal(t, DurationSetMsg{Duration: model.Duration{Minutes: 10}}, msg)

	m.fb.preset = custom
	m.fb.hours, m.fb.minutes = "0", "0"
	assert.Equal(t, DurationInvalidMsg{}, m.handleSubmit()())
}

func TestStartBuildsForm(t *testing.T) {
	m := New(80, 24)
	m.Start(model.Duration{Hours: 2, Minutes: 3})
	require.NotNil(t, m.form)
	assert.Equal(t, custom, m.fb.preset)
	assert.Equal(t, "2", m.fb.hours)
	assert.Equal(t, "3", m.fb.minutes)
	assert.Contains(t, m.View(), "Set Timer Duration")
}
