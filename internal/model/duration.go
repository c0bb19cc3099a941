package model

import "fmt"

// Duration limits.
const (
	MaxHours   = 23
	MaxMinutes = 59
)

// Duration is the length of a timer as chosen in the wizard.
type Duration struct {
	Hours   int `json:"hours" yaml:"hours"`
	Minutes int `json:"minutes" yaml:"minutes"`
}

// DefaultDuration returns the duration the wizard starts (and resets) with.
func DefaultDuration() Duration {
	return Duration{Hours: 0, Minutes: 5}
}

// TotalSeconds returns the duration in seconds.
func (d Duration) TotalSeconds() int {
	return d.Hours*3600 + d.Minutes*60
}

// TotalMinutes returns the duration in whole minutes.
func (d Duration) TotalMinutes() int {
	return d.Hours*60 + d.Minutes
}

// Valid reports whether hours and minutes are within their ranges.
// It does not enforce the one-minute floor; that is checked on start.
func (d Duration) Valid() bool {
	return d.Hours >= 0 && d.Hours <= MaxHours &&
		d.Minutes >= 0 && d.Minutes <= MaxMinutes
}

// String renders the duration the way the review card shows it.
func (d Duration) String() string {
	if d.Hours > 0 {
		return fmt.Sprintf("%dh %dm", d.Hours, d.Minutes)
	}
	total := d.TotalMinutes()
	if total == 1 {
		return "1 minute"
	}
	return fmt.Sprintf("%d minutes", total)
}

// FormatClock renders a remaining-seconds counter as HH:MM:SS, or MM:SS
// when under an hour.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
