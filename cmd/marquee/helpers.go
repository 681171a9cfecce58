package main

import (
	"fmt"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"marquee/internal/loadable"
)

var titleCaser = cases.Title(language.Und)

// displayType renders a content type identifier for table output.
func displayType(value string) string {
	if value == "" {
		return "-"
	}
	return titleCaser.String(value)
}

func displayTypeRef(value *string) string {
	if value == nil {
		return "All"
	}
	return displayType(*value)
}

func stateLabel(state loadable.State) string {
	switch state {
	case loadable.StateReady:
		return "ready"
	case loadable.StateErr:
		return "error"
	default:
		return "loading"
	}
}

func derefOr(value *string, fallback string) string {
	if value == nil || *value == "" {
		return fallback
	}
	return *value
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return "-"
	}
	return value.UTC().Format("2006-01-02 15:04")
}

func formatTimeRef(value *time.Time) string {
	if value == nil {
		return "-"
	}
	return formatTime(*value)
}

func formatCount(count int) string {
	return fmt.Sprintf("%d", count)
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
