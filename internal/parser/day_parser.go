package parser

import (
	"fmt"
	"strings"
	"time"

	"github.com/fittrackdev/fittrack/internal/models"
)

// ParseDay resolves a user-supplied day into a YYYY-MM-DD string. Accepts
// "today", "yesterday", or an explicit YYYY-MM-DD date. An empty input means
// today.
func ParseDay(input string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "", "today":
		return models.Today(), nil
	case "yesterday":
		return models.DateOf(time.Now().AddDate(0, 0, -1)), nil
	}

	trimmed := strings.TrimSpace(input)
	if _, err := models.ParseDate(trimmed); err != nil {
		return "", fmt.Errorf("invalid date %q, use today, yesterday or YYYY-MM-DD", input)
	}
	return trimmed, nil
}
