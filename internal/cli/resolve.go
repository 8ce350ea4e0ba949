package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveDreamID turns user input into a full dream id: exact id first,
// then unique id prefix, then unique case-insensitive title match.
func resolveDreamID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("dream ID is required")
	}

	dreams, err := app.Dreams.List(ctx, true)
	if err != nil {
		return "", err
	}

	for _, d := range dreams {
		if d.ID == input {
			return d.ID, nil
		}
	}

	var matches []string
	for _, d := range dreams {
		if strings.HasPrefix(d.ID, input) {
			matches = append(matches, d.ID)
		}
	}
	if len(matches) == 0 {
		for _, d := range dreams {
			if strings.EqualFold(d.Title, input) {
				matches = append(matches, d.ID)
			}
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("dream not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("dream reference %q is ambiguous (%d matches)", input, len(matches))
	}
}
