package main

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/shayari/internal/poetry"
)

// validateComposeOptions rejects unknown style names. Missing values are left
// to the session so the messages match the portal.
func validateComposeOptions(opts composeOptions) (poetry.StyleKey, error) {
	if strings.TrimSpace(opts.style) == "" {
		return poetry.StyleUnselected, nil
	}

	style, ok := poetry.ParseStyle(opts.style)
	if !ok {
		return "", fmt.Errorf("unknown style %q (choose one of: %s)", opts.style, strings.Join(styleKeys(), ", "))
	}
	return style, nil
}

func styleKeys() []string {
	var keys []string
	for _, key := range poetry.Styles() {
		keys = append(keys, string(key))
	}
	return keys
}
