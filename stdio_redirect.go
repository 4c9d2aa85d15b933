package main

import (
	"fmt"
	"os"
)

// openStdioLog opens the redirect target for appending.
func openStdioLog(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open stdio log: %w", err)
	}
	return f, nil
}
