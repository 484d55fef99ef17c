package msg

import (
	"fmt"
	"strings"
)

func Sprintfln(format string, args ...interface{}) string {
	return Sprintln(fmt.Sprintf(format, args...))
}

func Sprintlns(lines []string) string {
	return Sprintln(strings.Join(lines, "\n"))
}

func Sprintln(args ...interface{}) string {
	return fmt.Sprintln(args...)
}

// Options numbers options for a text prompt.
func Options(prompt string, options []string) string {
	lines := make([]string, 0, len(options)+1)
	lines = append(lines, prompt)
	for i, option := range options {
		lines = append(lines, fmt.Sprintf("  %d. %s", i, option))
	}
	return Sprintlns(lines)
}
