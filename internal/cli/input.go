package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// promptText prints a prompt and reads one trimmed line from stdin.
func promptText(prompt string) (string, error) {
	fmt.Printf("%s: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("error reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// promptIfTerminal prompts interactively when stdin is a terminal and
// otherwise reads a single line from the piped input.
func promptIfTerminal(prompt string) (string, error) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return promptText(prompt)
	}
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("error reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
