package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword reads a line from the terminal with echo off.
var readPassword = term.ReadPassword

// GetSimpleText asks for one line:
//
//	Title
//	> _
//
// Surrounding whitespace is dropped. A last line cut short by EOF still counts.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprintf(w, "%s\n> ", prompt); err != nil {
		return "", err
	}

	line, err := reader.ReadString('\n')
	switch {
	case err == nil:
	case errors.Is(err, io.EOF) && line != "":
	default:
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword asks for a secret on the terminal. Callers wipe the result with
// common.WipeByteArray once done.
func GetPassword(prompt string, w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprintf(w, "%s: ", prompt); err != nil {
		return nil, err
	}

	secret, err := readPassword(int(os.Stdin.Fd()))
	// the terminal swallowed the user's Enter
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return secret, nil
}

// GetMultiline collects lines for task descriptions and notes until a blank
// line or EOF.
func GetMultiline(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprintf(w, "%s\n(blank line to finish)\n", prompt); err != nil {
		return "", err
	}

	var b strings.Builder
	for {
		line, err := reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		if err != nil {
			break
		}
	}
	return strings.TrimSpace(b.String()), nil
}
