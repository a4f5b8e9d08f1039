// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// errNoInput is returned when no text was given by any input source.
var errNoInput = errors.New("no input: pass text as arguments, use --file, or pipe it on stdin")

// readInput returns the text to extract from. Arguments win over --file,
// which wins over stdin. A file of "-" reads stdin explicitly. stdin may be
// nil when it is an interactive terminal.
func readInput(args []string, file string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	if file != "" && file != "-" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading input file: %w", err)
		}
		return string(data), nil
	}

	if stdin == nil {
		return "", errNoInput
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

// inputFromCommand wires readInput to the command's --file flag and stdin.
// Stdin is only read when it is piped, or when --file is "-".
func inputFromCommand(cmd *cobra.Command, args []string) (string, error) {
	file, _ := cmd.Flags().GetString("file")

	var stdin io.Reader
	if file == "-" || stdinIsPiped() {
		stdin = cmd.InOrStdin()
	}
	return readInput(args, file, stdin)
}

func stdinIsPiped() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice == 0
}
