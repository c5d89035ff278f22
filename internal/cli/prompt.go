package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// confirm prompts with a y/n question and reads one line from reader.
// Anything other than "y" (case-insensitive) counts as no.
func confirm(writer io.Writer, reader io.Reader, prompt string) bool {
	fmt.Fprint(writer, prompt)

	scanner := bufio.NewScanner(reader)
	if !scanner.Scan() {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(scanner.Text()), "y")
}

// promptYesNo asks a y/n question on an existing scanner, re-prompting
// until one of the two answers is given.
func promptYesNo(writer io.Writer, scanner *bufio.Scanner, prompt string) (bool, bool) {
	for {
		fmt.Fprint(writer, prompt)
		if !scanner.Scan() {
			return false, false
		}
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "y":
			return true, true
		case "n":
			return false, true
		}
		fmt.Fprintln(writer, "\nInvalid input. Please enter 'y' or 'n'.")
	}
}

// promptInt re-prompts until the scanner yields a whole number.
// ok is false when input ends before a valid value is read.
func promptInt(writer io.Writer, scanner *bufio.Scanner, prompt string) (int, bool) {
	for {
		fmt.Fprint(writer, prompt)
		if !scanner.Scan() {
			return 0, false
		}
		v, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil {
			fmt.Fprintln(writer, "\nInvalid input! Please enter a number.")
			continue
		}
		return v, true
	}
}

// promptFloat re-prompts until the scanner yields a number.
func promptFloat(writer io.Writer, scanner *bufio.Scanner, prompt string) (float64, bool) {
	for {
		fmt.Fprint(writer, prompt)
		if !scanner.Scan() {
			return 0, false
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(scanner.Text()), 64)
		if err != nil {
			fmt.Fprintln(writer, "\nInvalid input! Please enter a number.")
			continue
		}
		return v, true
	}
}

// promptChoice shows a numbered menu and re-prompts until one of the
// options is selected.
func promptChoice(writer io.Writer, scanner *bufio.Scanner, header string, options []string) (string, bool) {
	for {
		fmt.Fprintln(writer, header)
		for i, option := range options {
			fmt.Fprintf(writer, "%d. %s\n", i+1, option)
		}
		n, ok := promptInt(writer, scanner, "Choose an option: ")
		if !ok {
			return "", false
		}
		if n >= 1 && n <= len(options) {
			return options[n-1], true
		}
		fmt.Fprintln(writer, "\nPlease choose a correct option.")
	}
}
