package cli

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/AntonioJCosta/aliasview/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasview/internal/handlers/ui"
)

// ErrFZFNotFound indicates that the fzf binary was not found in PATH.
var ErrFZFNotFound = errors.New("fzf binary not found in PATH")

// ErrFZFCancelled indicates that the user cancelled the fzf selection (e.g., by pressing Esc or Ctrl-C).
var ErrFZFCancelled = errors.New("fzf selection cancelled by user")

// lookPath is swapped in tests to simulate a missing fzf.
var lookPath = exec.LookPath

func formatAliasLine(a alias.Alias) string {
	return fmt.Sprintf("alias %s='%s'", a.Name, a.Command)
}

func selectAliasesViaFZF(candidates []alias.Alias) ([]alias.Alias, error) {
	fzfPath, err := lookPath("fzf")
	if err != nil {
		return nil, ErrFZFNotFound
	}

	var inputBuffer bytes.Buffer
	byLine := make(map[string]alias.Alias)
	for _, c := range candidates {
		line := formatAliasLine(c)
		byLine[line] = c
		inputBuffer.WriteString(line + "\n")
	}

	fzfCmd := exec.Command(fzfPath, "--multi", "--ansi", "--prompt", ui.PromptColor("Pick aliases (TAB to multi-select, Enter to confirm) > "))
	fzfCmd.Stdin = &inputBuffer

	var outBuffer bytes.Buffer
	var errBuffer bytes.Buffer
	fzfCmd.Stdout = &outBuffer
	// fzf draws its interface on stderr; keep it on the terminal.
	fzfCmd.Stderr = io.MultiWriter(os.Stderr, &errBuffer)

	if err := fzfCmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// Exit code 130 indicates user cancellation (e.g., Ctrl-C, Esc).
			if exitErr.ExitCode() == 130 {
				return nil, ErrFZFCancelled
			}
			// Exit code 1 with no output means no match was selected.
			if exitErr.ExitCode() == 1 && strings.TrimSpace(outBuffer.String()) == "" {
				return []alias.Alias{}, nil
			}
		}
		return nil, fmt.Errorf("fzf execution failed (stderr: %s): %w", strings.TrimSpace(errBuffer.String()), err)
	}

	return matchSelectedLines(outBuffer.String(), byLine), nil
}

// matchSelectedLines maps fzf output lines back to the aliases they were built from.
func matchSelectedLines(output string, byLine map[string]alias.Alias) []alias.Alias {
	var chosen []alias.Alias
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if selected, ok := byLine[trimmed]; ok {
			chosen = append(chosen, selected)
		}
	}
	return chosen
}

func displayForNumericSelection(w io.Writer, candidates []alias.Alias) {
	fmt.Fprintln(w, ui.PromptColor("Select aliases (e.g., 1,3-5, or 'all', 'none'):"))
	for i, c := range candidates {
		fmt.Fprintf(w, "%d. %s %s='%s'\n",
			i+1,
			ui.AliasKeywordColor("alias"),
			ui.AliasNameColor(c.Name),
			ui.AliasCmdColor(c.Command))
	}
}

func parseNumericSelectionInput(input string, count int) ([]int, error) {
	trimmedInput := strings.TrimSpace(strings.ToLower(input))
	if trimmedInput == "none" || trimmedInput == "" {
		return []int{}, nil
	}
	if trimmedInput == "all" {
		indices := make([]int, count)
		for i := 0; i < count; i++ {
			indices[i] = i
		}
		return indices, nil
	}

	var selections []int
	for _, part := range strings.Split(trimmedInput, ",") {
		part = strings.TrimSpace(part)
		if strings.Contains(part, "-") {
			rangeParts := strings.SplitN(part, "-", 2)
			start, err1 := strconv.Atoi(strings.TrimSpace(rangeParts[0]))
			end, err2 := strconv.Atoi(strings.TrimSpace(rangeParts[1]))
			if err1 != nil || err2 != nil || start <= 0 || end < start || end > count {
				return nil, fmt.Errorf("invalid range or number (max %d): %s", count, part)
			}
			for i := start; i <= end; i++ {
				selections = append(selections, i-1) // Convert to 0-based index
			}
		} else {
			num, err := strconv.Atoi(part)
			if err != nil || num <= 0 || num > count {
				return nil, fmt.Errorf("invalid number (max %d): %s", count, part)
			}
			selections = append(selections, num-1) // Convert to 0-based index
		}
	}

	// Ensure unique selections
	seen := make(map[int]bool)
	unique := make([]int, 0, len(selections))
	for _, idx := range selections {
		if !seen[idx] {
			seen[idx] = true
			unique = append(unique, idx)
		}
	}
	return unique, nil
}

func selectAliasesNumerically(in io.Reader, prompts io.Writer, candidates []alias.Alias) ([]alias.Alias, error) {
	displayForNumericSelection(prompts, candidates)
	fmt.Fprint(prompts, ui.PromptColor("Your choice: "))

	input, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && input != "") {
		return nil, fmt.Errorf("failed to read selection: %w", err)
	}

	indices, err := parseNumericSelectionInput(input, len(candidates))
	if err != nil {
		return nil, fmt.Errorf("invalid selection input: %w", err)
	}

	chosen := make([]alias.Alias, 0, len(indices))
	for _, idx := range indices {
		chosen = append(chosen, candidates[idx])
	}
	return chosen, nil
}
