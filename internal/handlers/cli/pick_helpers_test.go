package cli

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/AntonioJCosta/aliasview/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliasview/internal/core/testutil"
	"github.com/AntonioJCosta/aliasview/internal/handlers/ui"
)

func TestParseNumericSelectionInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		count   int
		want    []int
		wantErr bool
	}{
		{name: "empty input selects nothing", input: "\n", count: 3, want: []int{}},
		{name: "none", input: "None", count: 3, want: []int{}},
		{name: "all", input: "all\n", count: 3, want: []int{0, 1, 2}},
		{name: "single number", input: "2", count: 3, want: []int{1}},
		{name: "list and range", input: "1, 3-4", count: 5, want: []int{0, 2, 3}},
		{name: "duplicates are dropped", input: "2,1-3,2", count: 3, want: []int{1, 0, 2}},
		{name: "zero", input: "0", count: 3, wantErr: true},
		{name: "out of range", input: "4", count: 3, wantErr: true},
		{name: "reversed range", input: "3-1", count: 3, wantErr: true},
		{name: "range past end", input: "2-9", count: 3, wantErr: true},
		{name: "not a number", input: "abc", count: 3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseNumericSelectionInput(tt.input, tt.count)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseNumericSelectionInput() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseNumericSelectionInput() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatchSelectedLines(t *testing.T) {
	ll := alias.Alias{Name: "ll", Command: "ls -la"}
	gs := alias.Alias{Name: "gs", Command: "git status"}
	byLine := map[string]alias.Alias{
		formatAliasLine(ll): ll,
		formatAliasLine(gs): gs,
	}

	got := matchSelectedLines("alias gs='git status'\n\nalias ll='ls -la'\nalias zz='unknown'\n", byLine)
	want := []alias.Alias{gs, ll}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("matchSelectedLines() = %v, want %v", got, want)
	}
}

func TestSelectAliasesNumerically(t *testing.T) {
	ui.DisableColors()
	candidates := []alias.Alias{
		{Name: "ll", Command: "ls -la"},
		{Name: "gs", Command: "git status"},
	}
	var prompts strings.Builder

	got, err := selectAliasesNumerically(strings.NewReader("2"), &prompts, candidates)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, candidates[1:]) {
		t.Errorf("selectAliasesNumerically() = %v, want %v", got, candidates[1:])
	}
	if !strings.Contains(prompts.String(), "2. alias gs='git status'") {
		t.Errorf("prompt should list candidates, got %q", prompts.String())
	}

	if _, err := selectAliasesNumerically(strings.NewReader("7\n"), &prompts, candidates); err == nil {
		t.Error("expected an error for an out-of-range choice")
	}
	if _, err := selectAliasesNumerically(strings.NewReader(""), &prompts, candidates); err == nil {
		t.Error("expected an error for empty input without newline")
	}
}

func withoutFZF(t *testing.T) {
	t.Helper()
	saved := lookPath
	t.Cleanup(func() { lookPath = saved })
	lookPath = func(string) (string, error) { return "", errors.New("not found") }
}

func TestPickCommand_NumericFallback(t *testing.T) {
	withoutFZF(t)

	run, err := execute(t, testutil.StaticShellConfigReader(sampleLines...), &testutil.MockEditorLauncher{}, "1,3\n", "pick")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := run.stdout.String(); got != "ls -la\ngit push\n" {
		t.Errorf("stdout = %q, want commands of the picked aliases", got)
	}
	if !strings.Contains(run.stderr.String(), "fzf not found") {
		t.Errorf("stderr should mention the fallback, got %q", run.stderr.String())
	}
}

func TestPickCommand_NamesWithQuery(t *testing.T) {
	withoutFZF(t)

	run, err := execute(t, testutil.StaticShellConfigReader(sampleLines...), &testutil.MockEditorLauncher{}, "all\n", "pick", "--names", "git")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := run.stdout.String(); got != "gs\ngp\n" {
		t.Errorf("stdout = %q, want gs and gp", got)
	}
}

func TestPickCommand_NoCandidates(t *testing.T) {
	withoutFZF(t)

	run, err := execute(t, testutil.StaticShellConfigReader(sampleLines...), &testutil.MockEditorLauncher{}, "", "pick", "zzz")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if run.stdout.Len() != 0 {
		t.Errorf("expected no output, got %q", run.stdout.String())
	}
	if !strings.Contains(run.stderr.String(), "No aliases to pick from.") {
		t.Errorf("stderr = %q", run.stderr.String())
	}
}

func TestPickCommand_InvalidSelection(t *testing.T) {
	withoutFZF(t)

	_, err := execute(t, testutil.StaticShellConfigReader(sampleLines...), &testutil.MockEditorLauncher{}, "9\n", "pick")
	if err == nil {
		t.Fatal("expected an error for an invalid selection")
	}
}
