package slides

import (
	"strings"
	"testing"
)

func TestBuildPrompt_NoNotes(t *testing.T) {
	got, err := buildPrompt("")
	if err != nil {
		t.Fatalf("buildPrompt() error: %v", err)
	}
	if got != analysisPrompt {
		t.Errorf("buildPrompt() = %q, want the base prompt unchanged", got)
	}
}

func TestBuildPrompt_NotesConvertedToMarkdown(t *testing.T) {
	got, err := buildPrompt("<p>Mention the <strong>Q3 numbers</strong> here.</p>")
	if err != nil {
		t.Fatalf("buildPrompt() error: %v", err)
	}

	if !strings.HasPrefix(got, analysisPrompt) {
		t.Error("buildPrompt() does not start with the base prompt")
	}
	if !strings.Contains(got, "**Q3 numbers**") {
		t.Errorf("buildPrompt() = %q, want converted markdown notes", got)
	}
	if strings.Contains(got, "<strong>") {
		t.Errorf("buildPrompt() = %q, want no raw HTML", got)
	}
}

func TestBuildPrompt_BlankNotesIgnored(t *testing.T) {
	got, err := buildPrompt("<p>   </p>")
	if err != nil {
		t.Fatalf("buildPrompt() error: %v", err)
	}
	if got != analysisPrompt {
		t.Errorf("buildPrompt() = %q, want the base prompt unchanged", got)
	}
}
