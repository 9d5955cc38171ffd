package slides

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

const systemPrompt = `You are a slide layout analyst. You receive one slide image and reconstruct it as structured data: the background color and every text block and image region with its position and size. Respond with a single JSON object and nothing else.`

const analysisPrompt = `Analyze this slide image and return its structure.

Rules:
- backgroundColor: the dominant background color as a hex code.
- For every text block: type "text", the exact text as content, and x/y/width/height as percentages (0-100) of the slide canvas. Include fontSize (points), fontColor (hex), isBold and textAlign only when you can infer them.
- For every pictorial region (photo, chart, logo, illustration): type "image", a short visual description as content, and its x/y/width/height percentages.
- List elements in reading order, top to bottom.`

// buildPrompt assembles the user prompt for one analysis. When notesHTML is
// non-empty it is converted from HTML to Markdown and appended as context;
// speaker notes exported from slide editors come as HTML fragments.
func buildPrompt(notesHTML string) (string, error) {
	if notesHTML == "" {
		return analysisPrompt, nil
	}

	markdown, err := htmltomarkdown.ConvertString(notesHTML)
	if err != nil {
		return "", fmt.Errorf("failed to convert speaker notes to Markdown: %w", err)
	}

	notes := strings.TrimSpace(markdown)
	if notes == "" {
		return analysisPrompt, nil
	}

	return analysisPrompt + "\n\nSpeaker notes for this slide (context only, do not output them):\n" + notes, nil
}
