package slides

import (
	"fmt"
	"strings"

	"github.com/slidesense/slidesense/internal/utils"
)

// MalformedJSONError reports that a model response still failed to parse
// after sanitization and one JSON-repair pass. It is terminal for the call:
// no partial Analysis is available and the caller decides whether to rerun
// the whole remote analysis.
type MalformedJSONError struct {
	// Preview is a truncated copy of the sanitized payload, for diagnostics.
	Preview string
	Err     error
}

func (e *MalformedJSONError) Error() string {
	return fmt.Sprintf("malformed JSON in model response: %v", e.Err)
}

func (e *MalformedJSONError) Unwrap() error { return e.Err }

// Parse converts a raw model response into an Analysis.
//
// An empty (or whitespace-only) response is recovered locally by returning
// [DefaultAnalysis] without attempting a parse. Anything else is run through
// [Sanitize] and unmarshalled; if that fails, the payload gets one
// jsonrepair pass and a retry. A response that still fails to parse returns
// a *MalformedJSONError and a nil Analysis; failures are never downgraded
// to a default or partial result.
func Parse(raw string) (*Analysis, error) {
	if strings.TrimSpace(raw) == "" {
		return DefaultAnalysis(), nil
	}

	cleaned := Sanitize(raw)
	analysis, err := utils.ParseStringAs[Analysis](cleaned)
	if err != nil {
		return nil, &MalformedJSONError{
			Preview: utils.TruncateStringDefault(cleaned),
			Err:     err,
		}
	}

	if analysis.BackgroundColor == "" {
		analysis.BackgroundColor = DefaultBackgroundColor
	}
	if analysis.Elements == nil {
		analysis.Elements = []Element{}
	}
	return &analysis, nil
}
