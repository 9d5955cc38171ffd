package slides

import (
	"context"
	"errors"
	"fmt"

	"github.com/slidesense/slidesense/internal/jsonschema"
	"github.com/slidesense/slidesense/providers/ai"
	"github.com/slidesense/slidesense/providers/observability"
)

// Analyzer sends slide images to an LLM provider and converts the responses
// into Analysis values. The provider handle is passed in explicitly; the
// analyzer holds no process-wide state and is safe for concurrent use once
// constructed.
type Analyzer struct {
	provider ai.Provider
	model    string
	genCfg   *ai.GenerationConfig
	observer observability.Provider
	schema   *jsonschema.Schema
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithModel overrides the provider's default model.
func WithModel(model string) Option {
	return func(a *Analyzer) { a.model = model }
}

// WithGenerationConfig sets sampling parameters for the analysis requests.
func WithGenerationConfig(cfg ai.GenerationConfig) Option {
	return func(a *Analyzer) { a.genCfg = &cfg }
}

// WithObserver attaches an observer; every analysis then runs inside a span
// and the observer is available to the provider via the context.
func WithObserver(observer observability.Provider) Option {
	return func(a *Analyzer) { a.observer = observer }
}

// NewAnalyzer creates an Analyzer backed by the given provider. The response
// schema for the Analysis shape is generated once here and reused for every
// request.
func NewAnalyzer(provider ai.Provider, opts ...Option) (*Analyzer, error) {
	if provider == nil {
		return nil, errors.New("provider must not be nil")
	}

	schema, err := jsonschema.Generate[Analysis]()
	if err != nil {
		return nil, fmt.Errorf("failed to generate response schema: %w", err)
	}

	a := &Analyzer{
		provider: provider,
		schema:   schema,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Schema returns the JSON schema sent with every request. Useful for
// debugging and introspection.
func (a *Analyzer) Schema() *jsonschema.Schema {
	return a.schema
}

// Request describes one slide image to analyze. MimeType is required.
// Exactly one of ImageData (base64-encoded bytes) or ImageURI (uploaded or
// remote file reference) must be set. NotesHTML optionally carries the
// slide's exported speaker notes as an HTML fragment; they are converted to
// Markdown and appended to the prompt as context.
type Request struct {
	MimeType  string
	ImageData string
	ImageURI  string
	NotesHTML string
}

// Analyze sends the slide image to the provider and parses the response.
//
// The provider is called exactly once: transport failures (network, auth,
// quota) propagate unchanged, a safety block returns an explicit error, and
// a response that cannot be parsed returns a *MalformedJSONError. The only
// implicit recovery is an empty model response, which yields
// [DefaultAnalysis]. Retry policy belongs to the caller.
func (a *Analyzer) Analyze(ctx context.Context, req Request) (*Analysis, error) {
	if req.MimeType == "" {
		return nil, errors.New("request MimeType must not be empty")
	}
	if (req.ImageData == "") == (req.ImageURI == "") {
		return nil, errors.New("request must set exactly one of ImageData or ImageURI")
	}

	if a.observer != nil {
		ctx = observability.ContextWithObserver(ctx, a.observer)
		var span observability.Span
		ctx, span = a.observer.StartSpan(ctx, observability.SpanSlideAnalyze,
			observability.String(observability.AttrSlideMimeType, req.MimeType),
			observability.Int(observability.AttrSlideImageBytes, len(req.ImageData)),
		)
		defer span.End()
	}

	prompt, err := buildPrompt(req.NotesHTML)
	if err != nil {
		return nil, err
	}

	imagePart := ai.NewImagePart(req.MimeType, req.ImageData)
	if req.ImageURI != "" {
		imagePart = ai.NewImageURIPart(req.MimeType, req.ImageURI)
	}

	resp, err := a.provider.SendMessage(ctx, ai.ChatRequest{
		Model:        a.model,
		SystemPrompt: systemPrompt,
		Messages: []ai.Message{
			{
				Role: ai.RoleUser,
				ContentParts: []ai.ContentPart{
					ai.NewTextPart(prompt),
					imagePart,
				},
			},
		},
		ResponseFormat: &ai.ResponseFormat{
			OutputSchema: a.schema,
			Strict:       true,
		},
		GenerationConfig: a.genCfg,
	})
	if err != nil {
		a.recordError(ctx, err)
		return nil, err
	}

	if resp.FinishReason == "content_filter" {
		err := fmt.Errorf("analysis blocked by safety filter: %s", resp.Refusal)
		a.recordError(ctx, err)
		return nil, err
	}

	analysis, err := Parse(resp.Content)
	if err != nil {
		a.recordError(ctx, err)
		return nil, err
	}

	if span := observability.SpanFromContext(ctx); span != nil {
		span.AddEvent(observability.EventResponseParsed,
			observability.Int(observability.AttrSlideElementCount, len(analysis.Elements)),
			observability.String(observability.AttrSlideBackgroundColor, analysis.BackgroundColor),
		)
	}
	if a.observer != nil {
		a.observer.Debug(ctx, "slide analysis completed",
			observability.Int(observability.AttrSlideElementCount, len(analysis.Elements)),
		)
	}

	return analysis, nil
}

func (a *Analyzer) recordError(ctx context.Context, err error) {
	if span := observability.SpanFromContext(ctx); span != nil {
		span.RecordError(err)
		span.SetStatus(observability.StatusError, err.Error())
	}
}
