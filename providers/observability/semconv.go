package observability

// Semantic conventions for observability attributes. These constants define
// standard attribute names so that every component emits consistent keys.

// --- LLM Provider Attributes ---

const (
	// AttrLLMProvider is the name of the LLM provider (e.g., "gemini")
	AttrLLMProvider = "llm.provider"

	// AttrLLMModel is the model identifier (e.g., "gemini-2.0-flash-lite")
	AttrLLMModel = "llm.model"

	// AttrLLMEndpoint is the API endpoint URL
	AttrLLMEndpoint = "llm.endpoint"

	// AttrLLMResponseID is the unique response identifier from the provider
	AttrLLMResponseID = "llm.response.id"

	// AttrLLMFinishReason is the reason the generation finished
	AttrLLMFinishReason = "llm.finish_reason"
)

// --- Token Usage Attributes ---

const (
	// AttrLLMTokensPrompt is the number of prompt tokens
	AttrLLMTokensPrompt = "llm.tokens.prompt" // #nosec G101 -- Not a credential, token refers to LLM tokens

	// AttrLLMTokensCompletion is the number of completion tokens
	AttrLLMTokensCompletion = "llm.tokens.completion" // #nosec G101 -- Not a credential, token refers to LLM tokens

	// AttrLLMTokensTotal is the total number of tokens
	AttrLLMTokensTotal = "llm.tokens.total" // #nosec G101 -- Not a credential, token refers to LLM tokens
)

// --- Slide Analysis Attributes ---

const (
	// AttrSlideMimeType is the MIME type of the slide image under analysis
	AttrSlideMimeType = "slide.mime_type"

	// AttrSlideImageBytes is the size of the inline slide image payload
	AttrSlideImageBytes = "slide.image.bytes"

	// AttrSlideElementCount is the number of elements reconstructed from a slide
	AttrSlideElementCount = "slide.element_count"

	// AttrSlideBackgroundColor is the detected background color
	AttrSlideBackgroundColor = "slide.background_color"
)

// --- HTTP Attributes ---

const (
	// AttrHTTPMethod is the HTTP method (GET, POST, etc.)
	AttrHTTPMethod = "http.method"

	// AttrHTTPStatusCode is the HTTP response status code
	AttrHTTPStatusCode = "http.status_code"

	// AttrHTTPURL is the full request URL
	AttrHTTPURL = "http.url"

	// AttrHTTPRequestBodySize is the request body size in bytes
	AttrHTTPRequestBodySize = "http.request.body.size"

	// AttrHTTPResponseBodySize is the response body size in bytes
	AttrHTTPResponseBodySize = "http.response.body.size"
)

// --- General Attributes ---

const (
	// AttrError is the error message
	AttrError = "error"

	// AttrDuration is the operation duration
	AttrDuration = "duration"

	// AttrStatus is the operation status
	AttrStatus = "status"

	// AttrStatusDescription is the status description
	AttrStatusDescription = "status_description"
)

// --- Span Names ---

const (
	// SpanSlideAnalyze is the span name for one slide analysis
	SpanSlideAnalyze = "slide.analyze"

	// SpanLLMRequest is the span name for LLM API requests
	SpanLLMRequest = "llm.request"
)

// --- Event Names ---

const (
	// EventLLMRequestStart marks the start of an LLM request
	EventLLMRequestStart = "llm.request.start"

	// EventLLMRequestEnd marks the end of an LLM request
	EventLLMRequestEnd = "llm.request.end"

	// EventTokensReceived marks when tokens are received from the LLM
	EventTokensReceived = "llm.tokens.received" // #nosec G101 -- Not a credential, token refers to LLM tokens

	// EventResponseParsed marks when a model response was parsed into a slide analysis
	EventResponseParsed = "slide.response.parsed"
)
