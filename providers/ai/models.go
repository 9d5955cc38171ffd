package ai

import "github.com/slidesense/slidesense/internal/jsonschema"

/*
	##### PROVIDER INPUT #####
*/

// ChatRequest represents a request to send a chat message
type ChatRequest struct {
	Model            string            `json:"model,omitempty"`             // Model name or identifier
	Messages         []Message         `json:"messages"`                    // Contains all messages in the conversation except system prompt
	SystemPrompt     string            `json:"system_prompt,omitempty"`     // Optional system prompt
	ResponseFormat   *ResponseFormat   `json:"response_format,omitempty"`   // Optional response format
	GenerationConfig *GenerationConfig `json:"generation_config,omitempty"` // Optional generation configuration
}

// Message represents a single message in a conversation
type Message struct {
	// Core fields (always present)
	Role    MessageRole `json:"role"`
	Content string      `json:"content,omitempty"`

	// ContentParts carries multimodal content (text plus images). When set it
	// takes precedence over Content.
	ContentParts []ContentPart `json:"content_parts,omitempty"`
}

// ContentType discriminates the variants of a ContentPart.
type ContentType string

const (
	ContentTypeText  ContentType = "text"
	ContentTypeImage ContentType = "image"
)

// ContentPart is one unit of multimodal message content. Exactly one of the
// payload fields matching Type is populated.
type ContentPart struct {
	Type  ContentType `json:"type"`
	Text  string      `json:"text,omitempty"`
	Image *ImageData  `json:"image,omitempty"`
}

// ImageData references image content either inline (base64-encoded Data) or
// by URI. When both are set, URI takes precedence.
type ImageData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data,omitempty"` // base64-encoded bytes
	URI      string `json:"uri,omitempty"`
}

// NewTextPart returns a text content part.
func NewTextPart(text string) ContentPart {
	return ContentPart{Type: ContentTypeText, Text: text}
}

// NewImagePart returns an inline image content part. data must be the
// base64-encoded image bytes.
func NewImagePart(mimeType, data string) ContentPart {
	return ContentPart{Type: ContentTypeImage, Image: &ImageData{MimeType: mimeType, Data: data}}
}

// NewImageURIPart returns an image content part referencing an uploaded or
// remote file by URI.
func NewImageURIPart(mimeType, uri string) ContentPart {
	return ContentPart{Type: ContentTypeImage, Image: &ImageData{MimeType: mimeType, URI: uri}}
}

type GenerationConfig struct {
	MaxTokens       int     `json:"max_tokens,omitempty"`        // Optional max tokens for the response
	Temperature     float32 `json:"temperature,omitempty"`       // Sampling temperature [0..2]. Higher => more random; lower => more deterministic.
	TopP            float32 `json:"top_p,omitempty"`             // Nucleus (top-p) sampling [0..1]. Alternative to temperature.
	MaxOutputTokens int     `json:"max_output_tokens,omitempty"` // Optional max tokens specifically for the output (if supported by provider)
}

type ResponseFormat struct {
	OutputSchema *jsonschema.Schema `json:"output_schema,omitempty"` // Optional schema for structured response. Implementation may vary by provider.
	Strict       bool               `json:"strict,omitempty"`        // If true, the model must strictly adhere to the output schema, if possible.
}

/*
	##### PROVIDER OUTPUT #####
*/

type Usage struct {
	PromptTokens     int `json:"prompt_tokens,omitempty"`
	CompletionTokens int `json:"completion_tokens,omitempty"`
	TotalTokens      int `json:"total_tokens,omitempty"`
}

// ChatResponse represents the response from a chat completion
type ChatResponse struct {
	Id           string `json:"id"`
	Model        string `json:"model"`
	Object       string `json:"object"`
	Created      int64  `json:"created"`
	Content      string `json:"content"`
	FinishReason string `json:"finish_reason,omitempty"`
	Usage        *Usage `json:"usage,omitempty"`

	// Refusal is set when the model or the platform refuses to respond
	// (safety/policy). FinishReason is "content_filter" in that case.
	Refusal string `json:"refusal,omitempty"`
}

/*
	##### ENUMS #####
*/

// MessageRole represents the role of a message; compatible with string
type MessageRole string

const (
	RoleSystem    MessageRole = "system"    // System instructions/configuration
	RoleUser      MessageRole = "user"      // End-user message
	RoleAssistant MessageRole = "assistant" // Model response
)
