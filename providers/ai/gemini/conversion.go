package gemini

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/slidesense/slidesense/providers/ai"
)

// requestToGemini converts an ai.ChatRequest to a Gemini generateContentRequest.
func requestToGemini(request ai.ChatRequest) generateContentRequest {
	req := generateContentRequest{}

	// Build system instruction
	if request.SystemPrompt != "" {
		req.SystemInstruction = &systemInstruction{
			Parts: []part{{Text: request.SystemPrompt}},
		}
	}

	// Build contents from messages
	req.Contents = buildContents(request.Messages)

	// Build generation config
	req.GenerationConfig = buildGenerationConfig(request.GenerationConfig, request.ResponseFormat)

	return req
}

// buildContents converts ai.Message slice to Gemini content slice.
// Role mapping: user -> user, assistant -> model, system -> user
func buildContents(messages []ai.Message) []content {
	var contents []content

	for _, msg := range messages {
		switch msg.Role {
		case ai.RoleUser:
			userContent := content{Role: "user"}
			// Use multimodal ContentParts if available, otherwise fall back to text Content
			if len(msg.ContentParts) > 0 {
				userContent.Parts = contentPartsToGeminiParts(msg.ContentParts)
			} else {
				userContent.Parts = []part{{Text: msg.Content}}
			}
			contents = append(contents, userContent)

		case ai.RoleAssistant:
			c := content{Role: "model"}
			if len(msg.ContentParts) > 0 {
				c.Parts = contentPartsToGeminiParts(msg.ContentParts)
			} else if msg.Content != "" {
				c.Parts = []part{{Text: msg.Content}}
			}
			if len(c.Parts) > 0 {
				contents = append(contents, c)
			}

		case ai.RoleSystem:
			// System messages should go to SystemInstruction, not here.
			// If someone passes a system message in Messages, convert to user message
			contents = append(contents, content{
				Role:  "user",
				Parts: []part{{Text: msg.Content}},
			})
		}
	}

	return contents
}

// contentPartsToGeminiParts converts generic ContentPart slices to Gemini part slices.
// Image parts choose between inlineData (base64) and fileData (URI) based on
// which field is populated; URI takes precedence when both are set.
func contentPartsToGeminiParts(contentParts []ai.ContentPart) []part {
	var parts []part
	for _, contentPart := range contentParts {
		switch contentPart.Type {
		case ai.ContentTypeText:
			parts = append(parts, part{Text: contentPart.Text})

		case ai.ContentTypeImage:
			if contentPart.Image == nil {
				continue
			}
			if contentPart.Image.URI != "" {
				parts = append(parts, part{
					FileData: &fileData{
						MimeType: contentPart.Image.MimeType,
						FileURI:  contentPart.Image.URI,
					},
				})
			} else {
				parts = append(parts, part{
					InlineData: &inlineData{
						MimeType: contentPart.Image.MimeType,
						Data:     contentPart.Image.Data,
					},
				})
			}
		}
	}
	return parts
}

// buildGenerationConfig converts ai.GenerationConfig and ai.ResponseFormat to Gemini generationConfig.
func buildGenerationConfig(cfg *ai.GenerationConfig, respFmt *ai.ResponseFormat) *generationConfig {
	if cfg == nil && respFmt == nil {
		return nil
	}

	gc := &generationConfig{}

	if cfg != nil {
		if cfg.Temperature > 0 {
			t := float64(cfg.Temperature)
			gc.Temperature = &t
		}

		if cfg.TopP > 0 {
			p := float64(cfg.TopP)
			gc.TopP = &p
		}

		if cfg.MaxOutputTokens > 0 {
			gc.MaxOutputTokens = &cfg.MaxOutputTokens
		} else if cfg.MaxTokens > 0 {
			gc.MaxOutputTokens = &cfg.MaxTokens
		}
	}

	// Response format: a schema forces JSON output
	if respFmt != nil && respFmt.OutputSchema != nil {
		gc.ResponseMimeType = "application/json"
		schemaBytes, err := json.Marshal(respFmt.OutputSchema)
		if err == nil {
			gc.ResponseSchema = schemaBytes
		}
	}

	return gc
}

// geminiToGeneric converts a Gemini generateContentResponse to ai.ChatResponse.
func geminiToGeneric(resp generateContentResponse) *ai.ChatResponse {
	result := &ai.ChatResponse{
		Id:      fmt.Sprintf("gemini-%d", time.Now().UnixNano()),
		Model:   resp.ModelVersion,
		Object:  "chat.completion",
		Created: time.Now().Unix(),
	}

	// Handle empty response
	if len(resp.Candidates) == 0 {
		result.FinishReason = "error"
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			result.FinishReason = "content_filter"
			result.Refusal = resp.PromptFeedback.BlockReason
		}
		return result
	}

	candidate := resp.Candidates[0]
	result.FinishReason = mapFinishReason(candidate.FinishReason)

	// Extract text content; thought parts are reasoning summaries, not output
	if candidate.Content != nil {
		var textParts []string
		for _, p := range candidate.Content.Parts {
			if p.Text != "" && !p.Thought {
				textParts = append(textParts, p.Text)
			}
		}
		result.Content = strings.Join(textParts, "\n")
	}

	// Map usage
	if resp.UsageMetadata != nil {
		result.Usage = &ai.Usage{
			PromptTokens:     resp.UsageMetadata.PromptTokenCount,
			CompletionTokens: resp.UsageMetadata.CandidatesTokenCount,
			TotalTokens:      resp.UsageMetadata.TotalTokenCount,
		}
	}

	return result
}

// mapFinishReason converts Gemini finish reason to ai.ChatResponse finish reason.
func mapFinishReason(geminiReason string) string {
	switch geminiReason {
	case "MAX_TOKENS":
		return "length"
	case "SAFETY", "RECITATION":
		return "content_filter"
	default:
		// STOP, OTHER, and unknown reasons all map to stop
		return "stop"
	}
}
