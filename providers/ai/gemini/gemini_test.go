package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/slidesense/slidesense/providers/ai"
)

func TestSendMessage(t *testing.T) {
	var gotPath, gotAPIKey string
	var gotRequest generateContentRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAPIKey = r.Header.Get("x-goog-api-key")
		if err := json.NewDecoder(r.Body).Decode(&gotRequest); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}

		response := generateContentResponse{
			ModelVersion: "gemini-2.5-flash",
			Candidates: []candidate{
				{
					Content:      &content{Role: "model", Parts: []part{{Text: `{"backgroundColor":"#FFF","elements":[]}`}}},
					FinishReason: "STOP",
				},
			},
			UsageMetadata: &usageMetadata{PromptTokenCount: 10, CandidatesTokenCount: 5, TotalTokenCount: 15},
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			t.Errorf("failed to encode response: %v", err)
		}
	}))
	defer server.Close()

	provider := New().WithAPIKey("test-key").WithBaseURL(server.URL)

	resp, err := provider.SendMessage(context.Background(), ai.ChatRequest{
		Model: Model25Flash,
		Messages: []ai.Message{
			{Role: ai.RoleUser, ContentParts: []ai.ContentPart{
				ai.NewTextPart("Analyze this."),
				ai.NewImagePart("image/png", "aW1hZ2U="),
			}},
		},
	})
	if err != nil {
		t.Fatalf("SendMessage() error: %v", err)
	}

	if !strings.Contains(gotPath, "gemini-2.5-flash:generateContent") {
		t.Errorf("request path = %q, want generateContent for gemini-2.5-flash", gotPath)
	}
	if gotAPIKey != "test-key" {
		t.Errorf("x-goog-api-key = %q, want test-key", gotAPIKey)
	}
	if len(gotRequest.Contents) != 1 || len(gotRequest.Contents[0].Parts) != 2 {
		t.Errorf("wire request contents = %+v, want one content with two parts", gotRequest.Contents)
	}

	if resp.Content != `{"backgroundColor":"#FFF","elements":[]}` {
		t.Errorf("content = %q", resp.Content)
	}
	if resp.Model != "gemini-2.5-flash" {
		t.Errorf("model = %q, want gemini-2.5-flash", resp.Model)
	}
	if resp.Usage == nil || resp.Usage.TotalTokens != 15 {
		t.Errorf("usage = %+v", resp.Usage)
	}
}

func TestSendMessage_MissingAPIKey(t *testing.T) {
	provider := (&GeminiProvider{baseURL: defaultBaseURL, client: &http.Client{}})

	_, err := provider.SendMessage(context.Background(), ai.ChatRequest{
		Messages: []ai.Message{{Role: ai.RoleUser, Content: "hi"}},
	})
	if err == nil || !strings.Contains(err.Error(), "GEMINI_API_KEY") {
		t.Errorf("SendMessage() error = %v, want missing API key error", err)
	}
}

func TestSendMessage_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	provider := New().WithAPIKey("test-key").WithBaseURL(server.URL)

	_, err := provider.SendMessage(context.Background(), ai.ChatRequest{
		Messages: []ai.Message{{Role: ai.RoleUser, Content: "hi"}},
	})
	if err == nil || !strings.Contains(err.Error(), "429") {
		t.Errorf("SendMessage() error = %v, want non-2xx status error", err)
	}
}

func TestIsStopMessage(t *testing.T) {
	provider := New()

	tests := []struct {
		name    string
		message *ai.ChatResponse
		want    bool
	}{
		{name: "nil message", message: nil, want: true},
		{name: "stop", message: &ai.ChatResponse{FinishReason: "stop", Content: "x"}, want: true},
		{name: "length", message: &ai.ChatResponse{FinishReason: "length", Content: "x"}, want: true},
		{name: "content filter", message: &ai.ChatResponse{FinishReason: "content_filter"}, want: true},
		{name: "empty content", message: &ai.ChatResponse{}, want: true},
		{name: "content without finish reason", message: &ai.ChatResponse{Content: "partial"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := provider.IsStopMessage(tt.message); got != tt.want {
				t.Errorf("IsStopMessage() = %v, want %v", got, tt.want)
			}
		})
	}
}
