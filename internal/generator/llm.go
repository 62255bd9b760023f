package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/quizmaster/backend/internal/domain/quiz"
)

// LLMGenerator builds quizzes by calling an OpenAI-compatible chat endpoint
// (Ollama, LM Studio, vLLM, a hosted gateway, etc.).
type LLMGenerator struct {
	url    string       // e.g. "http://localhost:1234"
	model  string       // e.g. "qwen3-8b"
	client *http.Client // reused across calls
}

// Compile-time check: *LLMGenerator satisfies the Generator interface.
var _ Generator = (*LLMGenerator)(nil)

// NewLLMGenerator creates a generator that calls the given LLM endpoint.
func NewLLMGenerator(url, model string) *LLMGenerator {
	return &LLMGenerator{
		url:   url,
		model: model,
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// Generate makes a single generation attempt. Any failure (transport,
// non-JSON output, structurally invalid quiz) comes back as a GenerateError;
// retrying is left to the user.
func (g *LLMGenerator) Generate(ctx context.Context, text, imageBase64 string) (*quiz.QuizData, error) {
	raw, err := g.callLLM(ctx, buildQuizPrompt(text), imageBase64)
	if err != nil {
		return nil, &GenerateError{Reason: "LLM call failed", Wrapped: err}
	}

	jsonStr := extractJSON(raw)
	if jsonStr == "" {
		return nil, &GenerateError{Reason: "no JSON object found in LLM response"}
	}

	var data quiz.QuizData
	if err := json.Unmarshal([]byte(jsonStr), &data); err != nil {
		return nil, &GenerateError{Reason: "invalid JSON from LLM", Wrapped: err}
	}

	if err := data.Validate(); err != nil {
		return nil, &GenerateError{Reason: "invalid quiz structure", Wrapped: err}
	}

	return &data, nil
}

// ============================================================================
// LLM communication
// ============================================================================

type llmRequest struct {
	Model       string       `json:"model"`
	Messages    []llmMessage `json:"messages"`
	Temperature float64      `json:"temperature"`
}

type llmMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"` // string, or content parts when an image is attached
}

type contentPart struct {
	Type     string    `json:"type"` // "text" or "image_url"
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type llmResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// callLLM sends a single request to the LLM and returns the raw text response.
// A non-empty imageBase64 is attached as a data-URL image part.
func (g *LLMGenerator) callLLM(ctx context.Context, prompt, imageBase64 string) (string, error) {
	var userContent any = prompt
	if imageBase64 != "" {
		// Strip a data-URL prefix if the caller included one.
		if idx := strings.Index(imageBase64, ","); idx != -1 && strings.HasPrefix(imageBase64, "data:") {
			imageBase64 = imageBase64[idx+1:]
		}
		userContent = []contentPart{
			{Type: "image_url", ImageURL: &imageURL{URL: "data:image/jpeg;base64," + imageBase64}},
			{Type: "text", Text: prompt},
		}
	}

	reqBody := llmRequest{
		Model: g.model,
		Messages: []llmMessage{
			{Role: "user", Content: userContent},
		},
		Temperature: 0,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url+"/v1/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("LLM request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("LLM returned status %d", resp.StatusCode)
	}

	var llmResp llmResponse
	if err := json.NewDecoder(resp.Body).Decode(&llmResp); err != nil {
		return "", fmt.Errorf("failed to decode LLM response: %w", err)
	}

	if len(llmResp.Choices) == 0 {
		return "", fmt.Errorf("LLM returned no choices")
	}

	content := llmResp.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("LLM returned empty content")
	}

	return content, nil
}

// ============================================================================
// JSON extraction
// ============================================================================

// extractJSON finds the outermost JSON object in a string. Models sometimes
// wrap their output in markdown fences or prose; this handles nested braces
// correctly and skips braces inside quoted strings.
func extractJSON(s string) string {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i, ch := range s {
		if escaped {
			escaped = false
			continue
		}
		if ch == '\\' && inString {
			escaped = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		if ch == '{' {
			if depth == 0 {
				start = i
			}
			depth++
		} else if ch == '}' {
			depth--
			if depth == 0 && start != -1 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

// ============================================================================
// Prompt builder. Short and directive so small models stay on format.
// The JSON schema comes last so it's the final thing the model sees.
// ============================================================================

func buildQuizPrompt(text string) string {
	return fmt.Sprintf(`/no_think
You are an intelligent quiz organizer and generator. The user has provided input (text and/or an image).

YOUR TASK:
1. ANALYZE the input.
   - If an IMAGE is provided, it might be a photo of a quiz, notes, or a diagram. EXTRACT the questions or content from it.
   - If TEXT is provided, analyze it as notes or questions.

2. MODE DETECTION:
   A) RAW QUESTIONS (from image/text):
      - Extract them exactly. Fix typos.
      - If options exist (A, B, C), use MULTIPLE_CHOICE.
      - If no options, use FILL_IN_BLANK.
      - SOLVE each question to get the correctAnswer.
      - GENERATE an educational explanation.
   B) STUDY MATERIAL (notes/articles):
      - GENERATE 5-10 challenging questions based on the content.

RULES:
- "type" is MULTIPLE_CHOICE or FILL_IN_BLANK.
- "options" has 4 strings for MULTIPLE_CHOICE and is [] for FILL_IN_BLANK.
- "id" is a unique integer per question, starting at 0.

INPUT TEXT:
%s

Respond with ONLY this JSON — no explanation, no markdown:
{"title": "...", "description": "...", "questions": [{"id": 0, "type": "...", "questionText": "...", "options": [...], "correctAnswer": "...", "explanation": "..."}]}`,
		text)
}
