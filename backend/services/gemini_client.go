package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"aitutor/backend/config"
)

// ErrChatTimeout marks a chat completion abandoned client-side. The upstream
// call is not cancelled server-side and may still complete and be billed.
var ErrChatTimeout = errors.New("chat completion timed out")

// Message is one turn of a chat conversation as accepted by the chat API.
type Message struct {
	Role    string `json:"role"` // user, assistant, system
	Content string `json:"content"`
}

// ChatClient produces a tutor reply for a conversation. Satisfied by
// GeminiClient; tests substitute fakes.
type ChatClient interface {
	Generate(ctx context.Context, messages []Message, subject string) (string, error)
}

// GeminiClient calls the hosted generative-language API over plain HTTP.
type GeminiClient struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	log        *log.Logger
}

func NewGeminiClient(cfg *config.Config, logger *log.Logger) *GeminiClient {
	return &GeminiClient{
		baseURL:    strings.TrimSuffix(cfg.GeminiBaseURL, "/"),
		apiKey:     cfg.GeminiAPIKey,
		model:      cfg.GeminiModel,
		httpClient: &http.Client{Timeout: time.Duration(cfg.ChatTimeoutSec) * time.Second},
		log:        logger,
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Generate maps the conversation onto a generateContent call. The system
// prompt (explicit or the per-subject default) is folded into the final user
// turn; earlier turns become chat history.
func (c *GeminiClient) Generate(ctx context.Context, messages []Message, subject string) (string, error) {
	systemPrompt, history, userMessage := splitConversation(messages)
	if systemPrompt == "" {
		systemPrompt = DefaultSystemPrompt(subject)
	}

	contents := append(history, geminiContent{
		Role:  "user",
		Parts: []geminiPart{{Text: systemPrompt + "\n\nUser question: " + userMessage}},
	})

	request := geminiRequest{
		Contents: contents,
		GenerationConfig: geminiGenerationConfig{
			Temperature:     0.65,
			MaxOutputTokens: 1500,
			TopK:            40,
			TopP:            0.95,
		},
	}

	body, err := json.Marshal(request)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", ErrChatTimeout
		}
		var netErr interface{ Timeout() bool }
		if errors.As(err, &netErr) && netErr.Timeout() {
			return "", ErrChatTimeout
		}
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("gemini http %d: %s", resp.StatusCode, string(raw))
	}

	var parsed geminiResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("gemini decode error: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("gemini error %d: %s", parsed.Error.Code, parsed.Error.Message)
	}
	if len(parsed.Candidates) == 0 {
		return "", errors.New("gemini returned no candidates")
	}

	var text strings.Builder
	for _, part := range parsed.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}
	return text.String(), nil
}

// splitConversation separates the system prompt and the final user message
// from the preceding history.
func splitConversation(messages []Message) (systemPrompt string, history []geminiContent, userMessage string) {
	for i, msg := range messages {
		isLast := i == len(messages)-1
		switch msg.Role {
		case "system":
			systemPrompt = msg.Content
		case "user":
			if isLast {
				userMessage = msg.Content
			} else {
				history = append(history, geminiContent{Role: "user", Parts: []geminiPart{{Text: msg.Content}}})
			}
		case "assistant":
			history = append(history, geminiContent{Role: "model", Parts: []geminiPart{{Text: msg.Content}}})
		}
	}
	return systemPrompt, history, userMessage
}

// DefaultSystemPrompt is used when the client did not supply a system turn.
func DefaultSystemPrompt(subject string) string {
	title := subject
	if title != "" {
		title = strings.ToUpper(title[:1]) + title[1:]
	}
	return fmt.Sprintf("You are an AI tutor specializing in %s. Provide accurate and concise assistance to help the student learn effectively. Use clear examples and be direct in your explanations.", title)
}
