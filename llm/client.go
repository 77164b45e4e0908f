package llm

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	// DefaultModel is used when LLM_MODEL is not configured
	DefaultModel = "gemini-2.0-flash"

	maxRetries     = 3
	initialBackoff = time.Second

	// Prompts beyond this are truncated to stay inside context limits
	maxPromptChars = 30000
)

var (
	ErrEmptyResponse = errors.New("model returned empty response")
	ErrMissingAPIKey = errors.New("GEMINI_API_KEY not set")
)

// Message is one turn of conversation history, oldest first
type Message struct {
	Role    string // "user" or "assistant"
	Content string
}

// Client wraps the Gemini API for single-shot, text-in/text-out completions
type Client struct {
	genai *genai.Client
	model string
}

// NewClient creates a Gemini-backed LLM client
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Client{genai: client, model: model}, nil
}

// Close releases the underlying API connection
func (c *Client) Close() error {
	return c.genai.Close()
}

// Complete sends the message history to the model and returns its text
// response. Messages must be ordered oldest first and end with the user
// message to answer. Transient failures are retried with doubling backoff.
func (c *Client) Complete(ctx context.Context, systemPrompt string, messages []Message, temperature float32, maxTokens int32) (string, error) {
	if len(messages) == 0 {
		return "", errors.New("no messages to send")
	}

	model := c.genai.GenerativeModel(c.model)
	model.SetTemperature(temperature)
	if maxTokens > 0 {
		model.SetMaxOutputTokens(maxTokens)
	}
	if systemPrompt != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(systemPrompt)},
		}
	}

	session := model.StartChat()
	for _, msg := range messages[:len(messages)-1] {
		session.History = append(session.History, &genai.Content{
			Role:  genaiRole(msg.Role),
			Parts: []genai.Part{genai.Text(msg.Content)},
		})
	}

	prompt := messages[len(messages)-1].Content
	if len(prompt) > maxPromptChars {
		log.Printf("Warning: Prompt too long (%d chars), truncating to %d chars", len(prompt), maxPromptChars)
		prompt = prompt[:maxPromptChars] + "\n\n[Content truncated due to length...]"
	}

	var lastErr error
	backoff := initialBackoff
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(backoff)
			backoff *= 2
		}

		resp, err := session.SendMessage(ctx, genai.Text(prompt))
		if err != nil {
			lastErr = err
			continue
		}

		text := responseText(resp)
		if text == "" {
			lastErr = ErrEmptyResponse
			continue
		}
		return text, nil
	}

	return "", fmt.Errorf("generation failed after %d attempts: %w", maxRetries, lastErr)
}

// TranscribeImage asks the model to transcribe all visible text in an image.
// Used as the OCR backend for image uploads; format is the image subtype
// ("jpeg", "png").
func (c *Client) TranscribeImage(ctx context.Context, data []byte, format string) (string, error) {
	model := c.genai.GenerativeModel(c.model)
	model.SetTemperature(0)

	instruction := genai.Text("다음 이미지에 보이는 모든 텍스트를 순서대로 정확하게 옮겨 적어주세요. 설명이나 해석 없이 텍스트만 출력하세요.")

	var lastErr error
	backoff := initialBackoff
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(backoff)
			backoff *= 2
		}

		resp, err := model.GenerateContent(ctx, genai.ImageData(format, data), instruction)
		if err != nil {
			lastErr = err
			continue
		}

		text := responseText(resp)
		if text == "" {
			lastErr = ErrEmptyResponse
			continue
		}
		return text, nil
	}

	return "", fmt.Errorf("image transcription failed after %d attempts: %w", maxRetries, lastErr)
}

// genaiRole maps our message roles onto the Gemini API's role names
func genaiRole(role string) string {
	if role == "assistant" {
		return "model"
	}
	return "user"
}

// responseText concatenates the text parts of every candidate
func responseText(resp *genai.GenerateContentResponse) string {
	var b strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				b.WriteString(string(text))
			}
		}
	}
	return b.String()
}
