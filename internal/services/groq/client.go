package groq

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"subweave/internal/segment"
)

const (
	defaultBaseURL            = "https://api.groq.com/openai/v1"
	defaultTranscriptionModel = "whisper-large-v3"
	defaultTranslationModel   = "gemma2-9b-it"
	translationTemperature    = 0.3
)

// Client wraps the Groq OpenAI-compatible API for transcription and
// translation. Construct one per process and pass it as an explicit handle;
// nothing here holds global state.
type Client struct {
	api                *openai.Client
	transcriptionModel string
	translationModel   string
}

// Option customizes the client.
type Option func(*settings)

type settings struct {
	baseURL            string
	transcriptionModel string
	translationModel   string
	httpClient         openai.HTTPDoer
}

// WithBaseURL overrides the API base (useful for tests/mocks).
func WithBaseURL(base string) Option {
	return func(s *settings) {
		if base = strings.TrimSpace(base); base != "" {
			s.baseURL = strings.TrimRight(base, "/")
		}
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(doer openai.HTTPDoer) Option {
	return func(s *settings) {
		if doer != nil {
			s.httpClient = doer
		}
	}
}

// WithTranscriptionModel overrides the speech-to-text model.
func WithTranscriptionModel(model string) Option {
	return func(s *settings) {
		if model = strings.TrimSpace(model); model != "" {
			s.transcriptionModel = model
		}
	}
}

// WithTranslationModel overrides the chat model used for translation.
func WithTranslationModel(model string) Option {
	return func(s *settings) {
		if model = strings.TrimSpace(model); model != "" {
			s.translationModel = model
		}
	}
}

// NewClient constructs a Groq API client.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("groq: api key required")
	}
	s := settings{
		baseURL:            defaultBaseURL,
		transcriptionModel: defaultTranscriptionModel,
		translationModel:   defaultTranslationModel,
	}
	for _, opt := range opts {
		opt(&s)
	}
	cfg := openai.DefaultConfig(strings.TrimSpace(apiKey))
	cfg.BaseURL = s.baseURL
	if s.httpClient != nil {
		cfg.HTTPClient = s.httpClient
	}
	return &Client{
		api:                openai.NewClientWithConfig(cfg),
		transcriptionModel: s.transcriptionModel,
		translationModel:   s.translationModel,
	}, nil
}

// Transcript is a transcription result: the full text plus time-coded
// segments when the service supplies them. Segments may be empty; callers
// fall back to whole-clip timing in that case.
type Transcript struct {
	Text     string
	Language string
	Segments []segment.Segment
}

// Transcribe runs speech-to-text on the audio file at path. The verbose
// response format is requested so segment-level timing comes back whenever
// the model produces it.
func (c *Client) Transcribe(ctx context.Context, audioPath, sourceLang string) (Transcript, error) {
	resp, err := c.api.CreateTranscription(ctx, openai.AudioRequest{
		Model:    c.transcriptionModel,
		FilePath: audioPath,
		Format:   openai.AudioResponseFormatVerboseJSON,
		Language: sourceLang,
	})
	if err != nil {
		return Transcript{}, fmt.Errorf("groq transcribe: %w", err)
	}

	out := Transcript{
		Text:     strings.TrimSpace(resp.Text),
		Language: resp.Language,
	}
	for _, s := range resp.Segments {
		text := strings.TrimSpace(s.Text)
		if text == "" || s.End <= s.Start {
			continue
		}
		out.Segments = append(out.Segments, segment.Segment{Start: s.Start, End: s.End, Text: text})
	}
	return out, nil
}

// Translate translates a whole text block into the target language, returning
// a single undifferentiated string.
func (c *Client) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", errors.New("groq translate: empty text")
	}
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.translationModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: translateSystemPrompt(targetLanguage)},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Temperature: translationTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("groq translate: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("groq translate: empty choices")
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", errors.New("groq translate: empty content")
	}
	return content, nil
}

// TranslateSegments translates each entry independently via a numbered-line
// protocol, preserving count and order so the result maps one-to-one onto
// the original segments. A response whose line count diverges is rejected;
// the caller falls back to whole-text translation.
func (c *Client) TranslateSegments(ctx context.Context, entries []string, targetLanguage string) ([]string, error) {
	if len(entries) == 0 {
		return nil, errors.New("groq translate segments: no entries")
	}
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.translationModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: segmentSystemPrompt(targetLanguage, len(entries))},
			{Role: openai.ChatMessageRoleUser, Content: numberEntries(entries)},
		},
		Temperature: translationTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("groq translate segments: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("groq translate segments: empty choices")
	}
	translated, err := parseNumbered(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, fmt.Errorf("groq translate segments: %w", err)
	}
	if len(translated) != len(entries) {
		return nil, fmt.Errorf("groq translate segments: got %d lines, want %d", len(translated), len(entries))
	}
	return translated, nil
}

func translateSystemPrompt(targetLanguage string) string {
	return fmt.Sprintf("You are a professional subtitle translator. Translate the user's text into natural, fluent %s, preserving the original tone and meaning. Output only the translation.", targetLanguage)
}

func segmentSystemPrompt(targetLanguage string, count int) string {
	return fmt.Sprintf("You are a professional subtitle translator. The user sends %d numbered subtitle lines. Translate each line into natural, fluent %s. Reply with exactly %d lines in the same numbered format, one translation per line, and nothing else.", count, targetLanguage, count)
}
