package summarizer

import (
	"context"
	"errors"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nguyentantai21042004/mediamind/internal/config"
	"github.com/nguyentantai21042004/mediamind/internal/logger"
)

const wellFormedResponse = `## Key Points
- The release slipped by one week
- QA found a regression in exports

## Main Topics
- Release planning
- Export pipeline stability

## Action Items
- [Alice] - Fix the export regression - [Due: Friday]
- [Not specified] - Update the release notes - [Due: Not specified]`

type fakeChatClient struct {
	responses []string
	calls     int
	err       error
	requests  []openai.ChatCompletionRequest
}

func (f *fakeChatClient) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.requests = append(f.requests, req)
	f.calls++
	if f.err != nil {
		return openai.ChatCompletionResponse{}, f.err
	}
	content := f.responses[0]
	if len(f.responses) > 1 {
		f.responses = f.responses[1:]
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: content}},
		},
	}, nil
}

func newTestSummarizer(t *testing.T, client chatClient, maxChunkTokens int) *openaiSummarizer {
	t.Helper()
	cfg := &config.Config{
		Summarizer: config.SummarizerConfig{MaxChunkTokens: maxChunkTokens},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	return &openaiSummarizer{client: client, cfg: cfg, logger: logger.New("error")}
}

func TestSummarizeSuccess(t *testing.T) {
	client := &fakeChatClient{responses: []string{wellFormedResponse}}
	s := newTestSummarizer(t, client, 0)

	summary, err := s.Summarize(context.Background(), "Alice: the release slipped.")
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	wantInOrder := []string{"## Key Points", "## Main Topics", "## Action Items"}
	pos := 0
	for _, want := range wantInOrder {
		idx := strings.Index(summary[pos:], want)
		if idx < 0 {
			t.Fatalf("summary missing %q in order:\n%s", want, summary)
		}
		pos += idx + len(want)
	}

	if !strings.Contains(summary, "- [Alice] - Fix the export regression - [Due: Friday]") {
		t.Errorf("summary lost action item:\n%s", summary)
	}
	if client.calls != 1 {
		t.Errorf("API called %d times, want 1", client.calls)
	}
}

func TestSummarizeEmptyInput(t *testing.T) {
	client := &fakeChatClient{responses: []string{wellFormedResponse}}
	s := newTestSummarizer(t, client, 0)

	_, err := s.Summarize(context.Background(), "   \n ")
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Summarize() error = %v, want ErrEmptyInput", err)
	}
	if client.calls != 0 {
		t.Errorf("API called %d times, want 0", client.calls)
	}
}

func TestSummarizeMissingSection(t *testing.T) {
	resp := "## Key Points\n- a\n\n## Main Topics\n- b\n"
	client := &fakeChatClient{responses: []string{resp}}
	s := newTestSummarizer(t, client, 0)

	_, err := s.Summarize(context.Background(), "transcript")
	if !errors.Is(err, ErrMalformedSummary) {
		t.Errorf("Summarize() error = %v, want ErrMalformedSummary", err)
	}
}

func TestSummarizeAPIError(t *testing.T) {
	client := &fakeChatClient{err: errors.New("boom")}
	s := newTestSummarizer(t, client, 0)

	_, err := s.Summarize(context.Background(), "transcript")
	if err == nil || !strings.Contains(err.Error(), "create chat completion") {
		t.Errorf("Summarize() error = %v, want wrapped API error", err)
	}
}

func TestSummarizeChunksAndCombines(t *testing.T) {
	// Budget of 10 tokens forces each paragraph into its own chunk.
	client := &fakeChatClient{responses: []string{
		wellFormedResponse,
		wellFormedResponse,
		wellFormedResponse,
	}}
	s := newTestSummarizer(t, client, 10)

	transcript := strings.Repeat("word ", 20) + "\n\n" + strings.Repeat("word ", 20)
	if _, err := s.Summarize(context.Background(), transcript); err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	// Two chunk calls plus one combine call.
	if client.calls != 3 {
		t.Errorf("API called %d times, want 3", client.calls)
	}
	lastPrompt := client.requests[2].Messages[1].Content
	if !strings.Contains(lastPrompt, "Combine them into a single summary") {
		t.Errorf("last request should be the combine prompt:\n%s", lastPrompt)
	}
}

func TestSummaryPromptSections(t *testing.T) {
	for _, want := range []string{"Key Points", "Main Topics", "Action Items"} {
		if !strings.Contains(summaryPrompt, want) {
			t.Errorf("summaryPrompt missing %q", want)
		}
	}
}

func TestSplitChunks(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		maxTokens int
		want      int
	}{
		{"fits in one chunk", "short text", 1000, 1},
		{"two paragraphs split", strings.Repeat("a", 100) + "\n\n" + strings.Repeat("b", 100), 30, 2},
		{"oversized paragraph stays whole", strings.Repeat("a", 400), 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := splitChunks(tt.text, tt.maxTokens)
			if len(chunks) != tt.want {
				t.Errorf("splitChunks() = %d chunks, want %d", len(chunks), tt.want)
			}
			joined := strings.Join(chunks, "\n\n")
			if joined != tt.text {
				t.Errorf("chunks lost content:\n%q\nwant:\n%q", joined, tt.text)
			}
		})
	}
}

func TestParseSections(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"well formed", wellFormedResponse, false},
		{"tolerates colons and levels", "### Key Points:\n- a\n\n## Main Topics\n- b\n\n## Action Items\n- c\n", false},
		{"missing action items", "## Key Points\n- a\n\n## Main Topics\n- b\n", true},
		{"empty section", "## Key Points\n\n## Main Topics\n- b\n\n## Action Items\n- c\n", true},
		{"out of order", "## Main Topics\n- b\n\n## Key Points\n- a\n\n## Action Items\n- c\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseSections(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("parseSections() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && err != nil && !errors.Is(err, ErrMalformedSummary) {
				t.Errorf("parseSections() error = %v, want ErrMalformedSummary", err)
			}
		})
	}
}

func TestParseSectionsDropsExtraContent(t *testing.T) {
	input := wellFormedResponse + "\n\n## Epilogue\n- fabricated\n"
	s, err := parseSections(input)
	if err != nil {
		t.Fatalf("parseSections() error = %v", err)
	}

	rendered := renderSections(s)
	if strings.Contains(rendered, "Epilogue") || strings.Contains(rendered, "fabricated") {
		t.Errorf("rendered summary should contain only the three sections:\n%s", rendered)
	}
}

func TestNewProviderSelection(t *testing.T) {
	log := logger.New("error")

	cfg := &config.Config{OpenAI: config.OpenAIConfig{APIKey: "sk-test"}}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if _, err := New(cfg, log); err != nil {
		t.Errorf("New() openai error = %v", err)
	}

	cfg = &config.Config{
		Summarizer: config.SummarizerConfig{Provider: config.ProviderGemini},
		Gemini:     config.GeminiConfig{APIKeys: []string{"g-one"}},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if _, err := New(cfg, log); err != nil {
		t.Errorf("New() gemini error = %v", err)
	}

	cfg = &config.Config{Summarizer: config.SummarizerConfig{Provider: config.ProviderGemini}}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if _, err := New(cfg, log); err == nil {
		t.Error("New() gemini without keys should fail")
	}
}
