package llm

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"
)

// StubProvider is a deterministic in-process provider for development and
// tests. Output depends only on input, so event streams and stored rows are
// reproducible across runs.
type StubProvider struct {
	model string
}

// NewStubProvider creates a stub provider reporting the given model name.
func NewStubProvider(model string) *StubProvider {
	if model == "" {
		model = "stub"
	}
	return &StubProvider{model: model}
}

func (s *StubProvider) Name() string { return "stub" }

// CorrectSpelling collapses whitespace. A real provider rewrites the text;
// the stub keeps it stable so query upserts hit the same row.
func (s *StubProvider) CorrectSpelling(_ context.Context, in SpellingInput) (string, error) {
	return strings.Join(strings.Fields(in.Text), " "), nil
}

func (s *StubProvider) ResolveIntents(_ context.Context, in IntentInput) ([]IntentItem, error) {
	q := strings.Join(strings.Fields(in.Query), " ")
	if q == "" {
		return nil, fmt.Errorf("stub: empty query")
	}
	items := []IntentItem{
		{
			Intent:  q + " overview",
			Title:   "Overview: " + q,
			Summary: "A practical introduction to " + q + ".",
		},
		{
			Intent:  q + " usage guide",
			Title:   "Using " + q,
			Summary: "Step-by-step usage of " + q + " with examples.",
		},
		{
			Intent:  q + " troubleshooting",
			Title:   "Troubleshooting " + q,
			Summary: "Common problems around " + q + " and how to fix them.",
		},
	}
	return dedupeIntents(items), nil
}

func (s *StubProvider) CreateArticle(_ context.Context, in ArticleInput) (*ArticleOutput, error) {
	intent := strings.Join(strings.Fields(in.Intent), " ")
	if intent == "" {
		return nil, fmt.Errorf("stub: empty intent")
	}
	ext := in.Filetype
	if ext == "" {
		ext = "md"
	}
	title := strings.ToUpper(intent[:1]) + intent[1:]
	content := fmt.Sprintf("# %s\n\nGenerated for query %q (language %s).\n\n"+
		"## Background\n\nThis article covers %s.\n\n"+
		"## Details\n\nDeterministic stub content for %s.\n",
		title, in.Query, in.Language, intent, intent)
	return &ArticleOutput{
		Title:       title,
		Slug:        slugify(intent) + "." + ext,
		Content:     content,
		GeneratedBy: s.model,
		Recommendations: []Recommendation{
			{Title: "Related: " + title, Summary: "More on " + intent + "."},
			{Title: "Next steps for " + intent, Summary: "Where to go after " + intent + "."},
		},
	}, nil
}

// CreateImage renders a single-pixel PNG. The pixel color is derived from
// the description so distinct requests produce distinct bytes.
func (s *StubProvider) CreateImage(_ context.Context, in ImageInput) (*ImageOutput, error) {
	var h uint32
	for _, r := range in.Description {
		h = h*31 + uint32(r)
	}
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{R: uint8(h), G: uint8(h >> 8), B: uint8(h >> 16), A: 0xff})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("stub: encode image: %w", err)
	}
	return &ImageOutput{MimeType: "image/png", Data: buf.Bytes()}, nil
}

func (s *StubProvider) SummarizeThread(_ context.Context, in SummaryInput) (string, error) {
	if len(in.Messages) == 0 {
		return "", fmt.Errorf("stub: no messages to summarize")
	}
	last := in.Messages[len(in.Messages)-1].Content
	if len(last) > 120 {
		last = last[:120]
	}
	return fmt.Sprintf("Conversation with %d messages. Most recent: %s", len(in.Messages), last), nil
}

func (s *StubProvider) GenerateReply(_ context.Context, in ReplyInput) (*ReplyOutput, error) {
	input := strings.TrimSpace(in.UserInput)
	if input == "" {
		return nil, fmt.Errorf("stub: empty user input")
	}
	out := &ReplyOutput{
		Content: "You asked: " + input + "\n\nHere is a deterministic answer from the stub provider.",
	}
	// Mentioning "attachment" exercises the attachment path in development.
	if in.Policy.MaxCount > 0 && strings.Contains(strings.ToLower(input), "attachment") {
		text := "Notes for: " + input
		if in.Policy.MaxTextChars > 0 && len(text) > in.Policy.MaxTextChars {
			text = text[:in.Policy.MaxTextChars]
		}
		out.Attachments = append(out.Attachments, ReplyAttachment{
			Kind:     AttachmentText,
			Filename: "notes.txt",
			Text:     text,
		})
	}
	return out, nil
}

func slugify(s string) string {
	var b strings.Builder
	prevDash := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevDash = false
		default:
			if !prevDash {
				b.WriteByte('-')
				prevDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
