// Package llm defines the provider capability set the engine invokes and
// its implementations (gRPC service client, deterministic stub).
//
// The gateway is intentionally thin: it maps requests to transport and back.
// Semantic validation of provider output (empty content, missing
// recommendations) belongs to the pipelines and is never retried.
package llm

import (
	"context"
	"strings"
)

// ImageQuality selects the rendering quality for generated images.
type ImageQuality string

const (
	QualityLow    ImageQuality = "low"
	QualityNormal ImageQuality = "normal"
	QualityHigh   ImageQuality = "high"
)

// ParseImageQuality normalizes a quality string, defaulting to normal.
func ParseImageQuality(s string) ImageQuality {
	switch ImageQuality(strings.ToLower(strings.TrimSpace(s))) {
	case QualityLow:
		return QualityLow
	case QualityHigh:
		return QualityHigh
	default:
		return QualityNormal
	}
}

// Message is one turn of a mail conversation passed to the provider.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// AttachmentPolicy bounds what GenerateReply may attach.
type AttachmentPolicy struct {
	MaxCount     int `json:"maxCount"`
	MaxTextChars int `json:"maxTextChars"`
}

// SpellingInput is the request for CorrectSpelling.
type SpellingInput struct {
	Text     string
	Language string
}

// IntentInput is the request for ResolveIntents.
type IntentInput struct {
	Query    string
	Language string
	Filetype string
}

// IntentItem is one resolved intent with its display metadata.
type IntentItem struct {
	Intent  string
	Title   string
	Summary string
}

// ArticleInput is the request for CreateArticle.
type ArticleInput struct {
	Query    string
	Intent   string
	Language string
	Filetype string
}

// Recommendation is a follow-up suggestion returned alongside an article.
type Recommendation struct {
	Title   string
	Summary string
}

// ArticleOutput is the provider's article plus 1..3 recommendations.
type ArticleOutput struct {
	Title           string
	Slug            string
	Content         string
	GeneratedBy     string
	Recommendations []Recommendation
}

// ImageInput is the request for CreateImage.
type ImageInput struct {
	Description string
	Quality     ImageQuality
}

// ImageOutput carries a generated image as raw bytes.
type ImageOutput struct {
	MimeType string
	Data     []byte
}

// SummaryInput is the request for SummarizeThread.
type SummaryInput struct {
	Messages []Message
}

// AttachmentKind discriminates reply attachments.
type AttachmentKind string

const (
	AttachmentText  AttachmentKind = "text"
	AttachmentImage AttachmentKind = "image"
)

// ReplyAttachment is an attachment the provider asks the engine to create.
// Text attachments carry their content inline; image attachments carry a
// description that a follow-up CreateImage call renders.
type ReplyAttachment struct {
	Kind             AttachmentKind
	Filename         string
	Text             string
	ImageDescription string
	ImageQuality     ImageQuality
}

// ReplyInput is the request for GenerateReply.
type ReplyInput struct {
	History   []Message
	Summary   string
	UserInput string
	Policy    AttachmentPolicy
	Model     string
}

// ReplyOutput is the generated assistant reply.
type ReplyOutput struct {
	Content     string
	Attachments []ReplyAttachment
}

// Provider is the capability set the engine invokes. Implementations are
// stateless from the engine's point of view; they may cache transport.
type Provider interface {
	// Name identifies the implementation for failure records and logs.
	Name() string

	CorrectSpelling(ctx context.Context, in SpellingInput) (string, error)

	// ResolveIntents returns 1..5 intents deduplicated case-insensitively.
	ResolveIntents(ctx context.Context, in IntentInput) ([]IntentItem, error)

	CreateArticle(ctx context.Context, in ArticleInput) (*ArticleOutput, error)

	CreateImage(ctx context.Context, in ImageInput) (*ImageOutput, error)

	// SummarizeThread condenses a conversation into at most ~350 words.
	SummarizeThread(ctx context.Context, in SummaryInput) (string, error)

	GenerateReply(ctx context.Context, in ReplyInput) (*ReplyOutput, error)
}

// dedupeIntents enforces the ResolveIntents output contract: intents are
// unique case-insensitively (first occurrence wins) and capped at five.
func dedupeIntents(items []IntentItem) []IntentItem {
	seen := make(map[string]struct{}, len(items))
	out := make([]IntentItem, 0, len(items))
	for _, it := range items {
		key := strings.ToLower(strings.TrimSpace(it.Intent))
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, it)
		if len(out) == 5 {
			break
		}
	}
	return out
}
