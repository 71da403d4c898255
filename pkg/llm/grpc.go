package llm

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/lumenlabs/lumen/pkg/config"
	providerv1 "github.com/lumenlabs/lumen/proto"
)

// GRPCProvider implements Provider by calling the external LLM provider
// service. The connection is created lazily by grpc.NewClient and dialed on
// first use.
type GRPCProvider struct {
	conn      *grpc.ClientConn
	client    providerv1.ProviderServiceClient
	model     string
	mailModel string
}

// NewGRPCProvider connects to the provider service configured in cfg.
func NewGRPCProvider(cfg *config.ProviderConfig) (*GRPCProvider, error) {
	conn, err := grpc.NewClient(cfg.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to provider service at %s: %w", cfg.Addr, err)
	}
	mailModel := cfg.MailModel
	if mailModel == "" {
		mailModel = cfg.Model
	}
	return &GRPCProvider{
		conn:      conn,
		client:    providerv1.NewProviderServiceClient(conn),
		model:     cfg.Model,
		mailModel: mailModel,
	}, nil
}

// Close releases the gRPC connection.
func (p *GRPCProvider) Close() error {
	return p.conn.Close()
}

func (p *GRPCProvider) Name() string { return "grpc" }

func (p *GRPCProvider) CorrectSpelling(ctx context.Context, in SpellingInput) (string, error) {
	resp, err := p.client.CorrectSpelling(ctx, &providerv1.CorrectSpellingRequest{
		Text:     in.Text,
		Language: in.Language,
		Model:    p.model,
	})
	if err != nil {
		return "", fmt.Errorf("CorrectSpelling call failed: %w", err)
	}
	return resp.GetText(), nil
}

func (p *GRPCProvider) ResolveIntents(ctx context.Context, in IntentInput) ([]IntentItem, error) {
	resp, err := p.client.ResolveIntents(ctx, &providerv1.ResolveIntentsRequest{
		Query:    in.Query,
		Language: in.Language,
		Filetype: in.Filetype,
		Model:    p.model,
	})
	if err != nil {
		return nil, fmt.Errorf("ResolveIntents call failed: %w", err)
	}
	items := make([]IntentItem, 0, len(resp.GetItems()))
	for _, it := range resp.GetItems() {
		items = append(items, IntentItem{
			Intent:  it.GetIntent(),
			Title:   it.GetTitle(),
			Summary: it.GetSummary(),
		})
	}
	return dedupeIntents(items), nil
}

func (p *GRPCProvider) CreateArticle(ctx context.Context, in ArticleInput) (*ArticleOutput, error) {
	resp, err := p.client.CreateArticle(ctx, &providerv1.CreateArticleRequest{
		Query:    in.Query,
		Intent:   in.Intent,
		Language: in.Language,
		Filetype: in.Filetype,
		Model:    p.model,
	})
	if err != nil {
		return nil, fmt.Errorf("CreateArticle call failed: %w", err)
	}
	out := &ArticleOutput{
		Title:       resp.GetTitle(),
		Slug:        resp.GetSlug(),
		Content:     resp.GetContent(),
		GeneratedBy: resp.GetGeneratedBy(),
	}
	if out.GeneratedBy == "" {
		out.GeneratedBy = p.model
	}
	for _, r := range resp.GetRecommendations() {
		out.Recommendations = append(out.Recommendations, Recommendation{
			Title:   r.GetTitle(),
			Summary: r.GetSummary(),
		})
	}
	return out, nil
}

func (p *GRPCProvider) CreateImage(ctx context.Context, in ImageInput) (*ImageOutput, error) {
	resp, err := p.client.CreateImage(ctx, &providerv1.CreateImageRequest{
		Description: in.Description,
		Quality:     string(in.Quality),
	})
	if err != nil {
		return nil, fmt.Errorf("CreateImage call failed: %w", err)
	}
	return &ImageOutput{
		MimeType: resp.GetMimeType(),
		Data:     resp.GetData(),
	}, nil
}

func (p *GRPCProvider) SummarizeThread(ctx context.Context, in SummaryInput) (string, error) {
	resp, err := p.client.SummarizeThread(ctx, &providerv1.SummarizeThreadRequest{
		Messages: toProtoMessages(in.Messages),
		Model:    p.mailModel,
	})
	if err != nil {
		return "", fmt.Errorf("SummarizeThread call failed: %w", err)
	}
	return resp.GetSummary(), nil
}

func (p *GRPCProvider) GenerateReply(ctx context.Context, in ReplyInput) (*ReplyOutput, error) {
	model := in.Model
	if model == "" {
		model = p.mailModel
	}
	resp, err := p.client.GenerateReply(ctx, &providerv1.GenerateReplyRequest{
		History:   toProtoMessages(in.History),
		Summary:   in.Summary,
		UserInput: in.UserInput,
		Policy: &providerv1.AttachmentPolicy{
			MaxCount:     int32(in.Policy.MaxCount),
			MaxTextChars: int32(in.Policy.MaxTextChars),
		},
		Model: model,
	})
	if err != nil {
		return nil, fmt.Errorf("GenerateReply call failed: %w", err)
	}
	out := &ReplyOutput{Content: resp.GetContent()}
	for _, a := range resp.GetAttachments() {
		out.Attachments = append(out.Attachments, ReplyAttachment{
			Kind:             AttachmentKind(a.GetKind()),
			Filename:         a.GetFilename(),
			Text:             a.GetText(),
			ImageDescription: a.GetImageDescription(),
			ImageQuality:     ParseImageQuality(a.GetImageQuality()),
		})
	}
	return out, nil
}

func toProtoMessages(msgs []Message) []*providerv1.Message {
	out := make([]*providerv1.Message, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, &providerv1.Message{Role: m.Role, Content: m.Content})
	}
	return out
}
