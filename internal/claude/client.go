// Package claude は Anthropic Messages API を使ったPDF解析呼び出しを提供します。
package claude

import (
	"context"
	"errors"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// PDFBeta はPDFドキュメントブロックを有効にするベータフラグです。
const PDFBeta = "pdfs-2024-09-25"

// Options はクライアント生成時の設定です。
type Options struct {
	APIKey    string
	Model     string
	MaxTokens int64
	BaseURL   string
	Timeout   time.Duration
}

// Client は単一のドキュメント解析リクエストを発行します。
// 再試行は行わず、1リクエストにつき外部呼び出しは最大1回です。
type Client struct {
	api       anthropic.Client
	model     string
	maxTokens int64
}

// New は Client を初期化します。
func New(opts Options) (*Client, error) {
	if opts.Model == "" {
		return nil, errors.New("model is required")
	}
	if opts.MaxTokens <= 0 {
		return nil, errors.New("maxTokens must be positive")
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(opts.APIKey),
		option.WithMaxRetries(0),
	}
	if opts.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(opts.BaseURL))
	}
	if opts.Timeout > 0 {
		reqOpts = append(reqOpts, option.WithRequestTimeout(opts.Timeout))
	}

	return &Client{
		api:       anthropic.NewClient(reqOpts...),
		model:     opts.Model,
		maxTokens: opts.MaxTokens,
	}, nil
}

// Model は使用中のモデルIDを返します。
func (c *Client) Model() string { return c.model }

// AnalyzeDocument は base64 エンコード済みPDFとプロンプトを送信し、先頭テキストブロックを返します。
func (c *Client) AnalyzeDocument(ctx context.Context, pdfBase64, prompt string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	params := anthropic.BetaMessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		Betas:     []anthropic.AnthropicBeta{anthropic.AnthropicBeta(PDFBeta)},
		Messages: []anthropic.BetaMessageParam{
			{
				Role: anthropic.BetaMessageParamRoleUser,
				Content: []anthropic.BetaContentBlockParamUnion{
					anthropic.NewBetaDocumentBlock(anthropic.BetaBase64PDFSourceParam{
						Data: pdfBase64,
					}),
					anthropic.NewBetaTextBlock(prompt),
				},
			},
		},
	}

	message, err := c.api.Beta.Messages.New(ctx, params)
	if err != nil {
		return "", classify(err)
	}
	if message == nil || len(message.Content) == 0 {
		return "", malformed("provider response contained no content blocks")
	}

	first := message.Content[0]
	if first.Type != "text" {
		return "", malformed("provider response first content block is " + first.Type + ", not text")
	}
	return first.Text, nil
}
