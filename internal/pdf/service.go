// Package pdf はPDF解析エンドポイントとその処理を提供します。
package pdf

import (
	"context"
	"encoding/base64"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/pdf-analyzer/internal/claude"
)

// Provider はドキュメント解析を行う外部LLMです。
type Provider interface {
	AnalyzeDocument(ctx context.Context, pdfBase64, prompt string) (string, error)
}

// Service は入力の整形とプロバイダー呼び出しを行います。
type Service struct {
	provider Provider
	logger   *logrus.Logger
}

// NewService は Service を作成します。
func NewService(provider Provider, logger *logrus.Logger) (*Service, error) {
	if provider == nil {
		return nil, errors.New("provider is nil")
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Service{provider: provider, logger: logger}, nil
}

// EncodeDocument はPDFのバイト列を標準base64でエンコードします。
func EncodeDocument(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// ResolvePrompt は空のプロンプトを既定の指示に置き換えます。
func ResolvePrompt(prompt string) string {
	if prompt == "" {
		return DefaultPrompt
	}
	return prompt
}

// Analyze はPDFをプロバイダーへ送り、解析結果を返します。
// 外部呼び出しは1回だけで、失敗時は再試行しません。
func (s *Service) Analyze(ctx context.Context, req *AnalysisRequest) (*AnalysisResponse, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if req == nil {
		return nil, errors.New("analysis request is nil")
	}

	encoded := EncodeDocument(req.File)
	prompt := ResolvePrompt(req.Prompt)

	entry := s.logger.WithFields(logrus.Fields{
		"request_id":    req.RequestID,
		"filename":      req.Filename,
		"size":          len(req.File),
		"custom_prompt": req.Prompt != "",
	})
	entry.Debug("sending document to provider")

	start := time.Now()
	text, err := s.provider.AnalyzeDocument(ctx, encoded, prompt)
	elapsed := time.Since(start)
	if err != nil {
		fields := logrus.Fields{"elapsed": elapsed}
		var perr *claude.ProviderError
		if errors.As(err, &perr) {
			fields["kind"] = perr.Kind
			if perr.StatusCode != 0 {
				fields["provider_status"] = perr.StatusCode
			}
		}
		entry.WithFields(fields).WithError(err).Warn("provider call failed")
		return nil, err
	}

	entry.WithFields(logrus.Fields{
		"elapsed":         elapsed,
		"analysis_length": len(text),
	}).Info("document analyzed")

	return &AnalysisResponse{Analysis: text}, nil
}
