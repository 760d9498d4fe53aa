package pdf

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/pdf-analyzer/internal/claude"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestNewServiceRequiresProvider(t *testing.T) {
	_, err := NewService(nil, nil)
	assert.Error(t, err)
}

func TestResolvePrompt(t *testing.T) {
	assert.Equal(t, DefaultPrompt, ResolvePrompt(""))
	assert.Equal(t, "Summarize page 1", ResolvePrompt("Summarize page 1"))
	assert.Equal(t, " ", ResolvePrompt(" "))
}

func TestEncodeDocumentRoundTrip(t *testing.T) {
	inputs := [][]byte{
		{},
		{0x00},
		samplePDF,
		bytes.Repeat([]byte{0xff, 0x00, 0x7f}, 1000),
	}
	for _, in := range inputs {
		out, err := base64.StdEncoding.DecodeString(EncodeDocument(in))
		require.NoError(t, err)
		assert.True(t, bytes.Equal(in, out))
	}
}

func TestServiceAnalyzeSuccess(t *testing.T) {
	provider := &stubProvider{text: "Example analysis"}
	svc, err := NewService(provider, quietLogger())
	require.NoError(t, err)

	res, err := svc.Analyze(context.Background(), &AnalysisRequest{
		File:     samplePDF,
		Filename: "doc.pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, "Example analysis", res.Analysis)
	assert.Equal(t, DefaultPrompt, provider.prompt)
	assert.Equal(t, EncodeDocument(samplePDF), provider.data)
}

func TestServiceAnalyzePassesProviderErrorThrough(t *testing.T) {
	perr := &claude.ProviderError{Kind: claude.KindRateLimit, StatusCode: 429, Message: "rate limited"}
	provider := &stubProvider{err: perr}

	var logs bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&logs)
	svc, err := NewService(provider, logger)
	require.NoError(t, err)

	_, err = svc.Analyze(context.Background(), &AnalysisRequest{File: samplePDF, Filename: "doc.pdf", RequestID: "req-1"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, perr))
	assert.Equal(t, 1, provider.calls)

	out := logs.String()
	assert.True(t, strings.Contains(out, "kind=rate_limit"), out)
	assert.True(t, strings.Contains(out, "request_id=req-1"), out)
}

func TestServiceAnalyzeNilRequest(t *testing.T) {
	provider := &stubProvider{}
	svc, err := NewService(provider, quietLogger())
	require.NoError(t, err)

	_, err = svc.Analyze(context.Background(), nil)
	require.Error(t, err)
	// 入力エラーではないので 4xx にはならない
	var apiErr *Error
	assert.False(t, errors.As(err, &apiErr))
	assert.Equal(t, 0, provider.calls)
}

func TestDispositionHasFilename(t *testing.T) {
	assert.True(t, dispositionHasFilename(`form-data; name="file"; filename="a.pdf"`))
	assert.True(t, dispositionHasFilename(`form-data; name="file"; filename=""`))
	assert.False(t, dispositionHasFilename(`form-data; name="file"`))
	assert.False(t, dispositionHasFilename(""))
}

func TestReadLimited(t *testing.T) {
	data, tooLarge, err := readLimited(strings.NewReader("12345"), 5)
	require.NoError(t, err)
	assert.False(t, tooLarge)
	assert.Equal(t, "12345", string(data))

	_, tooLarge, err = readLimited(strings.NewReader("123456"), 5)
	require.NoError(t, err)
	assert.True(t, tooLarge)

	data, tooLarge, err = readLimited(strings.NewReader("123456"), 0)
	require.NoError(t, err)
	assert.False(t, tooLarge)
	assert.Len(t, data, 6)
}
