package claude

import (
	"context"
	"errors"
	"net/http"

	"github.com/anthropics/anthropic-sdk-go"
)

// ErrorKind はプロバイダー呼び出し失敗の分類です。ログ用途のみで、HTTP応答は常に500になります。
type ErrorKind string

const (
	KindNetwork           ErrorKind = "network"
	KindAuthentication    ErrorKind = "authentication"
	KindRateLimit         ErrorKind = "rate_limit"
	KindAPI               ErrorKind = "api"
	KindTimeout           ErrorKind = "timeout"
	KindCanceled          ErrorKind = "canceled"
	KindMalformedResponse ErrorKind = "malformed_response"
)

// ProviderError は外部LLM呼び出しの失敗を表します。
type ProviderError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Err        error
}

// Error は下位エラーのメッセージをそのまま返します。
func (e *ProviderError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func classify(err error) *ProviderError {
	var perr *ProviderError
	if errors.As(err, &perr) {
		return perr
	}

	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		kind := KindAPI
		switch apiErr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			kind = KindAuthentication
		case http.StatusTooManyRequests:
			kind = KindRateLimit
		}
		return &ProviderError{
			Kind:       kind,
			StatusCode: apiErr.StatusCode,
			Message:    apiErr.Error(),
			Err:        err,
		}
	}

	kind := KindNetwork
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		kind = KindTimeout
	case errors.Is(err, context.Canceled):
		kind = KindCanceled
	}
	return &ProviderError{Kind: kind, Message: err.Error(), Err: err}
}

func malformed(message string) *ProviderError {
	return &ProviderError{Kind: KindMalformedResponse, Message: message}
}
