package pdf

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ContextRequestIDKey はハンドラー間でリクエストIDを共有するためのキーです。
const ContextRequestIDKey = "request.id"

// AnalyzeService はPDF解析を提供します。
type AnalyzeService interface {
	Analyze(ctx context.Context, req *AnalysisRequest) (*AnalysisResponse, error)
}

// HandlerOptions はアップロード制限の設定です。
type HandlerOptions struct {
	MaxFileSize    int64
	StrictPDFCheck bool
	Logger         *logrus.Logger
}

// AnalyzeHandler は POST /pdf/analyze のハンドラーを返します。
//
//	@Summary		Analyze a PDF file using Anthropic's Claude model
//	@Tags			pdf
//	@Accept			mpfd
//	@Produce		json
//	@Param			file	formData	file	true	"PDF file to analyze"
//	@Param			prompt	formData	string	false	"Custom prompt for analysis"
//	@Success		200		{object}	AnalysisResponse
//	@Failure		400		{object}	ErrorResponse	"Validation error"
//	@Failure		401		{object}	ErrorResponse	"Missing or invalid API token"
//	@Failure		413		{object}	ErrorResponse	"File or prompt too large"
//	@Failure		415		{object}	ErrorResponse	"Content is not a PDF (strict mode)"
//	@Failure		429		{object}	ErrorResponse	"Too many failed token attempts"
//	@Failure		500		{object}	ErrorResponse	"Provider error"
//	@Security		ApiKeyAuth
//	@Router			/pdf/analyze [post]
func AnalyzeHandler(svc AnalyzeService, opts HandlerOptions) gin.HandlerFunc {
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return func(c *gin.Context) {
		requestID := c.GetString(ContextRequestIDKey)
		entry := logger.WithField("request_id", requestID)

		u, err := readUpload(c.Request, opts.MaxFileSize)
		if err != nil {
			respondWithError(c, entry, err)
			return
		}
		if err := u.validate(); err != nil {
			respondWithError(c, entry.WithField("filename", u.filename), err)
			return
		}

		detected := sniffMIME(u.data)
		entry = entry.WithFields(logrus.Fields{
			"filename":      u.filename,
			"detected_mime": detected,
		})
		if opts.StrictPDFCheck && !isPDFContent(u.data) {
			respondWithError(c, entry, newError(CodeUnsupportedMedia, MsgNotPDFContent, nil))
			return
		}

		result, err := svc.Analyze(c.Request.Context(), &AnalysisRequest{
			File:      u.data,
			Filename:  u.filename,
			Prompt:    u.prompt,
			RequestID: requestID,
		})
		if err != nil {
			respondWithError(c, entry, err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

func respondWithError(c *gin.Context, entry *logrus.Entry, err error) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		status := http.StatusBadRequest
		switch apiErr.Code {
		case CodeLimitExceeded:
			status = http.StatusRequestEntityTooLarge
		case CodeUnsupportedMedia:
			status = http.StatusUnsupportedMediaType
		}
		entry.WithFields(logrus.Fields{
			"status": status,
			"code":   apiErr.Code,
		}).WithError(err).Info("rejected upload")
		c.JSON(status, ErrorResponse{
			Code:    apiErr.Code,
			Message: apiErr.Message,
		})
		return
	}

	// プロバイダー側の失敗は種別に関わらず500にまとめる
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    CodeProviderError,
		Message: "An error occurred: " + err.Error(),
	})
}
