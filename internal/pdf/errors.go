package pdf

import "fmt"

// エラーコード
const (
	CodeInvalidInput     = "INVALID_INPUT"
	CodeLimitExceeded    = "LIMIT_EXCEEDED"
	CodeUnsupportedMedia = "UNSUPPORTED_MEDIA"
	CodeProviderError    = "PROVIDER_ERROR"
)

// クライアント向けの固定メッセージ
const (
	MsgNoFilePart     = "No file part"
	MsgNoSelectedFile = "No selected file"
	MsgInvalidFormat  = "Invalid file format. Please upload a PDF file."
	MsgMalformedForm  = "Malformed multipart request body."
	MsgFileTooLarge   = "File too large."
	MsgPromptTooLarge = "Prompt too large."
	MsgNotPDFContent  = "Uploaded file content is not a PDF."
)

// Error は呼び出し側が修正して再送できる入力エラーを表します。
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}
