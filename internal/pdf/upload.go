package pdf

import (
	"bytes"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const (
	fileField   = "file"
	promptField = "prompt"

	maxPromptBytes = 1 << 20
)

// upload はマルチパートから取り出した入力です。
type upload struct {
	hasFilePart bool
	filename    string
	data        []byte
	tooLarge    bool
	prompt      string

	promptTooLarge bool
}

// readUpload はマルチパートをストリームで読み取ります。
// 一時ファイルは作成せず、ファイル本体はメモリ上に保持します。
func readUpload(r *http.Request, maxFileSize int64) (*upload, error) {
	mr, err := r.MultipartReader()
	if err != nil {
		// multipart でないリクエストはファイルパートなしとして扱う
		return &upload{}, nil
	}

	u := &upload{}
	promptSet := false
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, newError(CodeInvalidInput, MsgMalformedForm, err)
		}

		name := part.FormName()
		hasFilename := dispositionHasFilename(part.Header.Get("Content-Disposition"))

		switch {
		case name == fileField && hasFilename && !u.hasFilePart:
			u.hasFilePart = true
			u.filename = part.FileName()
			if !hasPDFSuffix(u.filename) {
				err = drain(part)
				break
			}
			u.data, u.tooLarge, err = readLimited(part, maxFileSize)
		case name == promptField && !hasFilename && !promptSet:
			var raw []byte
			raw, u.promptTooLarge, err = readLimited(part, maxPromptBytes)
			u.prompt = string(raw)
			promptSet = true
		default:
			err = drain(part)
		}
		part.Close()
		if err != nil {
			return nil, newError(CodeInvalidInput, MsgMalformedForm, err)
		}
	}
	return u, nil
}

// validate は入力を検証します。ファイルパート、ファイル名、拡張子、ファイルサイズ、プロンプト長の順に判定します。
func (u *upload) validate() error {
	if !u.hasFilePart {
		return newError(CodeInvalidInput, MsgNoFilePart, nil)
	}
	if u.filename == "" {
		return newError(CodeInvalidInput, MsgNoSelectedFile, nil)
	}
	if !hasPDFSuffix(u.filename) {
		return newError(CodeInvalidInput, MsgInvalidFormat, nil)
	}
	if u.tooLarge {
		return newError(CodeLimitExceeded, MsgFileTooLarge, nil)
	}
	// プロンプトは切り詰めずに拒否する
	if u.promptTooLarge {
		return newError(CodeLimitExceeded, MsgPromptTooLarge, nil)
	}
	return nil
}

// hasPDFSuffix は拡張子のみを確認します（大文字小文字は区別しない）。
func hasPDFSuffix(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".pdf")
}

// sniffMIME はシグネチャから推定したMIMEタイプを返します。
func sniffMIME(data []byte) string {
	return mimetype.Detect(data).String()
}

func isPDFContent(data []byte) bool {
	return mimetype.Detect(data).Is("application/pdf")
}

func dispositionHasFilename(header string) bool {
	if header == "" {
		return false
	}
	_, params, err := mime.ParseMediaType(header)
	if err != nil {
		return false
	}
	_, ok := params["filename"]
	return ok
}

func readLimited(r io.Reader, limit int64) ([]byte, bool, error) {
	if limit <= 0 {
		data, err := io.ReadAll(r)
		return data, false, err
	}
	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(r, limit+1))
	if err != nil {
		return nil, false, err
	}
	if n > limit {
		return nil, true, drain(r)
	}
	return buf.Bytes(), false, nil
}

func drain(r io.Reader) error {
	_, err := io.Copy(io.Discard, r)
	return err
}
