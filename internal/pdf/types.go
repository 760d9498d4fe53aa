package pdf

// DefaultPrompt は prompt が指定されなかった場合に使用する解析指示です。
const DefaultPrompt = "Please analyze this PDF and provide a summary of its contents, including key points and main topics covered."

// AnalysisRequest は1回のHTTPリクエストの間だけ存在する解析入力です。
type AnalysisRequest struct {
	File      []byte
	Filename  string
	Prompt    string
	RequestID string
}

// AnalysisResponse は解析結果です。
type AnalysisResponse struct {
	Analysis string `json:"analysis" example:"Example analysis"`
}

// ErrorResponse はエラー時のレスポンスボディです。
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
