package consts

import "errors"

var (
	ErrCommentNotFound     = errors.New("Comment not found")
	ErrEmptyModelResponse  = errors.New("model returned no content")
	ErrStabilityKeyMissing = errors.New("API key missing in .env")
	ErrGeminiKeyMissing    = errors.New("Gemini API key is not configured")
)
