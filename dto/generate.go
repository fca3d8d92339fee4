package dto

type GenerateRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

// SeoData là kết quả parse từ text trả về của model, không lưu trực tiếp vào store
type SeoData struct {
	SeoTitle        string   `json:"seoTitle"`
	MetaDescription string   `json:"metaDescription"`
	Tags            []string `json:"tags"`
}
