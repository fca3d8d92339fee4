package dto

// BlogPayload là phần "blog" (JSON encode) trong form multipart của POST /api/blog/add
type BlogPayload struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keyword     []string `json:"keyword"`
	IsPublished bool     `json:"isPublished"`
}

// UpdateBlogPayload cho PUT /api/blog/edit/:id, chỉ $set các field không nil
type UpdateBlogPayload struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Keyword     *[]string `json:"keyword,omitempty"`
	IsPublished *bool     `json:"isPublished,omitempty"`
}

type BlogIDRequest struct {
	ID string `json:"id" validate:"required"`
}
