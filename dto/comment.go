package dto

type AddCommentRequest struct {
	Blog    string `json:"blog" validate:"required"`
	Name    string `json:"name" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type BlogCommentsRequest struct {
	BlogID string `json:"blogId" validate:"required"`
}

type DeleteCommentRequest struct {
	ID string `json:"id" validate:"required"`
}
