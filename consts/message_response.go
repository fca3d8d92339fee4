package consts

// Message trả về cho client, giữ nguyên wording của backend cũ
const (
	MsgBlogAdded      = "blog added successfully"
	MsgBlogDeleted    = "blog deleted successfully"
	MsgBlogUpdated    = "Blog updated successfully!"
	MsgStatusUpdated  = "blog status updated"
	MsgCommentAdded   = "comment add for review"
	MsgCommentDeleted = "comment deleted successfully"

	MsgBlogNotFound       = "Blog not found"
	MsgMissingFields      = "Missing required fields"
	MsgPromptRequired     = "Prompt is required."
	MsgImageGenFailed     = "Image generation failed."
	MsgInternalError      = "Internal Server Error"
	MsgInvalidCredentials = "Invalid credentials"
	MsgTooManyLoginTries  = "Too many login attempts, try again later"

	MsgGetSuccess    = "Data fetched successfully."
	MsgCreateSuccess = "Data created successfully."
	MsgUpdateSuccess = "Data updated successfully."
	MsgDeleteSuccess = "Data deleted successfully."

	MsgGetErr    = "Failed to fetch data!"
	MsgCreateErr = "Failed to create data!"
	MsgUpdateErr = "Failed to update data!"
	MsgDeleteErr = "Failed to delete data!"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)
