package controllers

import (
	"QuickBlog/collections"
	"QuickBlog/consts"
	"QuickBlog/dto"
	"QuickBlog/utils"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AddComment POST /api/blog/add-comment — comment mới luôn chờ duyệt
func AddComment(c *gin.Context) {
	var (
		req dto.AddCommentRequest
	)

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ResponseFail(c, err.Error())
		return
	}

	if err := utils.Validator.Struct(req); err != nil {
		utils.ResponseFail(c, utils.HandlerValidation(err))
		return
	}

	blogID, err := primitive.ObjectIDFromHex(req.Blog)
	if err != nil {
		utils.ResponseFail(c, consts.MsgBlogNotFound)
		return
	}

	// Backend cũ không check blog tồn tại ở đây, job sweeper sẽ dọn nếu mồ côi
	newComment := collections.Comment{
		Blog:       blogID,
		Name:       req.Name,
		Content:    req.Content,
		IsApproved: false,
		CreatedAt:  time.Now(),
	}

	if err := newComment.Create(nil); err != nil {
		utils.ResponseFail(c, err.Error())
		return
	}

	utils.ResponseSuccess(c, consts.MsgCommentAdded, nil)
}

// GetBlogComments POST /api/blog/comments — chỉ comment đã duyệt, mới nhất trước
func GetBlogComments(c *gin.Context) {
	var (
		commentEntry = &collections.Comment{}
		req          dto.BlogCommentsRequest
	)

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ResponseFail(c, err.Error())
		return
	}

	if err := utils.Validator.Struct(req); err != nil {
		utils.ResponseFail(c, utils.HandlerValidation(err))
		return
	}

	blogID, err := primitive.ObjectIDFromHex(req.BlogID)
	if err != nil {
		utils.ResponseFail(c, consts.MsgBlogNotFound)
		return
	}

	filter := bson.M{
		"blog":       blogID,
		"isApproved": true,
	}
	opts := options.Find().SetSort(bson.M{"createdAt": -1})

	comments, err := commentEntry.Find(filter, opts)
	if err != nil {
		utils.ResponseFail(c, err.Error())
		return
	}

	utils.ResponseSuccess(c, "", gin.H{"comments": comments})
}
