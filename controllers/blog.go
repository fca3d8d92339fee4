package controllers

import (
	"QuickBlog/collections"
	"QuickBlog/configs"
	"QuickBlog/consts"
	"QuickBlog/dto"
	"QuickBlog/utils"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AddBlog POST /api/blog/add — multipart: blog (JSON) + image (file)
func AddBlog(c *gin.Context) {
	var (
		payload dto.BlogPayload
		cld     = utils.GetCloudinary()
	)

	// Phần "blog" là JSON encode nằm trong form
	if err := json.Unmarshal([]byte(c.PostForm("blog")), &payload); err != nil {
		utils.ResponseFail(c, consts.MsgMissingFields)
		return
	}

	fileHeader, fileErr := c.FormFile("image")
	if fileErr != nil {
		fileHeader = nil
	}

	// Kiểm tra đủ field bắt buộc trước, chưa đụng tới store hay upload
	if errs := utils.ValidateBlogPayload(payload, fileHeader); len(errs) > 0 {
		utils.ResponseFail(c, consts.MsgMissingFields)
		return
	}

	if err := utils.ChechValidFile(fileHeader); err != nil {
		utils.ResponseFail(c, err.Error())
		return
	}
	if err := utils.CheckValidMiMe(fileHeader); err != nil {
		utils.ResponseFail(c, err.Error())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.ResponseFail(c, err.Error())
		return
	}
	defer file.Close()

	// Upload ảnh gốc lên asset store
	uploadResult, err := utils.UploadFileCloudinary(cld, file, configs.GetCloudinaryFolder(), utils.BuildAssetName(payload.Title))
	if err != nil {
		utils.ResponseFail(c, err.Error())
		return
	}

	// URL hiển thị đi qua transform tối ưu
	optimizedURL, err := utils.BuildOptimizedURL(cld, uploadResult.PublicID)
	if err != nil {
		utils.ResponseFail(c, err.Error())
		return
	}

	newBlog := collections.Blog{
		Title:       payload.Title,
		Description: payload.Description,
		Keyword:     payload.Keyword,
		Image:       optimizedURL,
		ImageID:     uploadResult.PublicID,
		IsPublished: payload.IsPublished,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := newBlog.Create(nil); err != nil {
		utils.ResponseFail(c, err.Error())
		return
	}

	utils.ResponseSuccess(c, consts.MsgBlogAdded, nil)
}

// GetAllBlogs GET /api/blog/all — chỉ trả blog đã publish
func GetAllBlogs(c *gin.Context) {
	var (
		blogEntry = &collections.Blog{}
	)

	blogs, err := blogEntry.Find(bson.M{"isPublished": true})
	if err != nil {
		utils.ResponseFail(c, err.Error())
		return
	}

	utils.ResponseSuccess(c, "", gin.H{"blogs": blogs})
}

// GetBlogByID GET /api/blog/:blogId — không chặn draft, lấy theo id là ra
func GetBlogByID(c *gin.Context) {
	var (
		blogEntry = &collections.Blog{}
	)

	blogID, err := primitive.ObjectIDFromHex(c.Param("blogId"))
	if err != nil {
		utils.ResponseFail(c, consts.MsgBlogNotFound)
		return
	}

	err = blogEntry.First(bson.M{"_id": blogID})
	switch {
	case err == nil:
		utils.ResponseSuccess(c, "", gin.H{"blog": blogEntry})
	case errors.Is(err, mongo.ErrNoDocuments):
		utils.ResponseFail(c, consts.MsgBlogNotFound)
	default:
		utils.ResponseFail(c, err.Error())
	}
}

// EditBlog PUT /api/blog/edit/:id — multipart, ảnh mới là optional.
// Thứ tự bắt buộc: check tồn tại -> upload ảnh mới -> xóa ảnh cũ.
func EditBlog(c *gin.Context) {
	var (
		existedBlog = &collections.Blog{}
		payload     dto.UpdateBlogPayload
		cld         = utils.GetCloudinary()
	)

	blogID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.ResponseError(c, http.StatusNotFound, "Blog not found.")
		return
	}

	if err := json.Unmarshal([]byte(c.PostForm("blog")), &payload); err != nil {
		utils.ResponseError(c, http.StatusInternalServerError, consts.MsgInternalError)
		return
	}

	// Check tồn tại trước khi upload để không tạo asset mồ côi
	err = existedBlog.First(bson.M{"_id": blogID})
	switch {
	case err == nil:
	case errors.Is(err, mongo.ErrNoDocuments):
		utils.ResponseError(c, http.StatusNotFound, "Blog not found.")
		return
	default:
		utils.ResponseError(c, http.StatusInternalServerError, consts.MsgInternalError)
		return
	}

	updateDoc := bson.M{
		"updatedAt": time.Now(),
	}
	if payload.Title != nil {
		updateDoc["title"] = *payload.Title
	}
	if payload.Description != nil {
		updateDoc["description"] = *payload.Description
	}
	if payload.Keyword != nil {
		updateDoc["keyword"] = *payload.Keyword
	}
	if payload.IsPublished != nil {
		updateDoc["isPublished"] = *payload.IsPublished
	}

	fileHeader, fileErr := c.FormFile("image")
	if fileErr == nil && fileHeader != nil {
		if err := utils.ChechValidFile(fileHeader); err != nil {
			utils.ResponseError(c, http.StatusInternalServerError, err.Error())
			return
		}
		if err := utils.CheckValidMiMe(fileHeader); err != nil {
			utils.ResponseError(c, http.StatusInternalServerError, err.Error())
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			utils.ResponseError(c, http.StatusInternalServerError, consts.MsgInternalError)
			return
		}
		defer file.Close()

		title := existedBlog.Title
		if payload.Title != nil {
			title = *payload.Title
		}

		// Upload ảnh mới
		uploadResult, err := utils.UploadFileCloudinary(cld, file, configs.GetCloudinaryFolder(), utils.BuildAssetName(title))
		if err != nil {
			utils.ResponseError(c, http.StatusInternalServerError, consts.MsgInternalError)
			return
		}

		optimizedURL, err := utils.BuildOptimizedURL(cld, uploadResult.PublicID)
		if err != nil {
			utils.ResponseError(c, http.StatusInternalServerError, consts.MsgInternalError)
			return
		}

		updateDoc["image"] = optimizedURL
		updateDoc["imageId"] = uploadResult.PublicID

		// Ảnh mới đã lên xong mới được xóa ảnh cũ
		if existedBlog.ImageID != "" {
			if err := utils.DeleteFileCloudinary(cld, existedBlog.ImageID); err != nil {
				utils.ResponseError(c, http.StatusInternalServerError, consts.MsgInternalError)
				return
			}
		}
	}

	if err := existedBlog.Update(bson.M{"_id": blogID}, bson.M{"$set": updateDoc}); err != nil {
		utils.ResponseError(c, http.StatusInternalServerError, consts.MsgInternalError)
		return
	}

	// Đọc lại bản ghi sau update để trả cho client
	if err := existedBlog.First(bson.M{"_id": blogID}); err != nil {
		utils.ResponseError(c, http.StatusInternalServerError, consts.MsgInternalError)
		return
	}

	utils.ResponseSuccess(c, consts.MsgBlogUpdated, gin.H{"blog": existedBlog})
}

// DeleteBlog POST /api/blog/delete — xóa blog và cascade toàn bộ comment của nó
func DeleteBlog(c *gin.Context) {
	var (
		blogEntry    = &collections.Blog{}
		commentEntry = &collections.Comment{}
		req          dto.BlogIDRequest
	)

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ResponseFail(c, err.Error())
		return
	}

	blogID, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		utils.ResponseFail(c, consts.MsgBlogNotFound)
		return
	}

	err = blogEntry.First(bson.M{"_id": blogID})
	switch {
	case err == nil:
	case errors.Is(err, mongo.ErrNoDocuments):
		utils.ResponseFail(c, consts.MsgBlogNotFound)
		return
	default:
		utils.ResponseFail(c, err.Error())
		return
	}

	// Xóa comment trước theo id gốc để không bao giờ để lại comment mồ côi
	if err := commentEntry.DeleteMany(nil, bson.M{"blog": blogID}); err != nil {
		utils.ResponseFail(c, err.Error())
		return
	}

	if err := blogEntry.Delete(bson.M{"_id": blogID}); err != nil {
		utils.ResponseFail(c, err.Error())
		return
	}

	utils.ResponseSuccess(c, consts.MsgBlogDeleted, nil)
}

// TogglePublish POST /api/blog/toggle-publish
func TogglePublish(c *gin.Context) {
	var (
		blogEntry = &collections.Blog{}
		req       dto.BlogIDRequest
	)

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ResponseFail(c, err.Error())
		return
	}

	blogID, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		utils.ResponseFail(c, consts.MsgBlogNotFound)
		return
	}

	err = blogEntry.First(bson.M{"_id": blogID})
	switch {
	case err == nil:
	case errors.Is(err, mongo.ErrNoDocuments):
		utils.ResponseFail(c, consts.MsgBlogNotFound)
		return
	default:
		utils.ResponseFail(c, err.Error())
		return
	}

	updateDoc := bson.M{"$set": bson.M{
		"isPublished": !blogEntry.IsPublished,
		"updatedAt":   time.Now(),
	}}
	if err := blogEntry.Update(bson.M{"_id": blogID}, updateDoc); err != nil {
		utils.ResponseFail(c, err.Error())
		return
	}

	utils.ResponseSuccess(c, consts.MsgStatusUpdated, nil)
}

// getRecentBlogs dùng cho dashboard admin
func getRecentBlogs(limit int64) (collections.Blogs, error) {
	blogEntry := &collections.Blog{}
	opts := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetLimit(limit)
	return blogEntry.Find(nil, opts)
}
