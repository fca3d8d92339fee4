package controllers

import (
	"QuickBlog/collections"
	"QuickBlog/configs"
	"QuickBlog/consts"
	"QuickBlog/database"
	"QuickBlog/dto"
	"QuickBlog/utils"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

const (
	loginFailedTime     = 5 * time.Minute
	maxLoginFailedCount = 5
)

// Login POST /api/admin/login — tài khoản admin duy nhất cấu hình trong config
func Login(c *gin.Context) {
	var (
		loginRequest dto.LoginRequest
		ctx, cancel  = context.WithTimeout(context.Background(), 10*time.Second)
		redisClient  = database.GetRedisClient().Client
	)
	defer cancel()

	if err := c.ShouldBindJSON(&loginRequest); err != nil {
		utils.ResponseError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := utils.Validator.Struct(loginRequest); err != nil {
		utils.ResponseError(c, http.StatusBadRequest, utils.HandlerValidation(err))
		return
	}

	// Chặn brute-force: đếm số lần login sai trong redis
	failedKey := fmt.Sprintf("login:failed:%s", loginRequest.Email)
	failedCount, err := redisClient.Get(ctx, failedKey).Int()
	if err == nil && failedCount >= maxLoginFailedCount {
		utils.ResponseError(c, http.StatusTooManyRequests, consts.MsgTooManyLoginTries)
		return
	}

	passwordErr := bcrypt.CompareHashAndPassword(
		[]byte(configs.GetAdminPasswordHash()),
		[]byte(loginRequest.Password),
	)
	if loginRequest.Email != configs.GetAdminEmail() || passwordErr != nil {
		redisClient.Incr(ctx, failedKey)
		redisClient.Expire(ctx, failedKey, loginFailedTime)
		utils.ResponseFail(c, consts.MsgInvalidCredentials)
		return
	}

	redisClient.Del(ctx, failedKey)

	accessToken, _, err := utils.GenerateToken(loginRequest.Email, configs.GetJWTAccessExp(), consts.TokenTypeAccess)
	if err != nil {
		utils.ResponseError(c, http.StatusInternalServerError, consts.MsgInternalError)
		return
	}

	refreshToken, _, err := utils.GenerateToken(loginRequest.Email, configs.GetJWTRefreshExp(), consts.TokenTypeRefresh)
	if err != nil {
		utils.ResponseError(c, http.StatusInternalServerError, consts.MsgInternalError)
		return
	}

	utils.ResponseSuccess(c, "", gin.H{"token": accessToken, "refreshToken": refreshToken})
}

// RefreshToken POST /api/admin/refresh — đổi refresh token còn hạn lấy access token mới
func RefreshToken(c *gin.Context) {
	var (
		req dto.RefreshTokenRequest
	)

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ResponseError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := utils.Validator.Struct(req); err != nil {
		utils.ResponseError(c, http.StatusBadRequest, utils.HandlerValidation(err))
		return
	}

	// Access token không dùng thay refresh token được
	claims, err := utils.ExtractCustomClaims(req.RefreshToken)
	if err != nil || claims.Type != consts.TokenTypeRefresh {
		utils.ResponseError(c, http.StatusUnauthorized, "Invalid token")
		return
	}

	token, _, err := utils.GenerateToken(claims.Email, configs.GetJWTAccessExp(), consts.TokenTypeAccess)
	if err != nil {
		utils.ResponseError(c, http.StatusInternalServerError, consts.MsgInternalError)
		return
	}

	utils.ResponseSuccess(c, "", gin.H{"token": token})
}

// Logout POST /api/admin/logout — đưa access token vào blacklist cho đến khi hết hạn
func Logout(c *gin.Context) {
	var (
		ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
		redisClient = database.GetRedisClient().Client
	)
	defer cancel()

	authHeader := strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
	claims, err := utils.ExtractCustomClaims(authHeader)
	if err != nil {
		utils.ResponseError(c, http.StatusUnauthorized, err.Error())
		return
	}

	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining > 0 {
		key := fmt.Sprintf("blacklist:accesstoken:%s", authHeader)
		if err := redisClient.Set(ctx, key, 1, remaining).Err(); err != nil {
			utils.ResponseError(c, http.StatusInternalServerError, consts.MsgInternalError)
			return
		}
	}

	utils.ResponseSuccess(c, "logged out", nil)
}

// GetDashboard GET /api/admin/dashboard — số liệu tổng quan + 5 blog mới nhất
func GetDashboard(c *gin.Context) {
	var (
		blogEntry    = &collections.Blog{}
		commentEntry = &collections.Comment{}
	)

	blogCount, err := blogEntry.CountDocuments(nil)
	if err != nil {
		utils.ResponseFail(c, err.Error())
		return
	}

	draftCount, err := blogEntry.CountDocuments(bson.M{"isPublished": false})
	if err != nil {
		utils.ResponseFail(c, err.Error())
		return
	}

	commentCount, err := commentEntry.CountDocument(bson.M{})
	if err != nil {
		utils.ResponseFail(c, err.Error())
		return
	}

	recentBlogs, err := getRecentBlogs(5)
	if err != nil {
		utils.ResponseFail(c, err.Error())
		return
	}

	utils.ResponseSuccess(c, "", gin.H{
		"dashboard": gin.H{
			"blogs":       blogCount,
			"drafts":      draftCount,
			"comments":    commentCount,
			"recentBlogs": recentBlogs,
		},
	})
}

// GetAllBlogsAdmin GET /api/admin/blogs — cả draft lẫn đã publish, mới nhất trước
func GetAllBlogsAdmin(c *gin.Context) {
	var (
		blogEntry = &collections.Blog{}
	)

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	blogs, err := blogEntry.Find(nil, opts)
	if err != nil {
		utils.ResponseFail(c, err.Error())
		return
	}

	utils.ResponseSuccess(c, "", gin.H{"blogs": blogs})
}

// GetAllCommentsAdmin GET /api/admin/comments — gồm cả comment chưa duyệt
func GetAllCommentsAdmin(c *gin.Context) {
	var (
		commentEntry = &collections.Comment{}
	)

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	comments, err := commentEntry.Find(nil, opts)
	if err != nil {
		utils.ResponseFail(c, err.Error())
		return
	}

	utils.ResponseSuccess(c, "", gin.H{"comments": comments})
}

// DeleteComment POST /api/admin/delete-comment
func DeleteComment(c *gin.Context) {
	var (
		commentEntry = &collections.Comment{}
		req          dto.DeleteCommentRequest
	)

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ResponseFail(c, err.Error())
		return
	}

	if err := utils.Validator.Struct(req); err != nil {
		utils.ResponseFail(c, utils.HandlerValidation(err))
		return
	}

	commentID, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		utils.ResponseFail(c, consts.ErrCommentNotFound.Error())
		return
	}

	err = commentEntry.First(bson.M{"_id": commentID})
	switch {
	case err == nil:
	case errors.Is(err, mongo.ErrNoDocuments):
		utils.ResponseFail(c, consts.ErrCommentNotFound.Error())
		return
	default:
		utils.ResponseFail(c, err.Error())
		return
	}

	if err := commentEntry.DeleteOne(bson.M{"_id": commentID}); err != nil {
		utils.ResponseFail(c, err.Error())
		return
	}

	utils.ResponseSuccess(c, consts.MsgCommentDeleted, nil)
}
