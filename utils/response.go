package utils

import (
	"QuickBlog/consts"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
)

var listMethod = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete}

func GetSuccessMessageByMethod(method string) string {
	if !slices.Contains(listMethod, method) {
		return ""
	}

	message := ""
	switch method {
	case http.MethodGet:
		message = consts.MsgGetSuccess
	case http.MethodPost:
		message = consts.MsgCreateSuccess
	case http.MethodPut, http.MethodPatch:
		message = consts.MsgUpdateSuccess
	case http.MethodDelete:
		message = consts.MsgDeleteSuccess
	}

	return message
}

func GetErrorMessageByMethod(method string) string {
	if !slices.Contains(listMethod, method) {
		return ""
	}

	message := ""
	switch method {
	case http.MethodGet:
		message = consts.MsgGetErr
	case http.MethodPost:
		message = consts.MsgCreateErr
	case http.MethodPut, http.MethodPatch:
		message = consts.MsgUpdateErr
	case http.MethodDelete:
		message = consts.MsgDeleteErr
	default:
		message = consts.MsgInternalError
	}

	return message
}

// ResponseSuccess trả envelope {success: true, message, ...payload} với status 200
func ResponseSuccess(c *gin.Context, msg string, payload gin.H) {
	if strings.TrimSpace(msg) == "" {
		msg = GetSuccessMessageByMethod(c.Request.Method)
	}

	body := gin.H{"success": true}
	if msg != "" {
		body["message"] = msg
	}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// ResponseFail là lỗi logic: status vẫn 200, chỉ bật success=false giống backend cũ
func ResponseFail(c *gin.Context, msg string) {
	if strings.TrimSpace(msg) == "" {
		msg = GetErrorMessageByMethod(c.Request.Method)
	}
	c.JSON(http.StatusOK, gin.H{
		"success": false,
		"message": msg,
	})
}

// ResponseError dùng cho hard failure (auth, generate, edit) với status 4xx/5xx
func ResponseError(c *gin.Context, status int, msg string) {
	if strings.TrimSpace(msg) == "" {
		msg = GetErrorMessageByMethod(c.Request.Method)
	}
	c.JSON(status, gin.H{
		"success": false,
		"message": msg,
	})
}
