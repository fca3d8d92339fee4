package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, method string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, "/", nil)
	return c, w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestResponseSuccess(t *testing.T) {
	c, w := newTestContext(t, http.MethodGet)

	ResponseSuccess(c, "", gin.H{"blogs": []string{}})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["message"])
	assert.Contains(t, body, "blogs")
}

func TestResponseFailKeepsStatus200(t *testing.T) {
	c, w := newTestContext(t, http.MethodPost)

	ResponseFail(c, "Blog not found")

	// Lỗi logic giữ status 200, chỉ bật cờ success=false
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Blog not found", body["message"])
}

func TestResponseError(t *testing.T) {
	c, w := newTestContext(t, http.MethodPost)

	ResponseError(c, http.StatusNotFound, "Blog not found.")

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
}

func TestDefaultMessageByMethod(t *testing.T) {
	assert.NotEmpty(t, GetSuccessMessageByMethod(http.MethodGet))
	assert.NotEmpty(t, GetErrorMessageByMethod(http.MethodDelete))
	assert.Empty(t, GetSuccessMessageByMethod("TRACE"))
}
