package controllers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, req *http.Request) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func newMultipartRequest(t *testing.T, fields map[string]string) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/blog/add", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestAddBlogMissingFields(t *testing.T) {
	cases := []struct {
		name   string
		fields map[string]string
	}{
		{
			name:   "no blog payload at all",
			fields: map[string]string{},
		},
		{
			name:   "missing title",
			fields: map[string]string{"blog": `{"description":"body"}`},
		},
		{
			name:   "missing description",
			fields: map[string]string{"blog": `{"title":"hello"}`},
		},
		{
			// title + description có nhưng không có file ảnh
			name:   "missing image",
			fields: map[string]string{"blog": `{"title":"hello","description":"body"}`},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, w := newTestContext(t, newMultipartRequest(t, tc.fields))

			AddBlog(c)

			// Validation fail: không upload, không ghi store, status vẫn 200
			assert.Equal(t, http.StatusOK, w.Code)
			body := decodeBody(t, w)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, "Missing required fields", body["message"])
		})
	}
}

func TestGetBlogByIDInvalidID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/blog/not-a-hex-id", nil)
	c, w := newTestContext(t, req)
	c.Params = gin.Params{{Key: "blogId", Value: "not-a-hex-id"}}

	GetBlogByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Blog not found", body["message"])
}

func TestEditBlogInvalidIDIs404(t *testing.T) {
	req := httptest.NewRequest(http.MethodPut, "/api/blog/edit/bad-id", nil)
	c, w := newTestContext(t, req)
	c.Params = gin.Params{{Key: "id", Value: "bad-id"}}

	EditBlog(c)

	// Edit là endpoint duy nhất trong nhóm CRUD dùng status code thật
	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
}

func TestDeleteBlogInvalidID(t *testing.T) {
	payload := bytes.NewBufferString(`{"id":"bad-id"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/blog/delete", payload)
	req.Header.Set("Content-Type", "application/json")
	c, w := newTestContext(t, req)

	DeleteBlog(c)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Blog not found", body["message"])
}

func TestTogglePublishInvalidID(t *testing.T) {
	payload := bytes.NewBufferString(`{"id":"bad-id"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/blog/toggle-publish", payload)
	req.Header.Set("Content-Type", "application/json")
	c, w := newTestContext(t, req)

	TogglePublish(c)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
}
