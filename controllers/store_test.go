package controllers

import (
	"QuickBlog/database"
	"QuickBlog/utils"
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func newEditRequest(t *testing.T, id, blogJSON string, image []byte) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("blog", blogJSON))
	if image != nil {
		part, err := writer.CreateFormFile("image", "thumb.png")
		require.NoError(t, err)
		_, err = part.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPut, "/api/blog/edit/"+id, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func pngBytes() []byte {
	header := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}
	return append(header, make([]byte, 64)...)
}

func TestGetAllBlogsPublishGate(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("listing chỉ query bài đã publish", func(mt *mtest.T) {
		database.SetDB(mt.DB)

		doc := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "title", Value: "bài công khai"},
			{Key: "isPublished", Value: true},
		}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "quickblog.blogs", mtest.FirstBatch, doc))

		c, w := newTestContext(mt.T, httptest.NewRequest(http.MethodGet, "/api/blog/all", nil))
		GetAllBlogs(c)

		require.Equal(mt, http.StatusOK, w.Code)
		body := decodeBody(mt.T, w)
		assert.Equal(mt, true, body["success"])

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		require.Equal(mt, "find", evt.CommandName)
		gate, ok := evt.Command.Lookup("filter", "isPublished").BooleanOK()
		require.True(mt, ok)
		assert.True(mt, gate)
	})
}

func TestGetBlogCommentsApprovalGate(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("listing chỉ query comment đã duyệt của đúng blog", func(mt *mtest.T) {
		database.SetDB(mt.DB)

		blogID := primitive.NewObjectID()
		doc := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "blog", Value: blogID},
			{Key: "name", Value: "an"},
			{Key: "content", Value: "bài hay"},
			{Key: "isApproved", Value: true},
		}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "quickblog.comments", mtest.FirstBatch, doc))

		payload := strings.NewReader(fmt.Sprintf(`{"blogId":%q}`, blogID.Hex()))
		req := httptest.NewRequest(http.MethodPost, "/api/blog/comments", payload)
		req.Header.Set("Content-Type", "application/json")
		c, w := newTestContext(mt.T, req)

		GetBlogComments(c)

		require.Equal(mt, http.StatusOK, w.Code)
		body := decodeBody(mt.T, w)
		assert.Equal(mt, true, body["success"])

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		require.Equal(mt, "find", evt.CommandName)

		approved, ok := evt.Command.Lookup("filter", "isApproved").BooleanOK()
		require.True(mt, ok)
		assert.True(mt, approved)

		id, ok := evt.Command.Lookup("filter", "blog").ObjectIDOK()
		require.True(mt, ok)
		assert.Equal(mt, blogID, id)
	})
}

func TestDeleteBlogCascadeOrder(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("xóa comment trước rồi mới xóa blog", func(mt *mtest.T) {
		database.SetDB(mt.DB)

		blogID := primitive.NewObjectID()
		existing := bson.D{
			{Key: "_id", Value: blogID},
			{Key: "title", Value: "bài sắp xóa"},
			{Key: "isPublished", Value: true},
		}
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "quickblog.blogs", mtest.FirstBatch, existing),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 2}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
		)

		payload := strings.NewReader(fmt.Sprintf(`{"id":%q}`, blogID.Hex()))
		req := httptest.NewRequest(http.MethodPost, "/api/blog/delete", payload)
		req.Header.Set("Content-Type", "application/json")
		c, w := newTestContext(mt.T, req)

		DeleteBlog(c)

		require.Equal(mt, http.StatusOK, w.Code)
		body := decodeBody(mt.T, w)
		assert.Equal(mt, true, body["success"])
		assert.Equal(mt, "blog deleted successfully", body["message"])

		find := mt.GetStartedEvent()
		require.NotNil(mt, find)
		require.Equal(mt, "find", find.CommandName)

		first := mt.GetStartedEvent()
		require.NotNil(mt, first)
		require.Equal(mt, "delete", first.CommandName)
		assert.Equal(mt, "comments", first.Command.Lookup("delete").StringValue())

		second := mt.GetStartedEvent()
		require.NotNil(mt, second)
		require.Equal(mt, "delete", second.CommandName)
		assert.Equal(mt, "blogs", second.Command.Lookup("delete").StringValue())
	})
}

func TestEditBlogWithoutImageLeavesAssetAlone(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("edit không kèm ảnh thì $set không đụng field ảnh", func(mt *mtest.T) {
		database.SetDB(mt.DB)
		// Nếu handler đụng asset store ở path này sẽ panic vì client nil
		utils.SetCloudinary(nil)

		blogID := primitive.NewObjectID()
		existing := bson.D{
			{Key: "_id", Value: blogID},
			{Key: "title", Value: "tiêu đề cũ"},
			{Key: "image", Value: "https://res.example/blogs/old.webp"},
			{Key: "imageId", Value: "blogs/old"},
			{Key: "isPublished", Value: true},
		}
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "quickblog.blogs", mtest.FirstBatch, existing),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
			mtest.CreateCursorResponse(0, "quickblog.blogs", mtest.FirstBatch, existing),
		)

		req := newEditRequest(mt.T, blogID.Hex(), `{"title":"tiêu đề mới"}`, nil)
		c, w := newTestContext(mt.T, req)
		c.Params = gin.Params{{Key: "id", Value: blogID.Hex()}}

		EditBlog(c)

		require.Equal(mt, http.StatusOK, w.Code)
		body := decodeBody(mt.T, w)
		assert.Equal(mt, true, body["success"])

		_ = mt.GetStartedEvent() // find
		update := mt.GetStartedEvent()
		require.NotNil(mt, update)
		require.Equal(mt, "update", update.CommandName)

		set := update.Command.Lookup("updates").Array().Index(0).Value().Document().Lookup("u", "$set").Document()
		_, err := set.LookupErr("title")
		assert.NoError(mt, err)
		_, err = set.LookupErr("image")
		assert.Error(mt, err)
		_, err = set.LookupErr("imageId")
		assert.Error(mt, err)
	})
}

func TestEditBlogUploadFailureKeepsOldAsset(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("upload lỗi thì không xóa ảnh cũ và không update record", func(mt *mtest.T) {
		database.SetDB(mt.DB)
		loadHandlerConfig(mt.T)

		destroyCalled := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.Contains(r.URL.Path, "destroy") {
				destroyCalled = true
			}
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("upstream unavailable"))
		}))
		defer server.Close()

		cld, err := cloudinary.NewFromParams("demo", "key", "secret")
		require.NoError(mt, err)
		cld.Config.API.UploadPrefix = server.URL
		cld.Upload.Config.API.UploadPrefix = server.URL
		utils.SetCloudinary(cld)

		blogID := primitive.NewObjectID()
		existing := bson.D{
			{Key: "_id", Value: blogID},
			{Key: "title", Value: "tiêu đề cũ"},
			{Key: "imageId", Value: "blogs/old"},
		}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "quickblog.blogs", mtest.FirstBatch, existing))

		req := newEditRequest(mt.T, blogID.Hex(), `{"title":"tiêu đề mới"}`, pngBytes())
		c, w := newTestContext(mt.T, req)
		c.Params = gin.Params{{Key: "id", Value: blogID.Hex()}}

		EditBlog(c)

		assert.Equal(mt, http.StatusInternalServerError, w.Code)
		assert.False(mt, destroyCalled)

		// Sau find check tồn tại không được có thêm lệnh nào tới store
		_ = mt.GetStartedEvent()
		assert.Nil(mt, mt.GetStartedEvent())
	})
}

func TestDeleteCommentMissing(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("comment không tồn tại thì không gọi delete", func(mt *mtest.T) {
		database.SetDB(mt.DB)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "quickblog.comments", mtest.FirstBatch))

		payload := strings.NewReader(fmt.Sprintf(`{"id":%q}`, primitive.NewObjectID().Hex()))
		req := httptest.NewRequest(http.MethodPost, "/api/admin/delete-comment", payload)
		req.Header.Set("Content-Type", "application/json")
		c, w := newTestContext(mt.T, req)

		DeleteComment(c)

		assert.Equal(mt, http.StatusOK, w.Code)
		body := decodeBody(mt.T, w)
		assert.Equal(mt, false, body["success"])
		assert.Equal(mt, "Comment not found", body["message"])

		_ = mt.GetStartedEvent() // find
		assert.Nil(mt, mt.GetStartedEvent())
	})
}
