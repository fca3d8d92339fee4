package jobs

import (
	"QuickBlog/collections"
	"QuickBlog/configs"
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StartCommentSweeper chạy định kỳ job dọn comment mồ côi.
// Cascade delete đã xóa comment ngay khi xóa blog, job này chỉ là lưới an toàn
// cho trường hợp crash giữa hai bước hoặc comment được thêm vào blog không tồn tại.
func StartCommentSweeper() {
	interval := configs.GetCommentSweepMinutes()
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(time.Duration(interval) * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		if err := DeleteOrphanComments(); err != nil {
			log.Printf("Lỗi dọn comment mồ côi: %v", err)
		}
	}
}

func DeleteOrphanComments() error {
	var (
		blogEntry    = &collections.Blog{}
		commentEntry = &collections.Comment{}
		ctx, cancel  = context.WithTimeout(context.Background(), 60*time.Second)
	)
	defer cancel()

	//Lấy danh sách blog id đang có comment
	rawIDs, err := commentEntry.Distinct(ctx, "blog", nil)
	if err != nil {
		return err
	}

	blogIDs := make([]primitive.ObjectID, 0, len(rawIDs))
	for _, raw := range rawIDs {
		if id, ok := raw.(primitive.ObjectID); ok {
			blogIDs = append(blogIDs, id)
		}
	}

	if len(blogIDs) == 0 {
		return nil
	}

	//Lấy các blog còn tồn tại trong danh sách đó
	blogs, err := blogEntry.Find(bson.M{"_id": bson.M{"$in": blogIDs}})
	if err != nil {
		return err
	}

	existed := make(map[primitive.ObjectID]struct{}, len(blogs))
	for _, blog := range blogs {
		existed[blog.ID] = struct{}{}
	}

	orphans := make([]primitive.ObjectID, 0)
	for _, id := range blogIDs {
		if _, ok := existed[id]; !ok {
			orphans = append(orphans, id)
		}
	}

	if len(orphans) == 0 {
		return nil
	}

	log.Printf("Dọn comment của %d blog không còn tồn tại", len(orphans))
	return commentEntry.DeleteMany(ctx, bson.M{"blog": bson.M{"$in": orphans}})
}
