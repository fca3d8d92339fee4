package collections

import (
	"QuickBlog/database"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Comment struct {
	ID primitive.ObjectID `bson:"_id" json:"id"`

	Blog    primitive.ObjectID `bson:"blog" json:"blog"`
	Name    string             `bson:"name" json:"name"`
	Content string             `bson:"content" json:"content"`

	// Mặc định false, chỉ comment đã duyệt mới hiện ở trang public
	IsApproved bool `bson:"isApproved" json:"isApproved"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

type Comments []Comment

func (u *Comment) getCollectionName() string {
	return "comments"
}

func (u *Comment) Create(ctx context.Context) error {
	var (
		db  = database.GetDB()
		err error
	)

	if ctx == nil {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
	}

	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	_, err = db.Collection(u.getCollectionName()).InsertOne(ctx, u)
	if err != nil {
		return err
	}
	return nil
}

func (u *Comment) First(filter bson.M, opts ...*options.FindOneOptions) error {
	var (
		ctx, cancel = context.WithTimeout(context.Background(), 2*time.Second)
		db          = database.GetDB()
		err         error
	)
	defer cancel()
	err = db.Collection(u.getCollectionName()).FindOne(ctx, filter, opts...).Decode(u)
	if err != nil {
		return err
	}
	return nil
}

func (u *Comment) Find(filter bson.M, opts ...*options.FindOptions) (Comments, error) {
	var (
		ctx, cancel = context.WithTimeout(context.Background(), 2*time.Second)
		db          = database.GetDB()
		result      Comments = []Comment{}
	)
	defer cancel()
	if filter == nil {
		filter = bson.M{}
	}

	cursor, err := db.Collection(u.getCollectionName()).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &result); err != nil {
		return nil, err
	}

	if result == nil {
		result = []Comment{}
	}

	return result, nil
}

func (u *Comment) DeleteOne(filter bson.M) error {
	var (
		ctx, cancel = context.WithTimeout(context.Background(), 2*time.Second)
		db          = database.GetDB()
	)
	defer cancel()

	res, err := db.Collection(u.getCollectionName()).DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (u *Comment) DeleteMany(ctx context.Context, filter bson.M) error {
	var (
		db  = database.GetDB()
		err error
	)

	if ctx == nil {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
	}

	_, err = db.Collection(u.getCollectionName()).DeleteMany(ctx, filter)
	if err != nil {
		return err
	}
	return nil
}

func (u *Comment) CountDocument(filter bson.M) (int64, error) {
	var (
		ctx, cancel = context.WithTimeout(context.Background(), 2*time.Second)
		db          = database.GetDB()
		err         error
	)
	defer cancel()
	res, err := db.Collection(u.getCollectionName()).CountDocuments(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res, nil
}

func (u *Comment) Distinct(ctx context.Context, field string, filter bson.M) ([]interface{}, error) {
	var (
		db = database.GetDB()
	)

	if ctx == nil {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
	}

	if filter == nil {
		filter = bson.M{}
	}

	return db.Collection(u.getCollectionName()).Distinct(ctx, field, filter)
}
