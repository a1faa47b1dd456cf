package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Rudraa01/it-submission/internal/core/domain"
)

const collectionTasks = "tasks"

type TaskRepository struct {
	col *mongo.Collection
}

func NewTaskRepository(db *mongo.Database) *TaskRepository {
	return &TaskRepository{col: db.Collection(collectionTasks)}
}

type mongoTask struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	TaskLink    string             `bson:"task_link"`
	Screenshot  domain.Screenshot  `bson:"screenshot"`
	Status      string             `bson:"status"`
	SubmittedBy string             `bson:"submitted_by"`
	ReviewedBy  string             `bson:"reviewed_by,omitempty"`
	Feedback    string             `bson:"feedback,omitempty"`
	SubmittedAt time.Time          `bson:"submitted_at"`
	ReviewedAt  *time.Time         `bson:"reviewed_at,omitempty"`
}

func (mt *mongoTask) toDomain() *domain.Task {
	t := &domain.Task{
		ID:          mt.ID.Hex(),
		Title:       mt.Title,
		Description: mt.Description,
		TaskLink:    mt.TaskLink,
		Screenshot:  mt.Screenshot,
		Status:      domain.TaskStatus(mt.Status),
		SubmittedBy: mt.SubmittedBy,
		ReviewedBy:  mt.ReviewedBy,
		Feedback:    mt.Feedback,
		SubmittedAt: mt.SubmittedAt.UTC(),
	}
	if mt.ReviewedAt != nil {
		utc := mt.ReviewedAt.UTC()
		t.ReviewedAt = &utc
	}
	return t
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoTask{
		Title:       task.Title,
		Description: task.Description,
		TaskLink:    task.TaskLink,
		Screenshot:  task.Screenshot,
		Status:      string(task.Status),
		SubmittedBy: task.SubmittedBy,
		SubmittedAt: task.SubmittedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*domain.Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrTaskNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mt mongoTask
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&mt); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	return mt.toDomain(), nil
}

func (r *TaskRepository) ListByStatus(ctx context.Context, status domain.TaskStatus) ([]domain.Task, error) {
	return r.list(ctx, bson.M{"status": string(status)})
}

func (r *TaskRepository) ListBySubmitter(ctx context.Context, userID string) ([]domain.Task, error) {
	return r.list(ctx, bson.M{"submitted_by": userID})
}

func (r *TaskRepository) ListAll(ctx context.Context) ([]domain.Task, error) {
	return r.list(ctx, bson.M{})
}

// list runs a filtered find sorted newest submission first.
func (r *TaskRepository) list(ctx context.Context, filter bson.M) ([]domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "submitted_at", Value: -1}})
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer cursor.Close(ctx)

	var tasks []domain.Task
	for cursor.Next(ctx) {
		var mt mongoTask
		if err := cursor.Decode(&mt); err != nil {
			return nil, fmt.Errorf("decode task: %w", err)
		}
		tasks = append(tasks, *mt.toDomain())
	}
	return tasks, cursor.Err()
}

func (r *TaskRepository) SetReview(ctx context.Context, id string, status domain.TaskStatus, feedback, reviewerID string, reviewedAt time.Time) (*domain.Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrTaskNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var mt mongoTask
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{
			"status":      string(status),
			"feedback":    feedback,
			"reviewed_by": reviewerID,
			"reviewed_at": reviewedAt,
		}},
		opts,
	).Decode(&mt)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("set review: %w", err)
	}
	return mt.toDomain(), nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrTaskNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) DeleteBySubmitter(ctx context.Context, userID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteMany(ctx, bson.M{"submitted_by": userID})
	if err != nil {
		return 0, fmt.Errorf("delete tasks by submitter: %w", err)
	}
	return res.DeletedCount, nil
}

// EnsureIndexes creates the query indexes on the tasks collection.
func (r *TaskRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "submitted_at", Value: -1}}},
		{Keys: bson.D{{Key: "submitted_by", Value: 1}, {Key: "submitted_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
