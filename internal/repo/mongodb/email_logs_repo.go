package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sparklenest/cleaning-bookings/internal/database"
	"github.com/sparklenest/cleaning-bookings/internal/domain"
)

type EmailLogsRepository interface {
	Create(ctx context.Context, input *domain.EmailLogInput) (*domain.EmailLogEntry, error)
	List(ctx context.Context) ([]domain.EmailLogEntry, error)
	Clear(ctx context.Context) error
}

type emailLogsRepository struct {
	coll *mongo.Collection
}

func NewEmailLogsRepository(db *mongo.Database) EmailLogsRepository {
	return &emailLogsRepository{coll: db.Collection(database.CollEmailLogs)}
}

type emailLogDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	To        string             `bson:"to"`
	Subject   string             `bson:"subject"`
	HTML      string             `bson:"html"`
	CreatedAt string             `bson:"createdAt"`
	Sent      bool               `bson:"sent"`
	Error     string             `bson:"error,omitempty"`
}

func toEmailLog(d *emailLogDoc) *domain.EmailLogEntry {
	return &domain.EmailLogEntry{
		ID:        d.ID.Hex(),
		To:        d.To,
		Subject:   d.Subject,
		HTML:      d.HTML,
		CreatedAt: d.CreatedAt,
		Sent:      d.Sent,
		Error:     d.Error,
	}
}

func (r *emailLogsRepository) Create(ctx context.Context, input *domain.EmailLogInput) (*domain.EmailLogEntry, error) {
	doc := emailLogDoc{
		ID:        primitive.NewObjectID(),
		To:        input.To,
		Subject:   input.Subject,
		HTML:      input.HTML,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Sent:      input.Sent,
		Error:     input.Error,
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	return toEmailLog(&doc), nil
}

func (r *emailLogsRepository) List(ctx context.Context) ([]domain.EmailLogEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []emailLogDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	logs := make([]domain.EmailLogEntry, 0, len(docs))
	for i := range docs {
		logs = append(logs, *toEmailLog(&docs[i]))
	}
	return logs, nil
}

func (r *emailLogsRepository) Clear(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := r.coll.DeleteMany(ctx, bson.D{})
	return err
}
