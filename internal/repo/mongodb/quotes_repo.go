package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sparklenest/cleaning-bookings/internal/database"
	"github.com/sparklenest/cleaning-bookings/internal/domain"
)

type QuotesRepository interface {
	Create(ctx context.Context, input *domain.QuoteInput) (*domain.Quote, error)
	List(ctx context.Context) ([]domain.Quote, error)
	GetByID(ctx context.Context, id string) (*domain.Quote, error)
	UpdateStatus(ctx context.Context, id string, status domain.QuoteStatus) (*domain.Quote, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type quotesRepository struct {
	coll *mongo.Collection
}

func NewQuotesRepository(db *mongo.Database) QuotesRepository {
	return &quotesRepository{coll: db.Collection(database.CollQuotes)}
}

type quoteDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"name"`
	Email         string             `bson:"email"`
	Phone         string             `bson:"phone"`
	Address       string             `bson:"address"`
	ServiceArea   string             `bson:"serviceArea"`
	ServiceType   string             `bson:"serviceType"`
	PropertyType  string             `bson:"propertyType"`
	SquareFootage string             `bson:"squareFootage"`
	Adults        string             `bson:"adults"`
	Kids          string             `bson:"kids"`
	Pets          string             `bson:"pets"`
	ServiceLevel  string             `bson:"serviceLevel"`
	Kitchens      string             `bson:"kitchens"`
	FullBathrooms string             `bson:"fullBathrooms"`
	HalfBathrooms string             `bson:"halfBathrooms"`
	WalkInShowers string             `bson:"walkInShowers"`
	LargeOvalTubs string             `bson:"largeOvalTubs"`
	DoubleSinks   string             `bson:"doubleSinks"`
	Basement      string             `bson:"basement"`
	Dusting       string             `bson:"dusting"`
	Comments      string             `bson:"comments"`
	CreatedAt     string             `bson:"createdAt"`
	Status        domain.QuoteStatus `bson:"status"`
}

func toQuote(d *quoteDoc) *domain.Quote {
	return &domain.Quote{
		ID:            d.ID.Hex(),
		Name:          d.Name,
		Email:         d.Email,
		Phone:         d.Phone,
		Address:       d.Address,
		ServiceArea:   d.ServiceArea,
		ServiceType:   d.ServiceType,
		PropertyType:  d.PropertyType,
		SquareFootage: d.SquareFootage,
		Adults:        d.Adults,
		Kids:          d.Kids,
		Pets:          d.Pets,
		ServiceLevel:  d.ServiceLevel,
		Kitchens:      d.Kitchens,
		FullBathrooms: d.FullBathrooms,
		HalfBathrooms: d.HalfBathrooms,
		WalkInShowers: d.WalkInShowers,
		LargeOvalTubs: d.LargeOvalTubs,
		DoubleSinks:   d.DoubleSinks,
		Basement:      d.Basement,
		Dusting:       d.Dusting,
		Comments:      d.Comments,
		CreatedAt:     d.CreatedAt,
		Status:        d.Status,
	}
}

func (r *quotesRepository) Create(ctx context.Context, input *domain.QuoteInput) (*domain.Quote, error) {
	doc := quoteDoc{
		ID:            primitive.NewObjectID(),
		Name:          input.Name,
		Email:         input.Email,
		Phone:         input.Phone,
		Address:       input.Address,
		ServiceArea:   input.ServiceArea,
		ServiceType:   input.ServiceType,
		PropertyType:  input.PropertyType,
		SquareFootage: input.SquareFootage,
		Adults:        input.Adults,
		Kids:          input.Kids,
		Pets:          input.Pets,
		ServiceLevel:  input.ServiceLevel,
		Kitchens:      input.Kitchens,
		FullBathrooms: input.FullBathrooms,
		HalfBathrooms: input.HalfBathrooms,
		WalkInShowers: input.WalkInShowers,
		LargeOvalTubs: input.LargeOvalTubs,
		DoubleSinks:   input.DoubleSinks,
		Basement:      input.Basement,
		Dusting:       input.Dusting,
		Comments:      input.Comments,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
		Status:        domain.QuotePending,
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	return toQuote(&doc), nil
}

func (r *quotesRepository) List(ctx context.Context) ([]domain.Quote, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []quoteDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	quotes := make([]domain.Quote, 0, len(docs))
	for i := range docs {
		quotes = append(quotes, *toQuote(&docs[i]))
	}
	return quotes, nil
}

func (r *quotesRepository) GetByID(ctx context.Context, id string) (*domain.Quote, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var doc quoteDoc
	err = r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toQuote(&doc), nil
}

func (r *quotesRepository) UpdateStatus(ctx context.Context, id string, status domain.QuoteStatus) (*domain.Quote, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc quoteDoc
	err = r.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "status", Value: status}}}},
		opts,
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toQuote(&doc), nil
}

func (r *quotesRepository) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
