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

const opTimeout = 3 * time.Second

type BookingsRepository interface {
	Create(ctx context.Context, input *domain.BookingInput) (*domain.Booking, error)
	List(ctx context.Context) ([]domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
	Delete(ctx context.Context, id string) (bool, error)
	DeleteAll(ctx context.Context) error
}

type bookingsRepository struct {
	coll *mongo.Collection
}

func NewBookingsRepository(db *mongo.Database) BookingsRepository {
	return &bookingsRepository{coll: db.Collection(database.CollBookings)}
}

// bookingDoc is the stored shape. The ObjectID never leaves this package;
// toBooking renders it as the public hex id.
type bookingDoc struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty"`
	Name          string               `bson:"name"`
	Email         string               `bson:"email"`
	Phone         string               `bson:"phone"`
	Date          string               `bson:"date"`
	Time          string               `bson:"time"`
	Whatsapp      bool                 `bson:"whatsapp"`
	Service       string               `bson:"service"`
	Location      string               `bson:"location"`
	PaymentMethod string               `bson:"paymentMethod"`
	CreatedAt     string               `bson:"createdAt"`
	Status        domain.BookingStatus `bson:"status"`
}

func toBooking(d *bookingDoc) *domain.Booking {
	return &domain.Booking{
		ID:            d.ID.Hex(),
		Name:          d.Name,
		Email:         d.Email,
		Phone:         d.Phone,
		Date:          d.Date,
		Time:          d.Time,
		Whatsapp:      d.Whatsapp,
		Service:       d.Service,
		Location:      d.Location,
		PaymentMethod: d.PaymentMethod,
		CreatedAt:     d.CreatedAt,
		Status:        d.Status,
	}
}

func (r *bookingsRepository) Create(ctx context.Context, input *domain.BookingInput) (*domain.Booking, error) {
	doc := bookingDoc{
		ID:            primitive.NewObjectID(),
		Name:          input.Name,
		Email:         input.Email,
		Phone:         input.Phone,
		Date:          input.Date,
		Time:          input.Time,
		Whatsapp:      input.Whatsapp,
		Service:       input.Service,
		Location:      input.Location,
		PaymentMethod: input.PaymentMethod,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
		Status:        domain.BookingPending,
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	return toBooking(&doc), nil
}

func (r *bookingsRepository) List(ctx context.Context) ([]domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []bookingDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	bookings := make([]domain.Booking, 0, len(docs))
	for i := range docs {
		bookings = append(bookings, *toBooking(&docs[i]))
	}
	return bookings, nil
}

func (r *bookingsRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Malformed ids read as not-found, same as absent ones.
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var doc bookingDoc
	err = r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toBooking(&doc), nil
}

func (r *bookingsRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc bookingDoc
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
	return toBooking(&doc), nil
}

func (r *bookingsRepository) Delete(ctx context.Context, id string) (bool, error) {
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

func (r *bookingsRepository) DeleteAll(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := r.coll.DeleteMany(ctx, bson.D{})
	return err
}
