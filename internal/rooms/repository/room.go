package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	roomserrors "roomly/internal/rooms/errors"
	"roomly/pkg/config"
	"roomly/pkg/model"
)

const (
	CollectionName = "Rooms"
)

// RoomStore looks up and persists rooms together with their booking sets.
// Save is an idempotent upsert of the full room state.
type RoomStore interface {
	Create(ctx context.Context, room *model.Room) error
	FindByID(ctx context.Context, id string) (*model.Room, error)
	FindAll(ctx context.Context) ([]*model.Room, error)
	Save(ctx context.Context, room *model.Room) error
}

type mongoRoomStore struct {
	cfg        *config.Config
	collection *mongo.Collection
}

// roomDocument is the persisted shape of a room. The booking set is embedded
// so a Save writes the whole room atomically as one document.
type roomDocument struct {
	ID       string           `bson:"_id"`
	Name     string           `bson:"name"`
	Bookings []*model.Booking `bson:"bookings"`
}

func NewMongoRoomStore(cfg *config.Config) RoomStore {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoRoomStore{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoRoomStore) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	deadline, hasDeadline := ctx.Deadline()
	if !hasDeadline {
		return context.WithTimeout(ctx, timeout)
	}

	remaining := time.Until(deadline)
	if remaining < timeout {
		return context.WithTimeout(ctx, remaining)
	}

	return context.WithTimeout(ctx, timeout)
}

func (r *mongoRoomStore) Create(ctx context.Context, room *model.Room) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	if _, err := r.collection.InsertOne(ctx, toDocument(room)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return roomserrors.ErrAlreadyExists
		}
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

func (r *mongoRoomStore) FindByID(ctx context.Context, id string) (*model.Room, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var doc roomDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, roomserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find room: %w", err)
	}

	return fromDocument(&doc)
}

func (r *mongoRoomStore) FindAll(ctx context.Context) ([]*model.Room, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find rooms: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []*roomDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode rooms: %w", err)
	}

	rooms := make([]*model.Room, 0, len(docs))
	for _, doc := range docs {
		room, err := fromDocument(doc)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}

	return rooms, nil
}

func (r *mongoRoomStore) Save(ctx context.Context, room *model.Room) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection.ReplaceOne(ctx, bson.M{"_id": room.ID}, toDocument(room), opts); err != nil {
		return fmt.Errorf("failed to save room: %w", err)
	}
	return nil
}

func toDocument(room *model.Room) *roomDocument {
	return &roomDocument{
		ID:       room.ID,
		Name:     room.Name,
		Bookings: room.Bookings(),
	}
}

func fromDocument(doc *roomDocument) (*model.Room, error) {
	room := model.NewRoom(doc.ID, doc.Name)
	for _, b := range doc.Bookings {
		if err := room.AddBooking(b); err != nil {
			return nil, fmt.Errorf("corrupt room document %s: %w", doc.ID, err)
		}
	}
	return room, nil
}
