package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kanbanhq/board-api/internal/core/domain"
)

const collectionBoards = "boards"

type BoardRepository struct {
	col *mongo.Collection
}

func NewBoardRepository(db *mongo.Database) *BoardRepository {
	return &BoardRepository{col: db.Collection(collectionBoards)}
}

type boardDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	OwnerID   string             `bson:"owner_id"`
	MemberIDs []string           `bson:"member_ids"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d boardDoc) toDomain() *domain.Board {
	return &domain.Board{
		ID:        d.ID.Hex(),
		Title:     d.Title,
		OwnerID:   d.OwnerID,
		MemberIDs: d.MemberIDs,
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

func (r *BoardRepository) Create(ctx context.Context, board *domain.Board) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := boardDoc{
		ID:        primitive.NewObjectID(),
		Title:     board.Title,
		OwnerID:   board.OwnerID,
		MemberIDs: board.MemberIDs,
		CreatedAt: board.CreatedAt,
		UpdatedAt: board.UpdatedAt,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert board: %w", err)
	}

	board.ID = doc.ID.Hex()
	return nil
}

func (r *BoardRepository) FindByID(ctx context.Context, id string) (*domain.Board, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBoardNotFound
	}

	var doc boardDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBoardNotFound
		}
		return nil, fmt.Errorf("find board: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *BoardRepository) ListForUser(ctx context.Context, userID string) ([]*domain.Board, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"$or": bson.A{
		bson.M{"owner_id": userID},
		bson.M{"member_ids": userID},
	}}

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}
	defer cur.Close(ctx)

	var docs []boardDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode boards: %w", err)
	}

	boards := make([]*domain.Board, 0, len(docs))
	for _, d := range docs {
		boards = append(boards, d.toDomain())
	}
	return boards, nil
}

// Update persists title and member-set changes. owner_id is intentionally
// excluded from the update document.
func (r *BoardRepository) Update(ctx context.Context, board *domain.Board) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(board.ID)
	if err != nil {
		return domain.ErrBoardNotFound
	}

	update := bson.M{"$set": bson.M{
		"title":      board.Title,
		"member_ids": board.MemberIDs,
		"updated_at": board.UpdatedAt,
	}}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update board: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrBoardNotFound
	}
	return nil
}

func (r *BoardRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrBoardNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete board: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrBoardNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes backing board list queries.
func (r *BoardRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
		{Keys: bson.D{{Key: "member_ids", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
