package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureAllIndexes creates the indexes every repository relies on. Called
// once at startup; index creation is idempotent on the server side.
func EnsureAllIndexes(ctx context.Context, db *mongo.Database) error {
	repos := []interface {
		EnsureIndexes(ctx context.Context) error
	}{
		NewUserRepository(db),
		NewBoardRepository(db),
		NewTaskRepository(db),
		NewCommentRepository(db),
	}
	for _, r := range repos {
		if err := r.EnsureIndexes(ctx); err != nil {
			return err
		}
	}
	return nil
}
