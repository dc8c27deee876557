package testutil

import (
	"context"

	"github.com/renewed-app/backend/internal/entity"
	"github.com/renewed-app/backend/internal/repository"
)

var (
	User1 = entity.User{Base: entity.Base{ID: "user1"}, Name: "alice"}
	User2 = entity.User{Base: entity.Base{ID: "user2"}, Name: "bob"}
)

// CreateFixtureDb seeds the mock database with two users and their empty
// progress rows.
func CreateFixtureDb(ctx context.Context) {
	insertUsers(ctx)
}

func insertUsers(ctx context.Context) {
	userRepo := repository.NewUserRepository()
	progressRepo := repository.NewUserProgressRepository()

	for _, user := range []entity.User{User1, User2} {
		user := user
		if err := userRepo.Create(ctx, &user); err != nil {
			panic(err)
		}

		if err := progressRepo.Create(ctx, &entity.UserProgress{UserID: user.ID}); err != nil {
			panic(err)
		}
	}
}
