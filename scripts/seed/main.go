package main

import (
	"fmt"
	"log"

	"github.com/meetsync-team/meetsync/internal/domain/entities"
	"github.com/meetsync-team/meetsync/internal/infrastructure/database"
	"github.com/meetsync-team/meetsync/pkg/config"
	pkgjwt "github.com/meetsync-team/meetsync/pkg/jwt"
)

// Seeds a handful of local development users and prints ready-to-use
// access tokens for each. Existing @test.local users are recreated.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	jwtManager := pkgjwt.NewManager(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	seedUsers := []struct {
		Email string
		Name  string
	}{
		{Email: "alice@test.local", Name: "Alice Nguyen"},
		{Email: "bob@test.local", Name: "Bob Tran"},
		{Email: "charlie@test.local", Name: "Charlie Pham"},
	}

	if err := db.Where("email LIKE ?", "%@test.local").Delete(&entities.User{}).Error; err != nil {
		log.Fatalf("Failed to clean up existing seed users: %v", err)
	}

	for _, seed := range seedUsers {
		user := entities.NewUser(seed.Email, seed.Name)
		if err := db.Create(user).Error; err != nil {
			log.Printf("Failed to create user %s: %v", seed.Email, err)
			continue
		}

		accessToken, err := jwtManager.GenerateAccessToken(user.ID, user.Email, user.Name)
		if err != nil {
			log.Printf("Failed to generate access token for %s: %v", seed.Email, err)
			continue
		}
		refreshToken, err := jwtManager.GenerateRefreshToken(user.ID)
		if err != nil {
			log.Printf("Failed to generate refresh token for %s: %v", seed.Email, err)
			continue
		}

		fmt.Printf("User: %s <%s>\n", user.Name, user.Email)
		fmt.Printf("  ID:            %s\n", user.ID)
		fmt.Printf("  Access token:  %s\n", accessToken)
		fmt.Printf("  Refresh token: %s\n\n", refreshToken)
	}
}
