package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gnomesuite/petstore-api/internal/model"
)

// SeedPets returns the fixed sample pets loaded at startup.
func SeedPets() []model.Pet {
	now := time.Now().UTC()
	return []model.Pet{
		{
			ID:          1,
			Name:        "Buddy",
			Category:    model.CategoryDog,
			Status:      model.PetStatusAvailable,
			Tags:        []string{"friendly", "house-trained"},
			Price:       decimal.NewFromFloat(299.99),
			Description: ptr("A friendly golden retriever"),
			PhotoURLs:   []string{"https://example.com/buddy1.jpg"},
			CreatedAt:   now,
		},
		{
			ID:          2,
			Name:        "Whiskers",
			Category:    model.CategoryCat,
			Status:      model.PetStatusAvailable,
			Tags:        []string{"playful", "indoor"},
			Price:       decimal.NewFromFloat(199.99),
			Description: ptr("A playful orange tabby cat"),
			PhotoURLs:   []string{"https://example.com/whiskers1.jpg"},
			CreatedAt:   now,
		},
		{
			ID:          3,
			Name:        "Tweety",
			Category:    model.CategoryBird,
			Status:      model.PetStatusSold,
			Tags:        []string{"colorful", "singing"},
			Price:       decimal.NewFromFloat(89.99),
			Description: ptr("A beautiful canary"),
			PhotoURLs:   []string{"https://example.com/tweety1.jpg"},
			CreatedAt:   now,
		},
	}
}

// SeedUsers returns the fixed sample users loaded at startup.
func SeedUsers() []model.User {
	now := time.Now().UTC()
	return []model.User{
		{
			ID:         1,
			Username:   "johndoe",
			FirstName:  "John",
			LastName:   "Doe",
			Email:      "john@example.com",
			Phone:      ptr("+1234567890"),
			Password:   "password123",
			UserStatus: model.UserStatusActive,
			CreatedAt:  now,
		},
		{
			ID:         2,
			Username:   "janedoe",
			FirstName:  "Jane",
			LastName:   "Doe",
			Email:      "jane@example.com",
			Phone:      ptr("+1234567891"),
			Password:   "password123",
			UserStatus: model.UserStatusActive,
			CreatedAt:  now,
		},
	}
}

func ptr(s string) *string { return &s }
