package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gnomesuite/petstore-api/internal/model"
)

// --- Pets ---

type CreatePetRequest struct {
	Name        string            `json:"name" binding:"required,min=1,max=100"`
	Category    model.PetCategory `json:"category" binding:"required,oneof=dog cat bird fish reptile other"`
	Status      model.PetStatus   `json:"status" binding:"omitempty,oneof=available pending sold"`
	Tags        []string          `json:"tags"`
	Price       decimal.Decimal   `json:"price" binding:"required,gt=0"`
	Description *string           `json:"description" binding:"omitempty,max=1000"`
	PhotoURLs   []string          `json:"photo_urls"`
}

// UpdatePetRequest is a sparse update: nil means leave the field alone.
type UpdatePetRequest struct {
	Name        *string            `json:"name" binding:"omitempty,min=1,max=100"`
	Category    *model.PetCategory `json:"category" binding:"omitempty,oneof=dog cat bird fish reptile other"`
	Status      *model.PetStatus   `json:"status" binding:"omitempty,oneof=available pending sold"`
	Tags        *[]string          `json:"tags"`
	Price       *decimal.Decimal   `json:"price" binding:"omitempty,gt=0"`
	Description *string            `json:"description" binding:"omitempty,max=1000"`
	PhotoURLs   *[]string          `json:"photo_urls"`
}

type ListPetsRequest struct {
	Status   model.PetStatus   `form:"status" binding:"omitempty,oneof=available pending sold"`
	Category model.PetCategory `form:"category" binding:"omitempty,oneof=dog cat bird fish reptile other"`
	Limit    int               `form:"limit,default=10" binding:"min=1,max=100"`
	Offset   int               `form:"offset,default=0" binding:"min=0"`
}

type PetResponse struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Category    model.PetCategory `json:"category"`
	Status      model.PetStatus   `json:"status"`
	Tags        []string          `json:"tags"`
	Price       decimal.Decimal   `json:"price"`
	Description *string           `json:"description"`
	PhotoURLs   []string          `json:"photo_urls"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   *time.Time        `json:"updated_at"`
}

// --- Orders ---

type CreateOrderRequest struct {
	PetID    int64             `json:"pet_id" binding:"required"`
	UserID   int64             `json:"user_id" binding:"required"`
	Quantity int               `json:"quantity" binding:"required,gt=0"`
	ShipDate *time.Time        `json:"ship_date"`
	Status   model.OrderStatus `json:"status" binding:"omitempty,oneof=placed approved delivered cancelled"`
	Complete bool              `json:"complete"`
}

type ListOrdersRequest struct {
	Status model.OrderStatus `form:"status" binding:"omitempty,oneof=placed approved delivered cancelled"`
	Limit  int               `form:"limit,default=10" binding:"min=1,max=100"`
	Offset int               `form:"offset,default=0" binding:"min=0"`
}

type OrderResponse struct {
	ID        int64             `json:"id"`
	PetID     int64             `json:"pet_id"`
	UserID    int64             `json:"user_id"`
	Quantity  int               `json:"quantity"`
	ShipDate  *time.Time        `json:"ship_date"`
	Status    model.OrderStatus `json:"status"`
	Complete  bool              `json:"complete"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt *time.Time        `json:"updated_at"`
}

// --- Users ---

type CreateUserRequest struct {
	Username   string  `json:"username" binding:"required,min=3,max=50"`
	FirstName  string  `json:"first_name" binding:"required,min=1,max=50"`
	LastName   string  `json:"last_name" binding:"required,min=1,max=50"`
	Email      string  `json:"email" binding:"required,email"`
	Phone      *string `json:"phone"`
	Password   string  `json:"password" binding:"required,min=6"`
	UserStatus *int    `json:"user_status"`
}

type ListUsersRequest struct {
	Limit  int `form:"limit,default=10" binding:"min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// UserResponse never carries the password.
type UserResponse struct {
	ID         int64      `json:"id"`
	Username   string     `json:"username"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Email      string     `json:"email"`
	Phone      *string    `json:"phone"`
	UserStatus int        `json:"user_status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
}

// --- Health ---

type HealthResponse struct {
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

// --- Envelopes ---

// APIResponse acknowledges mutations that return no resource body (deletes).
type APIResponse struct {
	Code      int       `json:"code"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationErrorResponse struct {
	Detail []FieldError `json:"detail"`
}
