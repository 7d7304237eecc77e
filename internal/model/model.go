package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type PetStatus string

const (
	PetStatusAvailable PetStatus = "available"
	PetStatusPending   PetStatus = "pending"
	PetStatusSold      PetStatus = "sold"
)

type PetCategory string

const (
	CategoryDog     PetCategory = "dog"
	CategoryCat     PetCategory = "cat"
	CategoryBird    PetCategory = "bird"
	CategoryFish    PetCategory = "fish"
	CategoryReptile PetCategory = "reptile"
	CategoryOther   PetCategory = "other"
)

type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "placed"
	OrderStatusApproved  OrderStatus = "approved"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// User statuses are plain ints: 1 = active, 0 = inactive.
const (
	UserStatusActive   = 1
	UserStatusInactive = 0
)

type Pet struct {
	ID          int64
	Name        string
	Category    PetCategory
	Status      PetStatus
	Tags        []string
	Price       decimal.Decimal
	Description *string
	PhotoURLs   []string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

type Order struct {
	ID        int64
	PetID     int64
	UserID    int64
	Quantity  int
	ShipDate  *time.Time
	Status    OrderStatus
	Complete  bool
	CreatedAt time.Time
	UpdatedAt *time.Time
}

type User struct {
	ID         int64
	Username   string
	FirstName  string
	LastName   string
	Email      string
	Phone      *string
	Password   string
	UserStatus int
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}
