package models

import "time"

// Order is an inquiry record, not a paid transaction: the customer asks for
// a product and the sales team follows up by phone. Amount is in paise.
type Order struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	ProductID    string    `bson:"product_id" json:"productId"`
	CustomerName string    `bson:"customer_name" json:"customerName"`
	Phone        string    `bson:"phone" json:"phone"`
	Email        string    `bson:"email,omitempty" json:"email,omitempty"`
	Address      string    `bson:"address" json:"address"`
	Amount       int64     `bson:"amount" json:"amount"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
}

// CreateOrderRequest is the POST /api/orders payload.
type CreateOrderRequest struct {
	ProductID    string `json:"productId" binding:"required"`
	CustomerName string `json:"customerName" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Email        string `json:"email" binding:"omitempty,email"`
	Address      string `json:"address" binding:"required"`
	Amount       int64  `json:"amount" binding:"required,min=1"`
}
