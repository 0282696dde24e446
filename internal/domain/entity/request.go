package entity

import "time"

// Request is a user's claim on part of an offer's remaining amount.
type Request struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	OfferID      int64     `json:"offer_id"`
	Amount       int       `json:"amount"`
	CreationDate time.Time `json:"creation_date"`
}

// OfferComment is a public comment a user leaves on an offer.
type OfferComment struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	OfferID      int64     `json:"offer_id"`
	Content      string    `json:"content"`
	CreationDate time.Time `json:"creation_date"`
}
