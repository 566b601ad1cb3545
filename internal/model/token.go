package model

import "time"

// TokenBalance is the per-user ledger row. Token never goes below zero;
// debits are conditional updates, not read-modify-write.
type TokenBalance struct {
	UserID    int       `db:"user_id" json:"user_id"`
	Token     int       `db:"token" json:"token"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// TokenPack is a purchasable token bundle. Maintained by admins, read-only
// for end users.
type TokenPack struct {
	ID              int    `db:"id" json:"id"`
	Name            string `db:"name" json:"name"`
	Price           int    `db:"price" json:"price"`
	DiscountedPrice int    `db:"discounted_price" json:"discountedPrice"`
	Tokens          int    `db:"tokens" json:"tokens"`
	Description     string `db:"description" json:"description"`
}
