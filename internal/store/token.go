package store

import (
	"context"
	"errors"
	"fmt"

	"lingora/internal/database"
	"lingora/internal/model"

	"github.com/jackc/pgx/v5"
)

// GetTokenBalance returns the caller's spendable token count. Accounts
// without a ledger row (seeded before provisioning existed) read as zero.
func GetTokenBalance(ctx context.Context, db database.DB, userID int) (int, error) {
	var token int
	err := db.QueryRow(ctx,
		`SELECT COALESCE((SELECT token FROM token_balances WHERE user_id = $1), 0)`,
		userID,
	).Scan(&token)
	if err != nil {
		return 0, fmt.Errorf("GetTokenBalance: %w", err)
	}
	return token, nil
}

// PurchaseTokenPack credits the pack's token yield to the user in one atomic
// upsert and returns the new balance. Unknown pack ids map to ErrNotFound.
func PurchaseTokenPack(ctx context.Context, db database.DB, userID, packID int) (int, error) {
	var token int
	err := db.QueryRow(ctx,
		`INSERT INTO token_balances (user_id, token)
		 SELECT $1, tokens FROM token_packs WHERE id = $2
		 ON CONFLICT (user_id)
		 DO UPDATE SET token = token_balances.token + EXCLUDED.token, updated_at = now()
		 RETURNING token`,
		userID,
		packID,
	).Scan(&token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("PurchaseTokenPack: %w", err)
	}
	return token, nil
}

// ListTokenPacks returns the full catalog, unordered.
func ListTokenPacks(ctx context.Context, db database.DB) ([]model.TokenPack, error) {
	rows, err := db.Query(ctx,
		`SELECT id, name, price, discounted_price, tokens, description FROM token_packs`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListTokenPacks: %w", err)
	}
	defer rows.Close()

	var packs []model.TokenPack
	for rows.Next() {
		var p model.TokenPack
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.DiscountedPrice, &p.Tokens, &p.Description); err != nil {
			return nil, fmt.Errorf("ListTokenPacks scan: %w", err)
		}
		packs = append(packs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListTokenPacks rows: %w", err)
	}
	return packs, nil
}
