package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/authority-backend/internal/domain"
)

// backfillKeysVersion fills authorities.canonical_key for rows created
// before the column existed.
const backfillKeysVersion = 3

func backfillKeys() *goose.Migration {
	return goose.NewGoMigration(
		backfillKeysVersion,
		&goose.GoFunc{RunTx: backfillKeysUp},
		&goose.GoFunc{RunTx: func(context.Context, *sql.Tx) error { return nil }},
	)
}

type labelRow struct {
	id    uuid.UUID
	label string
}

func backfillKeysUp(ctx context.Context, tx *sql.Tx) error {
	rows, err := tx.QueryContext(ctx, `SELECT id, label FROM authorities ORDER BY id`)
	if err != nil {
		return fmt.Errorf("select authorities: %w", err)
	}

	var pending []labelRow
	for rows.Next() {
		var r labelRow
		if err := rows.Scan(&r.id, &r.label); err != nil {
			rows.Close()
			return fmt.Errorf("scan authority: %w", err)
		}
		pending = append(pending, r)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return fmt.Errorf("iterate authorities: %w", err)
	}
	rows.Close()

	stmt, err := tx.PrepareContext(ctx, `UPDATE authorities SET canonical_key = $2 WHERE id = $1`)
	if err != nil {
		return fmt.Errorf("prepare update: %w", err)
	}
	defer stmt.Close()

	for _, r := range pending {
		if _, err := stmt.ExecContext(ctx, r.id, domain.NormalizeEntry(r.label)); err != nil {
			return fmt.Errorf("update authority %s: %w", r.id, err)
		}
	}

	return nil
}
