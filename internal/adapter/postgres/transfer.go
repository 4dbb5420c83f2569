package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dauletm/pickup-share/internal/domain/models"
	"github.com/dauletm/pickup-share/pkg/uuid"
)

type TransferRepo struct {
	db *pgxpool.Pool
}

func NewTransferRepo(db *pgxpool.Pool) *TransferRepo {
	return &TransferRepo{db: db}
}

// Insert persists a pending transfer code. The code column carries the
// primary key, so a collision surfaces as a unique violation the caller
// can detect with postgres.IsUniqueViolation and retry.
func (r *TransferRepo) Insert(ctx context.Context, t *models.Transfer) error {
	q := TxorDB(ctx, r.db)

	query := `INSERT INTO transfers (code, passenger_ids, destination)
              VALUES ($1, $2, $3)
              RETURNING created_at;`

	if err := q.QueryRow(ctx, query, t.Code, t.PassengerIDs, t.Destination).Scan(&t.CreatedAt); err != nil {
		return fmt.Errorf("transfer repo: Insert: %w", err)
	}

	return nil
}

// DeleteReturning removes the transfer in a single conditional delete and
// hands back what it referenced. found is false when the code never existed
// or was already redeemed; callers must not distinguish the two.
func (r *TransferRepo) DeleteReturning(ctx context.Context, code string) (ids []uuid.UUID, destination string, found bool, err error) {
	q := TxorDB(ctx, r.db)

	query := `DELETE FROM transfers WHERE code = $1 RETURNING passenger_ids, destination;`

	rows, err := q.Query(ctx, query, code)
	if err != nil {
		return nil, "", false, fmt.Errorf("transfer repo: DeleteReturning: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, "", false, fmt.Errorf("transfer repo: DeleteReturning rows: %w", err)
		}
		return nil, "", false, nil
	}

	if err := rows.Scan(&ids, &destination); err != nil {
		return nil, "", false, fmt.Errorf("transfer repo: DeleteReturning scan: %w", err)
	}

	return ids, destination, true, nil
}
