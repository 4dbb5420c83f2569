package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dauletm/pickup-share/internal/domain/models"
	"github.com/dauletm/pickup-share/pkg/uuid"
)

type PassengerRepo struct {
	db *pgxpool.Pool
}

func NewPassengerRepo(db *pgxpool.Pool) *PassengerRepo {
	return &PassengerRepo{db: db}
}

func (r *PassengerRepo) Insert(ctx context.Context, p *models.Passenger) (*models.Passenger, error) {
	q := TxorDB(ctx, r.db)

	query := `INSERT INTO passengers (id, owner, name, address, lat, lng, type)
              VALUES ($1, $2, $3, $4, $5, $6, $7)
              RETURNING created_at;`

	err := q.QueryRow(ctx, query, p.ID, p.OwnerID, p.Name, p.Address, p.Latitude, p.Longitude, p.Type).Scan(&p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("passenger repo: Insert: %w", err)
	}

	return p, nil
}

// ListByOwner returns the owner's passengers, newest first.
func (r *PassengerRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.Passenger, error) {
	q := TxorDB(ctx, r.db)

	query := `
        SELECT id, owner, name, address, lat, lng, type, created_at
        FROM passengers
        WHERE owner = $1
        ORDER BY created_at DESC;`

	rows, err := q.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("passenger repo: ListByOwner: %w", err)
	}
	defer rows.Close()

	passengers := []models.Passenger{}
	for rows.Next() {
		var p models.Passenger
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Address, &p.Latitude, &p.Longitude, &p.Type, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("passenger repo: ListByOwner scan: %w", err)
		}
		passengers = append(passengers, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("passenger repo: ListByOwner rows: %w", err)
	}

	return passengers, nil
}

// GetByIDs returns the passengers that still exist among the given ids.
// Missing ids are simply absent from the result, order follows the store.
func (r *PassengerRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Passenger, error) {
	q := TxorDB(ctx, r.db)

	query := `
        SELECT id, owner, name, address, lat, lng, type, created_at
        FROM passengers
        WHERE id = ANY($1);`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("passenger repo: GetByIDs: %w", err)
	}
	defer rows.Close()

	passengers := []models.Passenger{}
	for rows.Next() {
		var p models.Passenger
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Address, &p.Latitude, &p.Longitude, &p.Type, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("passenger repo: GetByIDs scan: %w", err)
		}
		passengers = append(passengers, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("passenger repo: GetByIDs rows: %w", err)
	}

	return passengers, nil
}

// Delete removes a passenger. Deleting a nonexistent id is not an error.
func (r *PassengerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	q := TxorDB(ctx, r.db)

	query := `DELETE FROM passengers WHERE id = $1;`

	if _, err := q.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("passenger repo: Delete: %w", err)
	}

	return nil
}
