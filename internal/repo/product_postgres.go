package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/rogerio-castellano/inventory-rest/internal/models"
)

const queryTimeout = 3 * time.Second

type PostgresProductInventory struct {
	db *sql.DB
}

func NewPostgresProductInventory(db *sql.DB) *PostgresProductInventory {
	return &PostgresProductInventory{db: db}
}

func (r *PostgresProductInventory) List(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `SELECT id, name, type FROM products ORDER BY id`
	args := []any{}
	if len(filter.Types) > 0 {
		types := make([]string, len(filter.Types))
		for i, t := range filter.Types {
			types[i] = string(t)
		}
		query = `SELECT id, name, type FROM products WHERE type = ANY($1) ORDER BY id`
		args = append(args, types)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PostgresProductInventory) Get(ctx context.Context, id int) (models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	row := r.db.QueryRowContext(ctx, `SELECT id, name, type FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *PostgresProductInventory) Add(ctx context.Context, p models.Product) (models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var id int
	err := r.db.QueryRowContext(ctx, `INSERT INTO products (name, type) VALUES ($1, $2) RETURNING id`, p.Name, string(p.Type)).Scan(&id)
	if err != nil {
		return models.Product{}, err
	}
	p.ID = &id
	return p, nil
}

func (r *PostgresProductInventory) Update(ctx context.Context, id int, p models.Product) (models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `UPDATE products SET name = $1, type = $2 WHERE id = $3`, p.Name, string(p.Type), id)
	if err != nil {
		return models.Product{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Product{}, ErrProductNotFound
	}
	p.ID = models.IntPtr(id)
	return p, nil
}

func (r *PostgresProductInventory) Delete(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (models.Product, error) {
	var (
		id  int
		p   models.Product
		typ string
	)
	if err := row.Scan(&id, &p.Name, &typ); err != nil {
		return models.Product{}, err
	}
	p.ID = &id
	p.Type = models.ProductType(typ)
	return p, nil
}
