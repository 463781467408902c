package postgres

import (
	"context"
	"errors"
	"fmt"

	"tapconnect/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// VendorRepo implements ports.VendorRepository.
type VendorRepo struct {
	pool Pool
}

// NewVendorRepo creates a new VendorRepo.
func NewVendorRepo(pool Pool) *VendorRepo {
	return &VendorRepo{pool: pool}
}

// CreateVendor inserts a new vendor.
func (r *VendorRepo) CreateVendor(ctx context.Context, v *domain.Vendor) error {
	query := `INSERT INTO vendors (id, event_id, name, accepts_tokens, exchange_rate, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		v.ID, v.EventID, v.Name, v.AcceptsTokens, v.ExchangeRate, v.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert vendor: %w", err)
	}
	return nil
}

// AddProduct inserts a new vendor product.
func (r *VendorRepo) AddProduct(ctx context.Context, p *domain.VendorProduct) error {
	query := `INSERT INTO vendor_products
		(id, vendor_id, name, price_tokens, price_cash, available, stock, position, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		p.ID, p.VendorID, p.Name, p.PriceTokens, p.PriceCash,
		p.Available, p.Stock, p.Position, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert vendor product: %w", err)
	}
	return nil
}

// GetVendor fetches a vendor without its product menu.
func (r *VendorRepo) GetVendor(ctx context.Context, id uuid.UUID) (*domain.Vendor, error) {
	query := `SELECT id, event_id, name, accepts_tokens, exchange_rate, created_at
		FROM vendors WHERE id = $1`

	v := &domain.Vendor{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.EventID, &v.Name, &v.AcceptsTokens, &v.ExchangeRate, &v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendor: %w", err)
	}
	return v, nil
}

const productColumns = `id, vendor_id, name, price_tokens, price_cash, available, stock, position, created_at`

func scanProduct(row pgx.Row) (*domain.VendorProduct, error) {
	p := &domain.VendorProduct{}
	err := row.Scan(
		&p.ID, &p.VendorID, &p.Name, &p.PriceTokens, &p.PriceCash,
		&p.Available, &p.Stock, &p.Position, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// GetProduct fetches a single product.
func (r *VendorRepo) GetProduct(ctx context.Context, id uuid.UUID) (*domain.VendorProduct, error) {
	query := `SELECT ` + productColumns + ` FROM vendor_products WHERE id = $1`

	p, err := scanProduct(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetVendorsForEvent fetches all vendors of an event with their menus.
func (r *VendorRepo) GetVendorsForEvent(ctx context.Context, eventID uuid.UUID) ([]domain.Vendor, error) {
	query := `SELECT id, event_id, name, accepts_tokens, exchange_rate, created_at
		FROM vendors WHERE event_id = $1 ORDER BY name`

	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	defer rows.Close()

	var vendors []domain.Vendor
	index := map[uuid.UUID]int{}
	for rows.Next() {
		var v domain.Vendor
		if err := rows.Scan(&v.ID, &v.EventID, &v.Name, &v.AcceptsTokens, &v.ExchangeRate, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan vendor: %w", err)
		}
		index[v.ID] = len(vendors)
		vendors = append(vendors, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vendors: %w", err)
	}
	if len(vendors) == 0 {
		return nil, nil
	}

	productQuery := `SELECT p.id, p.vendor_id, p.name, p.price_tokens, p.price_cash, p.available, p.stock, p.position, p.created_at
		FROM vendor_products p
		JOIN vendors v ON v.id = p.vendor_id
		WHERE v.event_id = $1
		ORDER BY p.position`

	productRows, err := r.pool.Query(ctx, productQuery, eventID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer productRows.Close()

	for productRows.Next() {
		p, err := scanProduct(productRows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		if i, ok := index[p.VendorID]; ok {
			vendors[i].Products = append(vendors[i].Products, *p)
		}
	}
	if err := productRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}

	return vendors, nil
}

// DecrementStock conditionally decrements tracked stock. The guard in the
// WHERE clause is what keeps the counter from going negative under
// concurrent spends.
func (r *VendorRepo) DecrementStock(ctx context.Context, tx pgx.Tx, vendorID, productID uuid.UUID, quantity int) (bool, error) {
	query := `UPDATE vendor_products SET stock = stock - $1
		WHERE id = $2 AND vendor_id = $3 AND stock >= $1`

	tag, err := tx.Exec(ctx, query, quantity, productID, vendorID)
	if err != nil {
		return false, fmt.Errorf("decrement stock: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
