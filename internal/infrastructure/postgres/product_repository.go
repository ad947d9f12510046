package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/invorya/inventory-lite/internal/domain"
	"github.com/invorya/inventory-lite/internal/domain/entity"
	"github.com/invorya/inventory-lite/internal/domain/repository"
	"github.com/jackc/pgx/v5"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Columnas del join producto + categoría, compartidas por todos los listados.
const productJoinColumns = `
	p.id, p.name, p.sku, p.description, p.category_id, p.price, p.cost_price,
	p.stock, p.low_stock_threshold, p.image_url, p.is_active, p.created_at, p.updated_at,
	c.id, c.name, c.description, c.created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

// scanProductJoin escanea una fila del LEFT JOIN; la categoría puede venir NULL.
func scanProductJoin(row rowScanner) (*entity.ProductWithCategory, error) {
	var (
		pc           entity.ProductWithCategory
		catID        *string
		catName      *string
		catDesc      *string
		catCreatedAt *time.Time
	)
	err := row.Scan(
		&pc.ID, &pc.Name, &pc.SKU, &pc.Description, &pc.CategoryID, &pc.Price, &pc.CostPrice,
		&pc.Stock, &pc.LowStockThreshold, &pc.ImageURL, &pc.IsActive, &pc.CreatedAt, &pc.UpdatedAt,
		&catID, &catName, &catDesc, &catCreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if catID != nil {
		pc.Category = &entity.Category{
			ID:          *catID,
			Name:        derefString(catName),
			Description: derefString(catDesc),
		}
		if catCreatedAt != nil {
			pc.Category.CreatedAt = *catCreatedAt
		}
	}
	return &pc, nil
}

// List lista productos con filtros componibles (AND), join con categoría,
// ordenados por fecha de creación descendente. No filtra por is_active.
func (r *ProductRepo) List(filters repository.ProductFilters) ([]*entity.ProductWithCategory, error) {
	query := `
		SELECT ` + productJoinColumns + `
		FROM products p LEFT JOIN categories c ON c.id = p.category_id`
	var args []any
	var conds []string
	pos := 1
	if filters.Search != "" {
		conds = append(conds, fmt.Sprintf("(p.name ILIKE $%d OR p.sku ILIKE $%d)", pos, pos))
		args = append(args, "%"+filters.Search+"%")
		pos++
	}
	if filters.CategoryID != "" {
		conds = append(conds, fmt.Sprintf("p.category_id = $%d", pos))
		args = append(args, filters.CategoryID)
		pos++
	}
	if filters.LowStock {
		conds = append(conds, "p.stock < p.low_stock_threshold")
	}
	for i, c := range conds {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY p.created_at DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductWithCategory
	for rows.Next() {
		pc, err := scanProductJoin(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, pc)
	}
	return list, rows.Err()
}

// GetByID obtiene un producto con su categoría. (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.ProductWithCategory, error) {
	query := `
		SELECT ` + productJoinColumns + `
		FROM products p LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1`
	pc, err := scanProductJoin(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return pc, nil
}

// GetBySKU obtiene un producto por SKU exacto (sin join). Usado para el
// pre-chequeo de unicidad antes de crear o actualizar.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	query := `
		SELECT id, name, sku, description, category_id, price, cost_price,
		       stock, low_stock_threshold, image_url, is_active, created_at, updated_at
		FROM products WHERE sku = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, sku).Scan(
		&p.ID, &p.Name, &p.SKU, &p.Description, &p.CategoryID, &p.Price, &p.CostPrice,
		&p.Stock, &p.LowStockThreshold, &p.ImageURL, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by sku: %w", err)
	}
	return &p, nil
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, sku, description, category_id, price, cost_price,
			stock, low_stock_threshold, image_url, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.SKU, product.Description, product.CategoryID,
		product.Price, product.CostPrice, product.Stock, product.LowStockThreshold,
		product.ImageURL, product.IsActive, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateSKU
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// Update actualiza un producto existente y refresca updated_at.
// Devuelve false si no hay fila con ese id.
func (r *ProductRepo) Update(product *entity.Product) (bool, error) {
	query := `
		UPDATE products SET name = $2, sku = $3, description = $4, category_id = $5,
			price = $6, cost_price = $7, stock = $8, low_stock_threshold = $9,
			image_url = $10, is_active = $11, updated_at = $12
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.SKU, product.Description, product.CategoryID,
		product.Price, product.CostPrice, product.Stock, product.LowStockThreshold,
		product.ImageURL, product.IsActive, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return false, domain.ErrDuplicateSKU
		}
		return false, fmt.Errorf("update product: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete elimina un producto por ID (borrado duro). Devuelve false si no existía.
func (r *ProductRepo) Delete(id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// ListLowStock productos activos con stock bajo el umbral, ordenados por stock ascendente.
func (r *ProductRepo) ListLowStock() ([]*entity.ProductWithCategory, error) {
	query := `
		SELECT ` + productJoinColumns + `
		FROM products p LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.stock < p.low_stock_threshold AND p.is_active = true
		ORDER BY p.stock ASC`
	return r.listJoin(query)
}

// ListOutOfStock productos activos con stock en cero, los actualizados más recientemente primero.
func (r *ProductRepo) ListOutOfStock() ([]*entity.ProductWithCategory, error) {
	query := `
		SELECT ` + productJoinColumns + `
		FROM products p LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.stock = 0 AND p.is_active = true
		ORDER BY p.updated_at DESC`
	return r.listJoin(query)
}

func (r *ProductRepo) listJoin(query string, args ...any) ([]*entity.ProductWithCategory, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductWithCategory
	for rows.Next() {
		pc, err := scanProductJoin(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, pc)
	}
	return list, rows.Err()
}

// GetForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE).
// Solo tiene sentido dentro de una transacción. (nil, nil) si no existe.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	query := `
		SELECT id, name, sku, description, category_id, price, cost_price,
		       stock, low_stock_threshold, image_url, is_active, created_at, updated_at
		FROM products WHERE id = $1
		FOR UPDATE`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.SKU, &p.Description, &p.CategoryID, &p.Price, &p.CostPrice,
		&p.Stock, &p.LowStockThreshold, &p.ImageURL, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product for update: %w", err)
	}
	return &p, nil
}

// UpdateStock fija el stock del producto y refresca updated_at.
func (r *ProductRepo) UpdateStock(id string, stock int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock = $2, updated_at = now() WHERE id = $1`,
		id, stock,
	)
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}
	return nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
