// Package client es el SDK Go de la API de inventario. Envuelve el contrato
// HTTP con tipos concretos y cachea las lecturas igual que lo haría una UI:
// cada mutación invalida los listados que deja obsoletos.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultStaleTime frescura por defecto de las lecturas cacheadas.
const DefaultStaleTime = 30 * time.Second

// APIError error devuelto por la API con su código HTTP.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s: %s", e.Status, e.Code, e.Message)
}

// IsNotFound indica si err es un 404 de la API.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Status == http.StatusNotFound
}

// Client cliente tipado de la API.
type Client struct {
	baseURL string
	hc      *http.Client
	cache   *QueryCache
	notes   *NotificationList
}

// Option configura el Client.
type Option func(*Client)

// WithHTTPClient reemplaza el *http.Client por defecto.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

// WithStaleTime ajusta la frescura de la caché de lecturas.
func WithStaleTime(d time.Duration) Option {
	return func(c *Client) { c.cache = NewQueryCache(d) }
}

// WithNotifications registra una notificación en l tras cada mutación exitosa.
func WithNotifications(l *NotificationList) Option {
	return func(c *Client) { c.notes = l }
}

// New crea el cliente apuntando a baseURL (por ejemplo "http://localhost:8080").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: 15 * time.Second},
		cache:   NewQueryCache(DefaultStaleTime),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Init siembra los datos iniciales del servidor (idempotente).
func (c *Client) Init(ctx context.Context) error {
	var out map[string]string
	return c.getJSON(ctx, "/api/init", nil, &out, false)
}

// ListProducts lista productos; los filtros vacíos se omiten.
func (c *Client) ListProducts(ctx context.Context, search, categoryID string, lowStock bool) ([]Product, error) {
	params := url.Values{}
	if search != "" {
		params.Set("search", search)
	}
	if categoryID != "" {
		params.Set("categoryId", categoryID)
	}
	if lowStock {
		params.Set("lowStock", "true")
	}
	var out []Product
	if err := c.getJSON(ctx, "/api/products", params, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProduct obtiene un producto por ID.
func (c *Client) GetProduct(ctx context.Context, id string) (*Product, error) {
	var out Product
	if err := c.getJSON(ctx, "/api/products/"+url.PathEscape(id), nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProduct crea un producto.
func (c *Client) CreateProduct(ctx context.Context, in ProductInput) (*Product, error) {
	var out Product
	if err := c.send(ctx, http.MethodPost, "/api/products", in, &out); err != nil {
		return nil, err
	}
	c.cache.Invalidate("/api/products", "/api/dashboard/stats")
	c.notify("Producto creado", out.Name)
	return &out, nil
}

// UpdateProduct aplica una actualización parcial.
func (c *Client) UpdateProduct(ctx context.Context, id string, in ProductUpdate) (*Product, error) {
	var out Product
	if err := c.send(ctx, http.MethodPut, "/api/products/"+url.PathEscape(id), in, &out); err != nil {
		return nil, err
	}
	c.cache.Invalidate("/api/products", "/api/dashboard/stats")
	c.notify("Producto actualizado", out.Name)
	return &out, nil
}

// DeleteProduct elimina un producto.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	if err := c.send(ctx, http.MethodDelete, "/api/products/"+url.PathEscape(id), nil, nil); err != nil {
		return err
	}
	c.cache.Invalidate("/api/products", "/api/dashboard/stats")
	c.notify("Producto eliminado", id)
	return nil
}

// BulkImport importa productos en lote. El resultado detalla fila por fila.
func (c *Client) BulkImport(ctx context.Context, products []ProductInput) (*BulkImportResult, error) {
	body := struct {
		Products []ProductInput `json:"products"`
	}{Products: products}
	var out BulkImportResult
	if err := c.send(ctx, http.MethodPost, "/api/products/bulk-import", body, &out); err != nil {
		return nil, err
	}
	c.cache.Invalidate("/api/products", "/api/dashboard/stats")
	c.notify("Importación completada", fmt.Sprintf("%d creados, %d con errores", out.Success, out.Errors))
	return &out, nil
}

// LowStockProducts reporte de productos con stock bajo el umbral.
func (c *Client) LowStockProducts(ctx context.Context) ([]Product, error) {
	var out []Product
	if err := c.getJSON(ctx, "/api/products/low-stock", nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

// OutOfStockProducts reporte de productos agotados.
func (c *Client) OutOfStockProducts(ctx context.Context) ([]Product, error) {
	var out []Product
	if err := c.getJSON(ctx, "/api/products/out-of-stock", nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

// ListCategories lista las categorías.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var out []Category
	if err := c.getJSON(ctx, "/api/categories", nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateCategory crea una categoría.
func (c *Client) CreateCategory(ctx context.Context, in CategoryInput) (*Category, error) {
	var out Category
	if err := c.send(ctx, http.MethodPost, "/api/categories", in, &out); err != nil {
		return nil, err
	}
	c.cache.Invalidate("/api/categories")
	c.notify("Categoría creada", out.Name)
	return &out, nil
}

// UpdateCategory actualiza una categoría.
func (c *Client) UpdateCategory(ctx context.Context, id string, in CategoryUpdate) (*Category, error) {
	var out Category
	if err := c.send(ctx, http.MethodPut, "/api/categories/"+url.PathEscape(id), in, &out); err != nil {
		return nil, err
	}
	// Los productos embeben su categoría en los listados.
	c.cache.Invalidate("/api/categories", "/api/products")
	c.notify("Categoría actualizada", out.Name)
	return &out, nil
}

// DeleteCategory elimina una categoría; sus productos quedan sin categoría.
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	if err := c.send(ctx, http.MethodDelete, "/api/categories/"+url.PathEscape(id), nil, nil); err != nil {
		return err
	}
	c.cache.Invalidate("/api/categories", "/api/products")
	c.notify("Categoría eliminada", id)
	return nil
}

// ListAdjustments historial de ajustes; productID vacío devuelve todos.
func (c *Client) ListAdjustments(ctx context.Context, productID string) ([]Adjustment, error) {
	params := url.Values{}
	if productID != "" {
		params.Set("productId", productID)
	}
	var out []Adjustment
	if err := c.getJSON(ctx, "/api/inventory-adjustments", params, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

// RegisterAdjustment registra un ajuste de stock.
func (c *Client) RegisterAdjustment(ctx context.Context, in AdjustmentInput) (*Adjustment, error) {
	var out Adjustment
	if err := c.send(ctx, http.MethodPost, "/api/inventory-adjustments", in, &out); err != nil {
		return nil, err
	}
	c.cache.Invalidate("/api/inventory-adjustments", "/api/products", "/api/dashboard/stats")
	c.notify("Ajuste registrado", fmt.Sprintf("%s %d unidades", out.Type, out.Quantity))
	return &out, nil
}

// GetDashboardStats agregados del inventario.
func (c *Client) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	var out DashboardStats
	if err := c.getJSON(ctx, "/api/dashboard/stats", nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// InvalidateCache fuerza la relectura de todos los endpoints.
func (c *Client) InvalidateCache() {
	c.cache.Clear()
}

func (c *Client) notify(title, message string) {
	if c.notes != nil {
		c.notes.Add(NotificationSuccess, title, message)
	}
}

func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values, out any, cacheable bool) error {
	key := Key(endpoint, params)
	if cacheable {
		if data, ok := c.cache.Get(key); ok {
			return json.Unmarshal(data, out)
		}
	}

	u := c.baseURL + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("crear request: %w", err)
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("leer respuesta: %w", err)
	}
	if resp.StatusCode >= 400 {
		return decodeAPIError(resp.StatusCode, data)
	}
	if cacheable {
		c.cache.Set(key, data)
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}

func (c *Client) send(ctx context.Context, method, endpoint string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("serializar cuerpo: %w", err)
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return fmt.Errorf("crear request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("leer respuesta: %w", err)
	}
	if resp.StatusCode >= 400 {
		return decodeAPIError(resp.StatusCode, data)
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, out)
}

func decodeAPIError(status int, data []byte) error {
	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err != nil || body.Message == "" {
		return &APIError{Status: status, Code: "UNKNOWN", Message: http.StatusText(status)}
	}
	return &APIError{Status: status, Code: body.Code, Message: body.Message}
}
