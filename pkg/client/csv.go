package client

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// TemplateCSV plantilla de ejemplo para el import masivo.
const TemplateCSV = `name,sku,description,categoryId,price,costPrice,stock,lowStockThreshold
iPhone 14 Pro,IPH14P-256,Latest iPhone model,1,99900,85000,50,10
Cotton T-Shirt,TSH-COT-001,Comfortable cotton t-shirt,2,899,450,100,20`

// ParseProductsCSV convierte un CSV con cabecera en filas listas para
// BulkImport. Las columnas se reconocen por nombre en cualquier orden. Las
// filas sin name, sku o price se descartan; los números inválidos dejan el
// campo sin enviar. Refleja lo que hacía el formulario de import de la UI.
func ParseProductsCSV(r io.Reader) ([]ProductInput, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leer cabecera: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var products []ProductInput
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("leer fila: %w", err)
		}

		var (
			p        ProductInput
			hasPrice bool
		)
		for i, col := range header {
			if i >= len(record) {
				break
			}
			value := strings.TrimSpace(record[i])
			if value == "" {
				continue
			}
			switch col {
			case "name":
				p.Name = value
			case "sku":
				p.SKU = value
			case "description":
				p.Description = value
			case "categoryId":
				v := value
				p.CategoryID = &v
			case "price":
				if d, err := decimal.NewFromString(value); err == nil {
					p.Price = d
					hasPrice = true
				}
			case "costPrice":
				if d, err := decimal.NewFromString(value); err == nil {
					p.CostPrice = &d
				}
			case "stock":
				if n, err := strconv.Atoi(value); err == nil {
					p.Stock = &n
				}
			case "lowStockThreshold":
				if n, err := strconv.Atoi(value); err == nil {
					p.LowStockThreshold = &n
				}
			case "imageUrl":
				v := value
				p.ImageURL = &v
			}
		}

		if p.Name == "" || p.SKU == "" || !hasPrice {
			continue
		}
		products = append(products, p)
	}
	return products, nil
}
