package catalog

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"storefront/internal/domain/service"
)

type productsDocument struct {
	XMLName  xml.Name          `xml:"Products"`
	Products []productDocument `xml:"Product"`
}

type productDocument struct {
	Name        string  `xml:"Name"`
	Description string  `xml:"Description"`
	Price       float64 `xml:"Price"`
	Stock       int     `xml:"Stock"`
	TagName     string  `xml:"TagName"`
}

// ParseProductsXML decodes a <Products><Product>...</Product></Products> document.
// Every entry must carry a name and non-negative price and stock.
func ParseProductsXML(data []byte) ([]service.CatalogProduct, error) {
	var doc productsDocument
	if err := xml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		return nil, service.InvalidCatalogDocument("document is not a well-formed Products XML document", err)
	}

	products := make([]service.CatalogProduct, 0, len(doc.Products))
	for i, entry := range doc.Products {
		name := strings.TrimSpace(entry.Name)
		switch {
		case name == "":
			return nil, service.InvalidCatalogDocument(fmt.Sprintf("product %d has no name", i+1), nil)
		case entry.Price < 0:
			return nil, service.InvalidCatalogDocument(fmt.Sprintf("product %q has a negative price", name), nil)
		case entry.Stock < 0:
			return nil, service.InvalidCatalogDocument(fmt.Sprintf("product %q has negative stock", name), nil)
		}

		products = append(products, service.CatalogProduct{
			Name:        name,
			Description: strings.TrimSpace(entry.Description),
			Price:       entry.Price,
			Stock:       entry.Stock,
			TagName:     strings.TrimSpace(entry.TagName),
		})
	}

	return products, nil
}
