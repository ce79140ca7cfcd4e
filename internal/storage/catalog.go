package storage

type CatalogProduct struct {
	ID   int64  `json:"id"`
	SKU  string `json:"sku"`
	Name string `json:"name"`
}

type SaveCatalogProduct struct {
	SKU  string `json:"sku"`
	Name string `json:"name"`
}
