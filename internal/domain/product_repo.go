package domain

type ProductRepository interface {
	GetProductByID(productID string) (*Product, error)
}
