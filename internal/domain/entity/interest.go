package entity

// OwnerKind distingue al dueño de una fila de interés: lead o customer.
type OwnerKind string

const (
	OwnerLead     OwnerKind = "lead"
	OwnerCustomer OwnerKind = "customer"
)

// Interest es una fila de unión entre un Lead/Customer y un Product.
// Position conserva el orden de creación; se permiten duplicados.
type Interest struct {
	ID        string
	OwnerKind OwnerKind
	OwnerID   string
	ProductID string
	Position  int
}
