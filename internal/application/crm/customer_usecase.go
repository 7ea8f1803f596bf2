package crm

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// CustomerUseCase CRUD de clientes con enlaces de producto y cálculo de garantía.
type CustomerUseCase struct {
	customers     repository.CustomerRepository
	interests     repository.InterestRepository
	tx            TxRunner
	warrantyYears int // default cuando el caller no envía warrantyYears
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(customers repository.CustomerRepository, interests repository.InterestRepository, tx TxRunner, warrantyYears int) *CustomerUseCase {
	if warrantyYears < 0 {
		warrantyYears = entity.DefaultWarrantyYears
	}
	return &CustomerUseCase{customers: customers, interests: interests, tx: tx, warrantyYears: warrantyYears}
}

// Create crea un cliente y sus enlaces en una sola transacción. ExpiryDate se
// deriva de installationDate + warrantyYears salvo que venga explícita.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" || in.Phone == "" || in.Area == "" || in.Address == "" || in.InstallationDate == "" {
		return nil, domain.ErrInvalidInput
	}
	installation, err := parseDateOnly(in.InstallationDate)
	if err != nil {
		return nil, err
	}
	years := uc.warrantyYears
	if in.WarrantyYears != nil {
		if *in.WarrantyYears < 0 {
			return nil, domain.ErrInvalidInput
		}
		years = *in.WarrantyYears
	}
	expiry := entity.ExpiryDate(installation, years)
	if in.ExpiryDate != nil && *in.ExpiryDate != "" {
		expiry, err = parseDateOnly(*in.ExpiryDate)
		if err != nil {
			return nil, err
		}
	}
	amount := decimal.Zero
	if in.Amount != nil {
		amount = in.Amount.Round(2)
	}
	status := in.Status
	if status == "" {
		status = entity.StatusActive
	}
	if !entity.ValidStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	customer := &entity.Customer{
		ID:               uuid.New().String(),
		Name:             in.Name,
		Phone:            in.Phone,
		Email:            in.Email,
		Area:             in.Area,
		Address:          in.Address,
		InstallationDate: installation,
		ExpiryDate:       expiry,
		Amount:           amount,
		Status:           status,
		SalesRep:         in.SalesRep,
		Notes:            in.Notes,
		CreatedAt:        time.Now(),
	}

	var linked []*entity.Product
	err = uc.tx.Run(ctx, func(
		_ repository.LeadRepository,
		customers repository.CustomerRepository,
		products repository.ProductRepository,
		interests repository.InterestRepository,
	) error {
		resolved, err := resolveProducts(products, in.ProductIDs)
		if err != nil {
			return err
		}
		if err := customers.Create(customer); err != nil {
			return err
		}
		if err := linkProducts(interests, entity.OwnerCustomer, customer.ID, resolved); err != nil {
			return err
		}
		linked = resolved
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(customer, linked), nil
}

// GetByID obtiene un cliente con sus productos asociados en orden.
func (uc *CustomerUseCase) GetByID(id string) (*dto.CustomerResponse, error) {
	customer, err := uc.customers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	products, err := uc.interests.ListProductsByOwner(entity.OwnerCustomer, customer.ID)
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(customer, products), nil
}

// List lista clientes con filtros y sus productos enlazados.
func (uc *CustomerUseCase) List(f repository.CustomerFilter) (*dto.CustomerListResponse, error) {
	list, err := uc.customers.List(f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		products, err := uc.interests.ListProductsByOwner(entity.OwnerCustomer, c.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, *toCustomerResponse(c, products))
	}
	return &dto.CustomerListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset},
	}, nil
}

// Update actualiza un cliente. Cambiar installationDate o warrantyYears
// recalcula expiryDate; ProductIDs presente reemplaza todos los enlaces.
func (uc *CustomerUseCase) Update(ctx context.Context, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	var customer *entity.Customer
	var linked []*entity.Product
	err := uc.tx.Run(ctx, func(
		_ repository.LeadRepository,
		customers repository.CustomerRepository,
		products repository.ProductRepository,
		interests repository.InterestRepository,
	) error {
		var err error
		customer, err = customers.GetByID(id)
		if err != nil {
			return err
		}
		if customer == nil {
			return nil
		}
		if err := uc.applyCustomerUpdate(customer, in); err != nil {
			return err
		}
		if err := customers.Update(customer); err != nil {
			return err
		}
		if in.ProductIDs != nil {
			resolved, err := resolveProducts(products, *in.ProductIDs)
			if err != nil {
				return err
			}
			if err := replaceLinks(interests, entity.OwnerCustomer, customer.ID, resolved); err != nil {
				return err
			}
			linked = resolved
			return nil
		}
		linked, err = interests.ListProductsByOwner(entity.OwnerCustomer, customer.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	return toCustomerResponse(customer, linked), nil
}

// Delete elimina un cliente; sus filas de asociación caen en cascada.
func (uc *CustomerUseCase) Delete(id string) error {
	return uc.customers.Delete(id)
}

func (uc *CustomerUseCase) applyCustomerUpdate(customer *entity.Customer, in dto.UpdateCustomerRequest) error {
	if in.Name != nil {
		if *in.Name == "" {
			return domain.ErrInvalidInput
		}
		customer.Name = *in.Name
	}
	if in.Phone != nil {
		if *in.Phone == "" {
			return domain.ErrInvalidInput
		}
		customer.Phone = *in.Phone
	}
	if in.Area != nil {
		if *in.Area == "" {
			return domain.ErrInvalidInput
		}
		customer.Area = *in.Area
	}
	if in.Address != nil {
		if *in.Address == "" {
			return domain.ErrInvalidInput
		}
		customer.Address = *in.Address
	}
	if in.Email != nil {
		customer.Email = *in.Email
	}
	if in.SalesRep != nil {
		customer.SalesRep = *in.SalesRep
	}
	if in.Notes != nil {
		customer.Notes = *in.Notes
	}
	if in.Amount != nil {
		customer.Amount = in.Amount.Round(2)
	}
	if in.Status != nil {
		if !entity.ValidStatus(*in.Status) {
			return domain.ErrInvalidInput
		}
		customer.Status = *in.Status
	}
	recompute := false
	if in.InstallationDate != nil {
		d, err := parseDateOnly(*in.InstallationDate)
		if err != nil {
			return err
		}
		customer.InstallationDate = d
		recompute = true
	}
	years := uc.warrantyYears
	if in.WarrantyYears != nil {
		if *in.WarrantyYears < 0 {
			return domain.ErrInvalidInput
		}
		years = *in.WarrantyYears
		recompute = true
	}
	if recompute {
		customer.ExpiryDate = entity.ExpiryDate(customer.InstallationDate, years)
	}
	return nil
}

func toCustomerResponse(c *entity.Customer, products []*entity.Product) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	return &dto.CustomerResponse{
		ID:               c.ID,
		Name:             c.Name,
		Phone:            c.Phone,
		Email:            c.Email,
		Area:             c.Area,
		Address:          c.Address,
		InstallationDate: formatDate(c.InstallationDate),
		ExpiryDate:       formatDate(c.ExpiryDate),
		Amount:           c.Amount,
		Status:           c.Status,
		SalesRep:         c.SalesRep,
		Notes:            c.Notes,
		Products:         toProductResponses(products),
		CreatedAt:        c.CreatedAt,
	}
}
