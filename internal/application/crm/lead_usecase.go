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

// LeadUseCase ciclo de vida del lead: CRUD, enlaces de interés y conversión.
type LeadUseCase struct {
	leads         repository.LeadRepository
	interests     repository.InterestRepository
	tx            TxRunner
	warrantyYears int // default para conversión cuando el caller no lo indica
}

// NewLeadUseCase construye el caso de uso.
func NewLeadUseCase(leads repository.LeadRepository, interests repository.InterestRepository, tx TxRunner, warrantyYears int) *LeadUseCase {
	if warrantyYears < 0 {
		warrantyYears = entity.DefaultWarrantyYears
	}
	return &LeadUseCase{leads: leads, interests: interests, tx: tx, warrantyYears: warrantyYears}
}

// Create crea un lead y sus filas de interés en una sola transacción. Si algún
// productId no resuelve no se persiste nada.
func (uc *LeadUseCase) Create(ctx context.Context, in dto.CreateLeadRequest) (*dto.LeadResponse, error) {
	if in.Name == "" || in.Phone == "" || in.Area == "" {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.LeadStatusNew
	}
	if !entity.ValidLeadStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	priority := in.Priority
	if priority == "" {
		priority = entity.PriorityMedium
	}
	if !entity.ValidPriority(priority) {
		return nil, domain.ErrInvalidInput
	}
	var followUp *time.Time
	if in.FollowUpDate != nil && *in.FollowUpDate != "" {
		d, err := parseDateOnly(*in.FollowUpDate)
		if err != nil {
			return nil, err
		}
		followUp = &d
	}
	lead := &entity.Lead{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Phone:        in.Phone,
		Email:        in.Email,
		Area:         in.Area,
		Address:      in.Address,
		Status:       status,
		Source:       in.Source,
		Priority:     priority,
		Notes:        in.Notes,
		FollowUpDate: followUp,
		SalesRep:     in.SalesRep,
		CreatedAt:    time.Now(),
	}

	var linked []*entity.Product
	err := uc.tx.Run(ctx, func(
		leads repository.LeadRepository,
		_ repository.CustomerRepository,
		products repository.ProductRepository,
		interests repository.InterestRepository,
	) error {
		resolved, err := resolveProducts(products, in.ProductIDs)
		if err != nil {
			return err
		}
		if err := leads.Create(lead); err != nil {
			return err
		}
		if err := linkProducts(interests, entity.OwnerLead, lead.ID, resolved); err != nil {
			return err
		}
		linked = resolved
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toLeadResponse(lead, linked), nil
}

// GetByID obtiene un lead con sus productos de interés en orden.
func (uc *LeadUseCase) GetByID(id string) (*dto.LeadResponse, error) {
	lead, err := uc.leads.GetByID(id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, nil
	}
	products, err := uc.interests.ListProductsByOwner(entity.OwnerLead, lead.ID)
	if err != nil {
		return nil, err
	}
	return toLeadResponse(lead, products), nil
}

// List lista leads con filtros y sus productos enlazados.
func (uc *LeadUseCase) List(f repository.LeadFilter) (*dto.LeadListResponse, error) {
	list, err := uc.leads.List(f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LeadResponse, 0, len(list))
	for _, lead := range list {
		products, err := uc.interests.ListProductsByOwner(entity.OwnerLead, lead.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, *toLeadResponse(lead, products))
	}
	return &dto.LeadListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset},
	}, nil
}

// Update actualiza un lead. Si ProductIDs viene presente se reemplazan todos
// los enlaces (todo o nada: un id inválido revierte la transacción completa).
func (uc *LeadUseCase) Update(ctx context.Context, id string, in dto.UpdateLeadRequest) (*dto.LeadResponse, error) {
	var lead *entity.Lead
	var linked []*entity.Product
	err := uc.tx.Run(ctx, func(
		leads repository.LeadRepository,
		_ repository.CustomerRepository,
		products repository.ProductRepository,
		interests repository.InterestRepository,
	) error {
		var err error
		lead, err = leads.GetByID(id)
		if err != nil {
			return err
		}
		if lead == nil {
			return nil
		}
		if err := applyLeadUpdate(lead, in); err != nil {
			return err
		}
		if err := leads.Update(lead); err != nil {
			return err
		}
		if in.ProductIDs != nil {
			resolved, err := resolveProducts(products, *in.ProductIDs)
			if err != nil {
				return err
			}
			if err := replaceLinks(interests, entity.OwnerLead, lead.ID, resolved); err != nil {
				return err
			}
			linked = resolved
			return nil
		}
		linked, err = interests.ListProductsByOwner(entity.OwnerLead, lead.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, nil
	}
	return toLeadResponse(lead, linked), nil
}

// Delete elimina un lead; sus filas de interés caen en cascada.
func (uc *LeadUseCase) Delete(id string) error {
	return uc.leads.Delete(id)
}

// Convert convierte un lead en cliente dentro de una sola transacción:
// crea el Customer copiando los datos de contacto, duplica los enlaces de
// producto conservando el orden y marca el lead como "won" (el registro del
// lead se conserva). La operación NO es idempotente a propósito: convertir dos
// veces crea un segundo cliente (un lead puede generar un contrato nuevo);
// es responsabilidad del caller no repetir la llamada por accidente.
func (uc *LeadUseCase) Convert(ctx context.Context, leadID string, in dto.ConvertLeadRequest) (*dto.CustomerResponse, error) {
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

	var customer *entity.Customer
	var linked []*entity.Product
	err = uc.tx.Run(ctx, func(
		leads repository.LeadRepository,
		customers repository.CustomerRepository,
		_ repository.ProductRepository,
		interests repository.InterestRepository,
	) error {
		lead, err := leads.GetByID(leadID)
		if err != nil {
			return err
		}
		if lead == nil {
			return domain.ErrLeadNotFound
		}
		customer = &entity.Customer{
			ID:               uuid.New().String(),
			Name:             lead.Name,
			Phone:            lead.Phone,
			Email:            lead.Email,
			Area:             lead.Area,
			Address:          lead.Address,
			InstallationDate: installation,
			ExpiryDate:       entity.ExpiryDate(installation, years),
			Amount:           decimal.Zero,
			Status:           entity.StatusActive,
			SalesRep:         lead.SalesRep,
			Notes:            lead.Notes,
			CreatedAt:        time.Now(),
		}
		if err := customers.Create(customer); err != nil {
			return err
		}
		linked, err = interests.ListProductsByOwner(entity.OwnerLead, lead.ID)
		if err != nil {
			return err
		}
		if err := linkProducts(interests, entity.OwnerCustomer, customer.ID, linked); err != nil {
			return err
		}
		lead.Status = entity.LeadStatusWon
		return leads.Update(lead)
	})
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(customer, linked), nil
}

func applyLeadUpdate(lead *entity.Lead, in dto.UpdateLeadRequest) error {
	if in.Name != nil {
		if *in.Name == "" {
			return domain.ErrInvalidInput
		}
		lead.Name = *in.Name
	}
	if in.Phone != nil {
		if *in.Phone == "" {
			return domain.ErrInvalidInput
		}
		lead.Phone = *in.Phone
	}
	if in.Area != nil {
		if *in.Area == "" {
			return domain.ErrInvalidInput
		}
		lead.Area = *in.Area
	}
	if in.Email != nil {
		lead.Email = *in.Email
	}
	if in.Address != nil {
		lead.Address = *in.Address
	}
	if in.Status != nil {
		if !entity.ValidLeadStatus(*in.Status) {
			return domain.ErrInvalidInput
		}
		lead.Status = *in.Status
	}
	if in.Source != nil {
		lead.Source = *in.Source
	}
	if in.Priority != nil {
		if !entity.ValidPriority(*in.Priority) {
			return domain.ErrInvalidInput
		}
		lead.Priority = *in.Priority
	}
	if in.Notes != nil {
		lead.Notes = *in.Notes
	}
	if in.SalesRep != nil {
		lead.SalesRep = *in.SalesRep
	}
	if in.FollowUpDate != nil {
		if *in.FollowUpDate == "" {
			lead.FollowUpDate = nil
		} else {
			d, err := parseDateOnly(*in.FollowUpDate)
			if err != nil {
				return err
			}
			lead.FollowUpDate = &d
		}
	}
	return nil
}

func toLeadResponse(lead *entity.Lead, products []*entity.Product) *dto.LeadResponse {
	if lead == nil {
		return nil
	}
	var followUp *string
	if lead.FollowUpDate != nil {
		s := formatDate(*lead.FollowUpDate)
		followUp = &s
	}
	return &dto.LeadResponse{
		ID:           lead.ID,
		Name:         lead.Name,
		Phone:        lead.Phone,
		Email:        lead.Email,
		Area:         lead.Area,
		Address:      lead.Address,
		Status:       lead.Status,
		Source:       lead.Source,
		Priority:     lead.Priority,
		Notes:        lead.Notes,
		FollowUpDate: followUp,
		SalesRep:     lead.SalesRep,
		Products:     toProductResponses(products),
		CreatedAt:    lead.CreatedAt,
	}
}
