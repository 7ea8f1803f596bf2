package importer

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// TxRunner transacción por fila: cada fila importada (registro + enlaces) se
// persiste de forma atómica e independiente de las demás.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		leads repository.LeadRepository,
		customers repository.CustomerRepository,
		products repository.ProductRepository,
		interests repository.InterestRepository,
	) error) error
}

// Formatos de fecha aceptados en celdas: ISO y los formatos de presentación
// habituales de xlsx para celdas de tipo fecha.
var dateLayouts = []string{
	time.DateOnly, // 2006-01-02
	"1/2/06",
	"01-02-06",
	"1/2/2006",
	"01/02/2006",
}

// ImportUseCase importación masiva de leads o clientes desde una hoja de
// cálculo. Las filas se procesan de forma independiente: el fallo de una fila
// se registra con su número (1-based, cabecera = fila 1) y el lote continúa.
type ImportUseCase struct {
	tx            TxRunner
	sheets        SheetReader
	warrantyYears int
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(tx TxRunner, sheets SheetReader, warrantyYears int) *ImportUseCase {
	if warrantyYears < 0 {
		warrantyYears = entity.DefaultWarrantyYears
	}
	return &ImportUseCase{tx: tx, sheets: sheets, warrantyYears: warrantyYears}
}

// Import procesa el archivo completo. Si el archivo no puede parsearse no se
// procesa ninguna fila y se devuelve domain.ErrImportFormat; los errores por
// fila jamás abortan el lote ni se propagan como error.
func (uc *ImportUseCase) Import(ctx context.Context, kind entity.OwnerKind, r io.Reader) (*dto.ImportResponse, error) {
	rows, err := uc.sheets.Read(r)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: el archivo no tiene cabecera", domain.ErrImportFormat)
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	out := &dto.ImportResponse{Success: true, Errors: []dto.ImportRowError{}}
	for i, row := range rows[1:] {
		rowNum := i + 2 // la cabecera es la fila 1
		data := zipRow(headers, row)
		var rowErr error
		switch kind {
		case entity.OwnerLead:
			rowErr = uc.importLeadRow(ctx, data)
		case entity.OwnerCustomer:
			rowErr = uc.importCustomerRow(ctx, data)
		default:
			return nil, domain.ErrInvalidInput
		}
		if rowErr != nil {
			out.Failed++
			out.Errors = append(out.Errors, dto.ImportRowError{Row: rowNum, Error: rowErr.Error()})
			continue
		}
		out.Imported++
	}
	return out, nil
}

// importLeadRow valida y persiste una fila de lead con sus enlaces en una
// transacción propia.
func (uc *ImportUseCase) importLeadRow(ctx context.Context, data map[string]string) error {
	name := data["name"]
	phone := data["phone"]
	area := data["area"]
	if name == "" {
		return fmt.Errorf("el campo name es requerido")
	}
	if phone == "" {
		return fmt.Errorf("el campo phone es requerido")
	}
	if area == "" {
		return fmt.Errorf("el campo area es requerido")
	}
	status := data["status"]
	if status == "" {
		status = entity.LeadStatusNew
	}
	if !entity.ValidLeadStatus(status) {
		return fmt.Errorf("estado inválido %q", status)
	}
	priority := data["priority"]
	if priority == "" {
		priority = entity.PriorityMedium
	}
	if !entity.ValidPriority(priority) {
		return fmt.Errorf("prioridad inválida %q", priority)
	}
	var followUp *time.Time
	if s := data["followUpDate"]; s != "" {
		d, err := parseCellDate(s)
		if err != nil {
			return fmt.Errorf("followUpDate inválida %q", s)
		}
		followUp = &d
	}
	lead := &entity.Lead{
		ID:           uuid.New().String(),
		Name:         name,
		Phone:        phone,
		Email:        data["email"],
		Area:         area,
		Address:      data["address"],
		Status:       status,
		Source:       data["source"],
		Priority:     priority,
		Notes:        data["notes"],
		FollowUpDate: followUp,
		SalesRep:     data["salesRep"],
		CreatedAt:    time.Now(),
	}
	return uc.tx.Run(ctx, func(
		leads repository.LeadRepository,
		_ repository.CustomerRepository,
		products repository.ProductRepository,
		interests repository.InterestRepository,
	) error {
		resolved, err := resolveProductNames(products, data["products"])
		if err != nil {
			return err
		}
		if err := leads.Create(lead); err != nil {
			return err
		}
		return insertLinks(interests, entity.OwnerLead, lead.ID, resolved)
	})
}

// importCustomerRow valida y persiste una fila de cliente; expiryDate se
// deriva igual que en la conversión (installationDate + warrantyYears).
func (uc *ImportUseCase) importCustomerRow(ctx context.Context, data map[string]string) error {
	name := data["name"]
	phone := data["phone"]
	area := data["area"]
	address := data["address"]
	if name == "" {
		return fmt.Errorf("el campo name es requerido")
	}
	if phone == "" {
		return fmt.Errorf("el campo phone es requerido")
	}
	if area == "" {
		return fmt.Errorf("el campo area es requerido")
	}
	if address == "" {
		return fmt.Errorf("el campo address es requerido")
	}
	rawDate := data["installationDate"]
	if rawDate == "" {
		return fmt.Errorf("el campo installationDate es requerido")
	}
	installation, err := parseCellDate(rawDate)
	if err != nil {
		return fmt.Errorf("installationDate inválida %q", rawDate)
	}
	years := uc.warrantyYears
	if s := data["warrantyYears"]; s != "" {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || n < 0 {
			return fmt.Errorf("warrantyYears inválido %q", s)
		}
		years = n
	}
	amount := decimal.Zero
	if s := data["amount"]; s != "" {
		amount, err = decimal.NewFromString(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("amount inválido %q", s)
		}
		amount = amount.Round(2)
	}
	status := data["status"]
	if status == "" {
		status = entity.StatusActive
	}
	if !entity.ValidStatus(status) {
		return fmt.Errorf("estado inválido %q", status)
	}
	customer := &entity.Customer{
		ID:               uuid.New().String(),
		Name:             name,
		Phone:            phone,
		Email:            data["email"],
		Area:             area,
		Address:          address,
		InstallationDate: installation,
		ExpiryDate:       entity.ExpiryDate(installation, years),
		Amount:           amount,
		Status:           status,
		SalesRep:         data["salesRep"],
		Notes:            data["notes"],
		CreatedAt:        time.Now(),
	}
	return uc.tx.Run(ctx, func(
		_ repository.LeadRepository,
		customers repository.CustomerRepository,
		products repository.ProductRepository,
		interests repository.InterestRepository,
	) error {
		resolved, err := resolveProductNames(products, data["products"])
		if err != nil {
			return err
		}
		if err := customers.Create(customer); err != nil {
			return err
		}
		return insertLinks(interests, entity.OwnerCustomer, customer.ID, resolved)
	})
}

// resolveProductNames resuelve la columna products (nombres separados por
// coma, match exacto sensible a mayúsculas y espacios). Un nombre que no
// resuelve hace fallar la fila completa.
func resolveProductNames(products repository.ProductRepository, cell string) ([]*entity.Product, error) {
	if cell == "" {
		return nil, nil
	}
	names := strings.Split(cell, ",")
	resolved := make([]*entity.Product, 0, len(names))
	for _, name := range names {
		p, err := products.GetByName(name)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, fmt.Errorf("producto `%s` no encontrado", name)
		}
		resolved = append(resolved, p)
	}
	return resolved, nil
}

func insertLinks(interests repository.InterestRepository, kind entity.OwnerKind, ownerID string, products []*entity.Product) error {
	for i, p := range products {
		row := &entity.Interest{
			ID:        uuid.New().String(),
			OwnerKind: kind,
			OwnerID:   ownerID,
			ProductID: p.ID,
			Position:  i,
		}
		if err := interests.Insert(row); err != nil {
			return err
		}
	}
	return nil
}

func parseCellDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("fecha inválida %q", s)
}

func zipRow(headers, row []string) map[string]string {
	data := make(map[string]string, len(headers))
	for i, h := range headers {
		if h == "" {
			continue
		}
		if i < len(row) {
			data[h] = row[i]
		} else {
			data[h] = ""
		}
	}
	return data
}
