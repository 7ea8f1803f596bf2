package dto

import "time"

// CreateLeadRequest alta de lead. ProductIDs se enlazan vía filas de interés;
// si algún id no resuelve, no se persiste nada.
type CreateLeadRequest struct {
	Name         string   `json:"name"`
	Phone        string   `json:"phone"`
	Email        string   `json:"email"`
	Area         string   `json:"area"`
	Address      string   `json:"address"`
	Status       string   `json:"status"`
	Source       string   `json:"source"`
	Priority     string   `json:"priority"`
	Notes        string   `json:"notes"`
	FollowUpDate *string  `json:"followUpDate"` // YYYY-MM-DD
	SalesRep     string   `json:"salesRep"`
	ProductIDs   []string `json:"productIds"`
}

// UpdateLeadRequest actualización parcial. ProductIDs nil = no tocar enlaces;
// lista presente = reemplazo completo (todo o nada).
type UpdateLeadRequest struct {
	Name         *string   `json:"name"`
	Phone        *string   `json:"phone"`
	Email        *string   `json:"email"`
	Area         *string   `json:"area"`
	Address      *string   `json:"address"`
	Status       *string   `json:"status"`
	Source       *string   `json:"source"`
	Priority     *string   `json:"priority"`
	Notes        *string   `json:"notes"`
	FollowUpDate *string   `json:"followUpDate"`
	SalesRep     *string   `json:"salesRep"`
	ProductIDs   *[]string `json:"productIds"`
}

// LeadResponse salida de un lead con sus productos de interés en orden.
type LeadResponse struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Phone        string            `json:"phone"`
	Email        string            `json:"email"`
	Area         string            `json:"area"`
	Address      string            `json:"address"`
	Status       string            `json:"status"`
	Source       string            `json:"source"`
	Priority     string            `json:"priority"`
	Notes        string            `json:"notes"`
	FollowUpDate *string           `json:"followUpDate"`
	SalesRep     string            `json:"salesRep"`
	Products     []ProductResponse `json:"products"`
	CreatedAt    time.Time         `json:"createdAt"`
}

// LeadListResponse lista paginada de leads.
type LeadListResponse struct {
	Items []LeadResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// ConvertLeadRequest parámetros de conversión Lead -> Customer.
type ConvertLeadRequest struct {
	InstallationDate string `json:"installationDate"` // YYYY-MM-DD
	WarrantyYears    *int   `json:"warrantyYears"`    // default 2
}
