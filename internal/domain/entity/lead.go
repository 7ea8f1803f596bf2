package entity

import "time"

// Estados válidos para Lead.
const (
	LeadStatusNew         = "new"
	LeadStatusContacted   = "contacted"
	LeadStatusQualified   = "qualified"
	LeadStatusNegotiation = "negotiation"
	LeadStatusWon         = "won"
	LeadStatusLost        = "lost"
)

// Prioridades válidas para Lead.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Lead es un prospecto de venta. Se convierte en Customer mediante la
// operación de conversión; el registro del lead se conserva con estado "won".
type Lead struct {
	ID           string
	Name         string
	Phone        string
	Email        string
	Area         string
	Address      string
	Status       string // new, contacted, qualified, negotiation, won, lost
	Source       string
	Priority     string // low, medium, high
	Notes        string
	FollowUpDate *time.Time
	SalesRep     string
	CreatedAt    time.Time
}

// ValidLeadStatus indica si el estado pertenece al ciclo de vida del lead.
func ValidLeadStatus(status string) bool {
	switch status {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified,
		LeadStatusNegotiation, LeadStatusWon, LeadStatusLost:
		return true
	}
	return false
}

// ValidPriority indica si la prioridad es low, medium o high.
func ValidPriority(priority string) bool {
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}
