package dto

// CreateRuleRequest alta de una regla de consumo. Name es el texto operable
// ("2 per guest per night"); Description es informativa.
type CreateRuleRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// RuleResponse regla de consumo para respuestas HTTP.
type RuleResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// AssignRuleRequest asigna una regla a un par (ítem, tipo de propiedad).
// Si el par ya tiene regla, la reemplaza.
type AssignRuleRequest struct {
	ItemName     string `json:"item_name"`
	PropertyType string `json:"property_type"` // entire_place | private_room | shared_room
	RuleID       string `json:"rule_id"`
}

// AssignmentResponse asignación ítem → regla para respuestas HTTP.
type AssignmentResponse struct {
	ID           string `json:"id"`
	ItemName     string `json:"item_name"`
	PropertyType string `json:"property_type"`
	RuleID       string `json:"rule_id"`
}
