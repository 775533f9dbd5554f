package types

// ValidateResponse is what a terminal gets back for GET /api/validar/{uid}.
// Unknown and deactivated cards both come back as {"autorizado": false}.
type ValidateResponse struct {
	Authorized bool         `json:"autorizado"`
	User       *UserSummary `json:"usuario,omitempty"`
}

// UserSummary is the projection of a user a terminal is allowed to see.
type UserSummary struct {
	UID  string  `json:"uid"`
	Name string  `json:"nome"`
	Role *string `json:"cargo"`
}
