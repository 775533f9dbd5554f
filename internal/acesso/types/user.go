package types

// User is the full usuarios row as served by GET /api/usuarios.
type User struct {
	ID        int64   `json:"id"`
	UID       string  `json:"uid"`
	Name      string  `json:"nome"`
	Role      *string `json:"cargo"`
	Active    int     `json:"ativo"`
	ExpiresAt *int64  `json:"validade"`
	CreatedAt int64   `json:"criado_em"`
}

type CreateUserRequest struct {
	UID  string `json:"uid"`
	Name string `json:"nome"`
	Role string `json:"cargo,omitempty"`
}

type CreateUserResponse struct {
	Success bool   `json:"sucesso"`
	ID      int64  `json:"id"`
	Message string `json:"mensagem"`
}

type DeleteUserResponse struct {
	Success bool   `json:"sucesso"`
	Message string `json:"mensagem"`
}
