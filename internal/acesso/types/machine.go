package types

type Machine struct {
	ID        int64   `json:"id"`
	MachineID string  `json:"machine_id"`
	Name      string  `json:"nome"`
	Location  *string `json:"local"`
	Active    int     `json:"ativa"`
	IP        *string `json:"ip"`
	CreatedAt int64   `json:"criado_em"`
}
