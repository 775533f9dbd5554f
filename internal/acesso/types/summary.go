package types

// Summary holds the row counts shown on the index page.
type Summary struct {
	Users    int64 `json:"usuarios"`
	Machines int64 `json:"maquinas"`
	Events   int64 `json:"logs"`
}
