package httpapi

import (
	"encoding/json"
	"net/http"
)

const (
	// maxTerminalBody caps bodies from reader terminals; a full /api/log
	// payload is well under 300 bytes.
	maxTerminalBody = 4096
	maxAdminBody    = 64 * 1024
)

// Response messages are part of the wire contract with existing terminals
// and the dashboard; keep them byte-for-byte.
const (
	msgUIDAndNameRequired = "UID e nome são obrigatórios"
	msgUIDConflict        = "UID já cadastrado"
	msgEventFields        = "machine_id, uid e evento são obrigatórios"
	msgBadJSON            = "JSON inválido"
	msgBadID              = "id inválido"
	msgInternal           = "erro interno do servidor"
	msgUserCreated        = "Usuário cadastrado com sucesso"
	msgUserDeleted        = "Usuário deletado"
)

type errorResponse struct {
	Error string `json:"erro"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// readJSON decodes a single JSON value from a size-capped body. Unknown
// fields are ignored: older firmware sends extras.
func readJSON(w http.ResponseWriter, r *http.Request, limit int64, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	return json.NewDecoder(r.Body).Decode(v)
}
