package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/BrandonDHaskell/acesso/server/internal/acesso/service"
	"github.com/BrandonDHaskell/acesso/server/internal/acesso/types"
)

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.directoryService.ListUsers(r.Context())
	if err != nil {
		s.internalError(w, r, "list users", err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req types.CreateUserRequest
	if err := readJSON(w, r, maxAdminBody, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgBadJSON)
		return
	}

	id, err := s.directoryService.CreateUser(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUIDAndNameRequired):
			writeError(w, http.StatusBadRequest, msgUIDAndNameRequired)
		case errors.Is(err, service.ErrUIDConflict):
			writeError(w, http.StatusBadRequest, msgUIDConflict)
		default:
			s.internalError(w, r, "create user", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, types.CreateUserResponse{
		Success: true,
		ID:      id,
		Message: msgUserCreated,
	})
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, msgBadID)
		return
	}

	if err := s.directoryService.DeleteUser(r.Context(), id); err != nil {
		s.internalError(w, r, "delete user", err)
		return
	}
	writeJSON(w, http.StatusOK, types.DeleteUserResponse{Success: true, Message: msgUserDeleted})
}

func (s *Server) handleListMachines(w http.ResponseWriter, r *http.Request) {
	machines, err := s.directoryService.ListMachines(r.Context())
	if err != nil {
		s.internalError(w, r, "list machines", err)
		return
	}
	writeJSON(w, http.StatusOK, machines)
}
