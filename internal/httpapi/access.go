package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/BrandonDHaskell/acesso/server/internal/acesso/service"
	"github.com/BrandonDHaskell/acesso/server/internal/acesso/types"
)

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	resp, err := s.validationService.Validate(r.Context(), mux.Vars(r)["uid"])
	if err != nil {
		s.internalError(w, r, "validate", err)
		return
	}

	if wantsProtobuf(r) {
		msg, err := validateResponseToProto(resp)
		if err != nil {
			s.internalError(w, r, "validate encode", err)
			return
		}
		writeProto(w, http.StatusOK, msg)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleLogEvent(w http.ResponseWriter, r *http.Request) {
	var req types.LogEventRequest
	if isProtobuf(r) {
		var msg structpb.Struct
		if err := readProto(r, &msg); err != nil {
			writeError(w, http.StatusBadRequest, msgBadJSON)
			return
		}
		var err error
		if req, err = logEventRequestFromProto(&msg); err != nil {
			writeError(w, http.StatusBadRequest, msgBadJSON)
			return
		}
	} else if err := readJSON(w, r, maxTerminalBody, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgBadJSON)
		return
	}

	id, err := s.eventLogService.Append(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrEventFieldsRequired) {
			writeError(w, http.StatusBadRequest, msgEventFields)
			return
		}
		s.internalError(w, r, "log event", err)
		return
	}

	resp := types.LogEventResponse{Success: true, ID: id}
	if wantsProtobuf(r) {
		msg, err := logEventResponseToProto(resp)
		if err != nil {
			s.internalError(w, r, "log event encode", err)
			return
		}
		writeProto(w, http.StatusOK, msg)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListLogs(w http.ResponseWriter, r *http.Request) {
	// Missing or unparseable limite means the default; an explicit 0 is honoured.
	limit := service.DefaultRecentLimit
	if v := r.URL.Query().Get("limite"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}

	events, err := s.eventLogService.Recent(r.Context(), limit)
	if err != nil {
		s.internalError(w, r, "list logs", err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}
