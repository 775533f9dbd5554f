package httpapi

import (
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/BrandonDHaskell/acesso/server/internal/acesso/types"
)

// Terminals that speak protobuf exchange google.protobuf.Struct messages
// carrying the same keys as the JSON API.

func validateResponseToProto(r types.ValidateResponse) (*structpb.Struct, error) {
	fields := map[string]any{"autorizado": r.Authorized}
	if r.User != nil {
		u := map[string]any{
			"uid":   r.User.UID,
			"nome":  r.User.Name,
			"cargo": nil,
		}
		if r.User.Role != nil {
			u["cargo"] = *r.User.Role
		}
		fields["usuario"] = u
	}
	return structpb.NewStruct(fields)
}

func logEventResponseToProto(r types.LogEventResponse) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"sucesso": r.Success,
		"id":      r.ID,
	})
}

func logEventRequestFromProto(p *structpb.Struct) (types.LogEventRequest, error) {
	f := p.GetFields()

	var (
		req types.LogEventRequest
		err error
	)
	if req.MachineID, err = stringField(f, "machine_id"); err != nil {
		return req, err
	}
	if req.UID, err = stringField(f, "uid"); err != nil {
		return req, err
	}
	if req.Event, err = stringField(f, "evento"); err != nil {
		return req, err
	}
	if req.UserName, err = optionalString(f, "usuario"); err != nil {
		return req, err
	}
	if req.Timestamp, err = optionalInt(f, "timestamp"); err != nil {
		return req, err
	}
	if req.RSSI, err = presenceInt(f, "rssi"); err != nil {
		return req, err
	}
	if req.Duration, err = presenceInt(f, "duracao"); err != nil {
		return req, err
	}
	return req, nil
}

func stringField(f map[string]*structpb.Value, key string) (string, error) {
	s, err := optionalString(f, key)
	if err != nil || s == nil {
		return "", err
	}
	return *s, nil
}

func optionalString(f map[string]*structpb.Value, key string) (*string, error) {
	v, ok := f[key]
	if !ok {
		return nil, nil
	}
	switch k := v.GetKind().(type) {
	case *structpb.Value_NullValue:
		return nil, nil
	case *structpb.Value_StringValue:
		s := k.StringValue
		return &s, nil
	default:
		return nil, fmt.Errorf("%s: expected string", key)
	}
}

func optionalInt(f map[string]*structpb.Value, key string) (*int64, error) {
	v, ok := f[key]
	if !ok {
		return nil, nil
	}
	switch k := v.GetKind().(type) {
	case *structpb.Value_NullValue:
		return nil, nil
	case *structpb.Value_NumberValue:
		n := int64(k.NumberValue)
		return &n, nil
	default:
		return nil, fmt.Errorf("%s: expected number", key)
	}
}

func presenceInt(f map[string]*structpb.Value, key string) (types.OptionalInt, error) {
	if _, ok := f[key]; !ok {
		return types.OptionalInt{}, nil
	}
	n, err := optionalInt(f, key)
	if err != nil || n == nil {
		return types.Null(), err
	}
	return types.Int(*n), nil
}
