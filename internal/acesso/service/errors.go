package service

import "errors"

var (
	ErrUIDAndNameRequired  = errors.New("uid and nome are required")
	ErrUIDConflict         = errors.New("uid already registered")
	ErrEventFieldsRequired = errors.New("machine_id, uid and evento are required")
)
