package client

import "errors"

var (
	ErrClientNotFound      = errors.New("client not found")
	ErrClientCodeExists    = errors.New("client code already exists")
	ErrStakeholderNotFound = errors.New("stakeholder not found")
)
