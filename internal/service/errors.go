package service

import "errors"

var (
	ErrBusinessUnitRequired = errors.New("business unit is required")
	ErrLocaleRequired       = errors.New("country and language are required")
	ErrUnsupportedMode      = errors.New("unsupported locale creation mode")
	ErrSourceNotFound       = errors.New("source locale not found")
	ErrWrongBusinessUnit    = errors.New("landing page belongs to another business unit")
)
