package company

import "errors"

var (
	ErrCompanyNotFound     = errors.New("company not found")
	ErrCompanyHandleExists = errors.New("company handle already exists")
)
