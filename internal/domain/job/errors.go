package job

import "errors"

var (
	ErrJobNotFound     = errors.New("job not found")
	ErrInvalidJobID    = errors.New("job id must be a number")
	ErrCompanyNotFound = errors.New("company for job not found")
)
