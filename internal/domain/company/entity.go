package company

type Company struct {
	Handle       string
	Name         string
	Description  string
	NumEmployees *int
	LogoURL      *string
}
