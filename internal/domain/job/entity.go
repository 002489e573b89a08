package job

// Equity is carried as a string end to end so the NUMERIC column's exact
// precision survives the trip (0.098 stays "0.098").
type Job struct {
	ID            int64
	Title         string
	Salary        *int
	Equity        *string
	CompanyHandle string
}
