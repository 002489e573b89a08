package user

type User struct {
	Username     string
	FirstName    string
	LastName     string
	Email        string
	IsAdmin      bool
	PasswordHash string
}
