package usecasecontract

// IValidator defines the input validation the usecases rely on.
type IValidator interface {
	ValidateEmail(email string) error
	ValidateUsername(username string) error
	ValidateWalletAddress(address string) error
}
