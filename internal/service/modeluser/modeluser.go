// Package modeluser provides locally used types and their structure for user handling between modules.
package modeluser

// User identifies an account towards the service layer. It carries no
// credential material; password hashes never leave the storage layer.
type User struct {
	ID    string
	Email string
}
