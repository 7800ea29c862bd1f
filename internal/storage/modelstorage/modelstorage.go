// Package modelstorage provides locally used types and their structure for storage objects.
package modelstorage

// LinkMapEntry is the value stored per short code. An empty OwnerID marks an
// ownerless link.
type LinkMapEntry struct {
	URL     string
	OwnerID string
}

// UserStorageEntry is the value stored per user ID. PasswordHash holds opaque
// credential material and must never be exposed above the directory service.
type UserStorageEntry struct {
	ID           string
	Email        string
	PasswordHash string
}
