// Package modellink provides locally used types and their structure for link handling between modules.
package modellink

// FullLink holds one short code together with its target and owner.
type FullLink struct {
	SURL    string
	URL     string
	OwnerID string
}
