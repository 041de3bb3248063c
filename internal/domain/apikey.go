package domain

// APIKeyInfo is the non-secret metadata of a stored Steam partner API key.
// The key material itself lives only in the encrypted keystore.
type APIKeyInfo struct {
	ID          string  `json:"id"`
	DisplayName *string `json:"displayName,omitempty"`
	KeyHint     string  `json:"keyHint"` // last four characters, for display
	CreatedAt   int64   `json:"createdAt"`
}
