package entity

// Provider names the mechanism that authenticated a principal.
type Provider string

const (
	ProviderEVM      Provider = "evm"
	ProviderX        Provider = "x"
	ProviderWhatsApp Provider = "whatsapp"
	ProviderAPIKey   Provider = "api_key"
)
