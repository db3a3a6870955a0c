package domain

type Provider string

const (
	ProviderGoogle Provider = "google"
	ProviderLocal  Provider = "local"
)

type AuthPayload struct {
	UserID     string   `json:"sub"`
	Username   string   `json:"username"`
	Permission []string `json:"permission"`
}

type LoginResponse struct {
	Token string `json:"token"`
}
