package tenant

// Tenant is a registered external domain allowed to request tokens on behalf
// of exactly one bound user.
//
// Invariant: ClientSecret is unique across tenants and never leaves the
// issuance path (it is not embedded in tokens and not used as a cache key).
type Tenant struct {
	ID           int64  `json:"id" db:"id"`
	Host         string `json:"host" db:"host"`
	ClientSecret string `json:"-" db:"client_secret"`

	UserID   int64  `json:"user_id" db:"user_id"`
	UserNick string `json:"user_nick" db:"nick"`
}
