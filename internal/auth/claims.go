package auth

import "github.com/golang-jwt/jwt/v5"

// Claims are the only supported JWT claims shape for this service.
// UserID is what resource accessors scope their lookups by.
type Claims struct {
	jwt.RegisteredClaims

	UserID   int64  `json:"id"`
	UserNick string `json:"nick"`
}
