package types

import "github.com/golang-jwt/jwt/v5"

// Claims carried by an admin token.
type Claims struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	jwt.RegisteredClaims
}
