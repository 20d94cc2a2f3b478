package auth

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tempo de vida do access token
const AccessTTL = 15 * time.Minute

// Emissor faz o papel do provedor de identidade nos testes: gera JWT RS256 com KID, iss, aud, iat, nbf e jti.
type Emissor struct {
	Chave    *rsa.PrivateKey
	KID      string
	Issuer   string
	Audience string
}

func (e Emissor) GerarAccessToken(p Principal) (string, error) {
	if e.Chave == nil {
		return "", errors.New("private key not loaded")
	}

	now := time.Now()
	claims := &Claims{
		UsuarioID: p.UsuarioID,
		Papel:     p.Papel,
		ClienteID: p.ClienteID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    e.Issuer,
			Audience:  []string{e.Audience},
			Subject:   fmt.Sprint(p.UsuarioID),
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now.Add(-1 * time.Minute)),
			ID:        fmt.Sprintf("%d-%d", p.UsuarioID, now.UnixNano()),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	tok.Header["kid"] = e.KID
	return tok.SignedString(e.Chave)
}
