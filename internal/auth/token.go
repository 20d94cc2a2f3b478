package auth

import (
	"crypto/rsa"
	"errors"
	"slices"

	"github.com/golang-jwt/jwt/v5"
)

// Claims do access token emitido pelo provedor de identidade.
type Claims struct {
	UsuarioID uint  `json:"userId"`
	Papel     Papel `json:"role"`
	ClienteID uint  `json:"clientId,omitempty"`
	jwt.RegisteredClaims
}

func (c *Claims) Principal() Principal {
	return Principal{UsuarioID: c.UsuarioID, Papel: c.Papel, ClienteID: c.ClienteID}
}

// Verificador valida assinatura (por kid), iss, aud e exp.
type Verificador struct {
	Chaves   map[string]*rsa.PublicKey // kid -> pub
	Issuer   string
	Audience string
}

func (v Verificador) Validar(tokenStr string) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithIssuer(v.Issuer),
		jwt.WithAudience(v.Audience),
		jwt.WithExpirationRequired(),
	)
	tok, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		k, _ := t.Header["kid"].(string)
		if k == "" {
			return nil, errors.New("kid ausente")
		}
		pub, ok := v.Chaves[k]
		if !ok {
			return nil, errors.New("kid desconhecido")
		}
		return pub, nil
	})
	if err != nil {
		return nil, err
	}
	if !tok.Valid {
		return nil, errors.New("token inválido")
	}

	c, ok := tok.Claims.(*Claims)
	if !ok {
		return nil, errors.New("claims inválidas")
	}
	if !slices.Contains([]Papel{PapelCliente, PapelAdmin}, c.Papel) {
		return nil, errors.New("papel inválido")
	}
	if c.Papel == PapelCliente && c.ClienteID == 0 {
		return nil, errors.New("cliente ausente")
	}
	return c, nil
}
