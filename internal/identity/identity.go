// Package identity decodifica o token de acesso em um registro
// tipado para uso de interface (nome, papel). A autorização real
// é sempre do servidor; nada aqui vale como checagem de permissão.
package identity

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("identity: invalid token")

type Identity struct {
	UserID uint
	Name   string
	Role   string
}

// FromToken valida a assinatura HMAC e extrai a identidade.
func FromToken(tokenString, secret string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}

	name, _ := claims["name"].(string)
	role, _ := claims["role"].(string)

	return &Identity{
		UserID: uint(sub),
		Name:   name,
		Role:   role,
	}, nil
}

// FromTokenUnverified extrai nome e papel sem validar assinatura,
// para exibição quando o cliente não conhece o segredo. Nunca usar
// para decidir acesso.
func FromTokenUnverified(tokenString string) (*Identity, error) {
	parser := jwt.NewParser()

	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, ErrInvalidToken
	}

	sub, _ := claims["sub"].(float64)
	name, _ := claims["name"].(string)
	role, _ := claims["role"].(string)

	return &Identity{
		UserID: uint(sub),
		Name:   name,
		Role:   role,
	}, nil
}
