package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims bind a bearer to the single game session it created.
type Claims struct {
	GameID string `json:"game_id"`
	jwt.RegisteredClaims
}

// Issuer signs and validates session tokens with one HMAC secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// GenerateSessionToken creates a token that authorizes moves in gameID
func (i *Issuer) GenerateSessionToken(gameID string) (string, error) {
	now := time.Now()
	claims := &Claims{
		GameID: gameID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   gameID,
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// ValidateSessionToken validates a token and returns its claims
func (i *Issuer) ValidateSessionToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return i.secret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// Authorize checks that tokenString is valid and was issued for gameID.
func (i *Issuer) Authorize(tokenString, gameID string) error {
	claims, err := i.ValidateSessionToken(tokenString)
	if err != nil {
		return err
	}
	if claims.GameID != gameID {
		return errors.New("token issued for another game")
	}
	return nil
}
