package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidTicket = errors.New("invalid ticket")
	ErrExpiredTicket = errors.New("ticket has expired")
)

// TicketClaims identifies the principal behind a websocket connection.
// Tickets are short-lived: browsers cannot attach the session cookie to a
// cross-origin websocket handshake, so the client first trades its session
// for a ticket and presents that on the upgrade request.
type TicketClaims struct {
	UserID  uuid.UUID `json:"userId"`
	IsAdmin bool      `json:"isAdmin"`
	jwt.RegisteredClaims
}

// TicketService issues and validates websocket tickets
type TicketService struct {
	secret []byte
	expiry time.Duration
}

var signTicket = func(token *jwt.Token, secret []byte) (string, error) {
	return token.SignedString(secret)
}

// NewTicketService creates a new ticket service
func NewTicketService(secret string, expiry time.Duration) *TicketService {
	return &TicketService{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// Issue mints a ticket for the given principal
func (s *TicketService) Issue(userID uuid.UUID, isAdmin bool) (string, error) {
	now := time.Now()
	claims := &TicketClaims{
		UserID:  userID,
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return signTicket(token, s.secret)
}

// Validate validates a ticket and returns its claims
func (s *TicketService) Validate(tokenString string) (*TicketClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TicketClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidTicket
		}
		return s.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredTicket
		}
		return nil, ErrInvalidTicket
	}

	claims, ok := token.Claims.(*TicketClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidTicket
	}

	return claims, nil
}
