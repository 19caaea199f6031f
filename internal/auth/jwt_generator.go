package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/franciscosanchezn/pizzeria-catalog/internal/models"
	"github.com/go-oauth2/oauth2/v4"
	"github.com/golang-jwt/jwt/v5"
)

// UserLookup resolves the owner of a client when a token is issued
type UserLookup interface {
	GetUserByID(id uint) (*models.User, error)
}

// AccessTokenGenerator signs access tokens readable by ParseToken. The uid claim
// is the user owning the client and role is that user's role at issue time.
type AccessTokenGenerator struct {
	key    []byte
	method jwt.SigningMethod
	users  UserLookup
}

func NewAccessTokenGenerator(key []byte, method jwt.SigningMethod, users UserLookup) *AccessTokenGenerator {
	return &AccessTokenGenerator{key: key, method: method, users: users}
}

// Token implements oauth2.AccessGenerate. Client credentials never produce
// refresh tokens, so isGenRefresh is ignored.
func (g *AccessTokenGenerator) Token(ctx context.Context, data *oauth2.GenerateBasic, isGenRefresh bool) (string, string, error) {
	owner, err := g.owner(data)
	if err != nil {
		return "", "", err
	}

	issuedAt := data.TokenInfo.GetAccessCreateAt()
	claims := jwt.MapClaims{
		"aud":  data.Client.GetID(),
		"uid":  strconv.FormatUint(uint64(owner.ID), 10),
		"role": owner.Role,
		"iat":  issuedAt.Unix(),
		"exp":  issuedAt.Add(data.TokenInfo.GetAccessExpiresIn()).Unix(),
	}
	if scope := data.TokenInfo.GetScope(); scope != "" {
		claims["scope"] = scope
	}

	access, err := jwt.NewWithClaims(g.method, claims).SignedString(g.key)
	if err != nil {
		return "", "", fmt.Errorf("sign access token: %w", err)
	}
	return access, "", nil
}

func (g *AccessTokenGenerator) owner(data *oauth2.GenerateBasic) (*models.User, error) {
	uid := data.UserID
	if uid == "" {
		uid = data.Client.GetUserID()
	}
	if uid == "" {
		return nil, errors.New("client has no owning user")
	}

	id, err := strconv.ParseUint(uid, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid owner id %q: %w", uid, err)
	}
	user, err := g.users.GetUserByID(uint(id))
	if err != nil {
		return nil, fmt.Errorf("load client owner %d: %w", id, err)
	}
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	return user, nil
}
