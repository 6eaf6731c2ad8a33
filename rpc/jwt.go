// Copyright 2024 The Erigon Authors
// This file is part of Erigon.
//
// Erigon is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Erigon is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Erigon. If not, see <http://www.gnu.org/licenses/>.

package rpc

import (
	"crypto/rand"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/golang-jwt/jwt/v4"
	"github.com/ledgerwatch/log/v3"
)

const (
	JwtDefaultFile  = "jwt.hex"
	jwtTokenExpiry  = 60 * time.Second
	jwtSecretLength = 32
)

var ErrInvalidJwtSecret = errors.New("invalid JWT secret")

// ObtainJWTSecret loads the hex encoded secret at path, generating and
// storing a new one when the file does not exist.
func ObtainJWTSecret(path string, logger log.Logger) ([]byte, error) {
	// If we run the rpcdaemon and datadir is not specified we just use jwt.hex in current directory.
	if len(path) == 0 {
		path = JwtDefaultFile
	}
	logger.Info("Reading JWT secret", "path", path)
	if data, err := os.ReadFile(path); err == nil {
		jwtSecret := common.FromHex(strings.TrimSpace(string(data)))
		if len(jwtSecret) == jwtSecretLength {
			return jwtSecret, nil
		}
		logger.Error("Invalid JWT secret", "path", path, "length", len(jwtSecret))
		return nil, ErrInvalidJwtSecret
	}
	// Need to generate one
	jwtSecret := make([]byte, jwtSecretLength)
	if _, err := rand.Read(jwtSecret); err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, []byte(hexutil.Encode(jwtSecret)), 0600); err != nil {
		return nil, err
	}
	logger.Info("Generated JWT secret", "path", path)
	return jwtSecret, nil
}

// CheckJwtSecret validates the bearer token of r: HS256 signed with secret
// and issued within 60 seconds of now. On failure it answers 403 and returns false.
func CheckJwtSecret(w http.ResponseWriter, r *http.Request, secret []byte) bool {
	if err := checkJwtToken(r, secret, time.Now()); err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return false
	}
	return true
}

func checkJwtToken(r *http.Request, secret []byte, now time.Time) error {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing token")
	}
	tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok {
		return errors.New("missing token")
	}

	// iat is checked below with tolerance in both directions
	parser := jwt.Parser{ValidMethods: []string{jwt.SigningMethodHS256.Alg()}, SkipClaimsValidation: true}
	claims := jwt.RegisteredClaims{}
	token, err := parser.ParseWithClaims(tokenStr, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return err
	}
	if !token.Valid {
		return errors.New("invalid token")
	}
	if claims.IssuedAt == nil {
		return errors.New("missing issued-at")
	}
	if d := now.Sub(claims.IssuedAt.Time); d > jwtTokenExpiry || d < -jwtTokenExpiry {
		return errors.New("stale token")
	}
	if claims.ExpiresAt != nil && now.After(claims.ExpiresAt.Time) {
		return errors.New("token is expired")
	}
	return nil
}
