package jwt

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"
	"time"

	jwtgo "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKey *rsa.PrivateKey

func setupKeys(t *testing.T) {
	t.Helper()

	if testKey == nil {
		key, err := rsa.GenerateKey(rand.Reader, 2048)
		require.NoError(t, err)
		testKey = key
	}

	SetKeys(&testKey.PublicKey, testKey)
}

func signClaims(t *testing.T, claims jwtgo.RegisteredClaims) string {
	t.Helper()

	signed, err := jwtgo.NewWithClaims(jwtgo.SigningMethodRS256, claims).SignedString(privateKey)
	require.NoError(t, err)
	return signed
}

func TestSignAndValidateAccountID(t *testing.T) {
	setupKeys(t)

	sign, err := Sign(18)
	assert.NoError(t, err)

	id, err := ValidAccountID(sign)
	assert.NoError(t, err)
	assert.Equal(t, int64(18), id)
}

func TestValidAccountID_InvalidAudience(t *testing.T) {
	setupKeys(t)

	signedToken := signClaims(t, jwtgo.RegisteredClaims{
		Audience: jwtgo.ClaimStrings{"different-audience"},
		ID:       uuid.New().String(),
		IssuedAt: jwtgo.NewNumericDate(time.Now()),
		Issuer:   Issuer,
		Subject:  "15",
	})

	id, err := ValidAccountID(signedToken)
	assert.EqualError(t, err, "invalid audience")
	assert.Equal(t, int64(0), id)
}

func TestValidAccountID_InvalidIssuer(t *testing.T) {
	setupKeys(t)

	signedToken := signClaims(t, jwtgo.RegisteredClaims{
		Audience: jwtgo.ClaimStrings{Audience},
		ID:       uuid.New().String(),
		IssuedAt: jwtgo.NewNumericDate(time.Now()),
		Issuer:   "invalid-issuer",
		Subject:  "15",
	})

	id, err := ValidAccountID(signedToken)
	assert.EqualError(t, err, "invalid issuer")
	assert.Equal(t, int64(0), id)
}

func TestValidAccountID_Expired(t *testing.T) {
	setupKeys(t)

	signedToken := signClaims(t, jwtgo.RegisteredClaims{
		Audience:  jwtgo.ClaimStrings{Audience},
		ID:        uuid.New().String(),
		IssuedAt:  jwtgo.NewNumericDate(time.Now()),
		Issuer:    Issuer,
		ExpiresAt: jwtgo.NewNumericDate(time.Now().Add(-time.Hour)),
		Subject:   "15",
	})

	id, err := ValidAccountID(signedToken)
	assert.ErrorIs(t, err, jwtgo.ErrTokenExpired)
	assert.Equal(t, int64(0), id)
}

func TestLoadKeysFromFiles(t *testing.T) {
	setupKeys(t)
	a := assert.New(t)
	dir := t.TempDir()

	privatePath := filepath.Join(dir, "private.key")
	privatePEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(testKey)})
	a.NoError(os.WriteFile(privatePath, privatePEM, 0600))

	publicPath := filepath.Join(dir, "public.pem")
	publicDER, err := x509.MarshalPKIXPublicKey(&testKey.PublicKey)
	a.NoError(err)
	a.NoError(os.WriteFile(publicPath, pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: publicDER}), 0600))

	a.True(testKey.Equal(loadPrivateKey(privatePath)))
	a.True(testKey.PublicKey.Equal(loadPublicKey(publicPath)))
}
