package auth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// fakeJWKS serves a mutable key set the way the identity provider would.
type fakeJWKS struct {
	mu   sync.Mutex
	keys map[string]*rsa.PrivateKey
	srv  *httptest.Server
}

func newFakeJWKS(t *testing.T) *fakeJWKS {
	t.Helper()
	f := &fakeJWKS{keys: make(map[string]*rsa.PrivateKey)}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		doc := jwksDocument{}
		for kid, key := range f.keys {
			pub := key.Public().(*rsa.PublicKey)
			doc.Keys = append(doc.Keys, jwk{
				Kid: kid,
				Kty: "RSA",
				N:   base64.RawURLEncoding.EncodeToString(pub.N.Bytes()),
				E:   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(pub.E)).Bytes()),
			})
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(doc)
	}))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeJWKS) addKey(t *testing.T, kid string) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}
	f.mu.Lock()
	f.keys[kid] = key
	f.mu.Unlock()
	return key
}

func (f *fakeJWKS) removeKey(kid string) {
	f.mu.Lock()
	delete(f.keys, kid)
	f.mu.Unlock()
}

const testIssuer = "https://cognito-idp.us-east-1.amazonaws.com/us-east-1_test"

func signToken(t *testing.T, key *rsa.PrivateKey, kid string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = kid
	signed, err := token.SignedString(key)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"sub":   "user-123",
		"email": "alice@example.com",
		"iss":   testIssuer,
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
}

func TestVerifierAcceptsValidToken(t *testing.T) {
	jwks := newFakeJWKS(t)
	key := jwks.addKey(t, "kid-1")
	v := NewVerifierWithURL(jwks.srv.URL, testIssuer)

	claims, err := v.Verify(context.Background(), signToken(t, key, "kid-1", validClaims()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Subject != "user-123" {
		t.Fatalf("expected subject user-123, got %q", claims.Subject)
	}
	if claims.Email != "alice@example.com" {
		t.Fatalf("expected email alice@example.com, got %q", claims.Email)
	}
}

func TestVerifierRejectsUnknownKeyID(t *testing.T) {
	jwks := newFakeJWKS(t)
	jwks.addKey(t, "kid-1")
	// signed with a key the provider never published
	rogue, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatal(err)
	}
	v := NewVerifierWithURL(jwks.srv.URL, testIssuer)

	_, err = v.Verify(context.Background(), signToken(t, rogue, "kid-rogue", validClaims()))
	if !errors.Is(err, ErrInvalidTokenKey) {
		t.Fatalf("expected ErrInvalidTokenKey, got %v", err)
	}
}

func TestVerifierRejectsWrongAlgorithm(t *testing.T) {
	jwks := newFakeJWKS(t)
	jwks.addKey(t, "kid-1")
	v := NewVerifierWithURL(jwks.srv.URL, testIssuer)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, validClaims())
	token.Header["kid"] = "kid-1"
	signed, err := token.SignedString([]byte("shared-secret"))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := v.Verify(context.Background(), signed); err == nil {
		t.Fatalf("expected HS256 token to be rejected")
	}
}

func TestVerifierRejectsExpiredToken(t *testing.T) {
	jwks := newFakeJWKS(t)
	key := jwks.addKey(t, "kid-1")
	v := NewVerifierWithURL(jwks.srv.URL, testIssuer)

	claims := validClaims()
	claims["exp"] = time.Now().Add(-time.Hour).Unix()

	if _, err := v.Verify(context.Background(), signToken(t, key, "kid-1", claims)); err == nil {
		t.Fatalf("expected expired token to be rejected")
	}
}

func TestVerifierRejectsForeignIssuer(t *testing.T) {
	jwks := newFakeJWKS(t)
	key := jwks.addKey(t, "kid-1")
	v := NewVerifierWithURL(jwks.srv.URL, testIssuer)

	claims := validClaims()
	claims["iss"] = "https://cognito-idp.us-east-1.amazonaws.com/us-east-1_other"

	if _, err := v.Verify(context.Background(), signToken(t, key, "kid-1", claims)); err == nil {
		t.Fatalf("expected token from another issuer to be rejected")
	}
}

func TestVerifierRejectsMissingSubject(t *testing.T) {
	jwks := newFakeJWKS(t)
	key := jwks.addKey(t, "kid-1")
	v := NewVerifierWithURL(jwks.srv.URL, testIssuer)

	claims := validClaims()
	delete(claims, "sub")

	_, err := v.Verify(context.Background(), signToken(t, key, "kid-1", claims))
	if !errors.Is(err, ErrMissingSubject) {
		t.Fatalf("expected ErrMissingSubject, got %v", err)
	}
}

func TestVerifierRefetchesOnKeyRotation(t *testing.T) {
	jwks := newFakeJWKS(t)
	oldKey := jwks.addKey(t, "kid-old")
	v := NewVerifierWithURL(jwks.srv.URL, testIssuer)

	// prime the cache with the old key set
	if _, err := v.Verify(context.Background(), signToken(t, oldKey, "kid-old", validClaims())); err != nil {
		t.Fatalf("unexpected error before rotation: %v", err)
	}

	// provider rotates its signing key
	jwks.removeKey("kid-old")
	newKey := jwks.addKey(t, "kid-new")

	claims, err := v.Verify(context.Background(), signToken(t, newKey, "kid-new", validClaims()))
	if err != nil {
		t.Fatalf("expected cache refetch after rotation, got %v", err)
	}
	if claims.Subject != "user-123" {
		t.Fatalf("expected subject user-123, got %q", claims.Subject)
	}
}
