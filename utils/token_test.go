package utils

import (
	"testing"
	"time"
)

func TestJwtRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := JwtGenerate(secret, 42, "owner@example.com", "main", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	claims, err := JwtValidate(secret, token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.ID != 42 {
		t.Fatalf("ID = %d", claims.ID)
	}
	if claims.Email != "owner@example.com" {
		t.Fatalf("Email = %q", claims.Email)
	}
	if claims.UserType != "main" {
		t.Fatalf("UserType = %q", claims.UserType)
	}
}

func TestJwtRejectsWrongSecret(t *testing.T) {
	token, err := JwtGenerate([]byte("secret-a"), 1, "a@example.com", "main", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := JwtValidate([]byte("secret-b"), token); err == nil {
		t.Fatal("token signed with another secret must not validate")
	}
}

func TestJwtRejectsExpired(t *testing.T) {
	token, err := JwtGenerate([]byte("secret"), 1, "a@example.com", "main", -time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := JwtValidate([]byte("secret"), token); err == nil {
		t.Fatal("expired token must not validate")
	}
}

func TestJwtRejectsGarbage(t *testing.T) {
	if _, err := JwtValidate([]byte("secret"), "not.a.token"); err == nil {
		t.Fatal("garbage must not validate")
	}
}
