package auth

import "testing"

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple", 4)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("hash must not equal the plaintext password")
	}

	if !CheckPassword(hash, "correct horse battery staple") {
		t.Error("CheckPassword() should accept the original password")
	}
	if CheckPassword(hash, "wrong password") {
		t.Error("CheckPassword() should reject a different password")
	}
	if CheckPassword("not-a-bcrypt-hash", "anything") {
		t.Error("CheckPassword() should reject a malformed hash")
	}
}

func TestPasswordHashesDiffer(t *testing.T) {
	a, err := HashPassword("same password", 4)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	b, err := HashPassword("same password", 4)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if a == b {
		t.Error("two hashes of the same password should differ (random salt)")
	}
}
