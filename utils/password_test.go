package utils

import "testing"

func TestHashPasswordDeterministic(t *testing.T) {
	secret := []byte("test-secret")

	first := HashPassword("hunter2", secret)
	second := HashPassword("hunter2", secret)
	if first != second {
		t.Errorf("HashPassword() not deterministic: %q vs %q", first, second)
	}
}

func TestHashPasswordShape(t *testing.T) {
	hash := HashPassword("hunter2", []byte("test-secret"))

	// HMAC-SHA256 hex digest is 64 chars
	if len(hash) != 64 {
		t.Errorf("HashPassword() length = %d, want 64", len(hash))
	}
	for _, c := range hash {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
			t.Errorf("HashPassword() contains non-hex char: %c", c)
		}
	}
}

func TestHashPasswordTrimsInput(t *testing.T) {
	secret := []byte("test-secret")
	if HashPassword("  hunter2  ", secret) != HashPassword("hunter2", secret) {
		t.Error("HashPassword() should trim surrounding whitespace")
	}
}

func TestHashPasswordSensitivity(t *testing.T) {
	secret := []byte("test-secret")

	if HashPassword("hunter2", secret) == HashPassword("hunter3", secret) {
		t.Error("HashPassword() collided for different passwords")
	}
	if HashPassword("hunter2", secret) == HashPassword("hunter2", []byte("other-secret")) {
		t.Error("HashPassword() should depend on the secret")
	}
}
