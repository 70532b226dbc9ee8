package models

import "testing"

func TestParseRole(t *testing.T) {
	tests := []struct {
		input   string
		want    Role
		wantErr bool
	}{
		{"player", RolePlayer, false},
		{"admin", RoleAdmin, false},
		{"", "", true},
		{"root", "", true},
		{"Player", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRole(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRole(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseRole(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRoleForUser(t *testing.T) {
	if got := RoleForUser(User{UserName: "admin", IsAdmin: true}); got != RoleAdmin {
		t.Errorf("RoleForUser(admin) = %q", got)
	}
	if got := RoleForUser(User{UserName: "alice"}); got != RolePlayer {
		t.Errorf("RoleForUser(player) = %q", got)
	}
}
