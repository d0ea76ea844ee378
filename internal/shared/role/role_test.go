package role

import "testing"

func TestRole_Valid(t *testing.T) {
	tests := []struct {
		name string
		role Role
		want bool
	}{
		{name: "user is valid", role: User, want: true},
		{name: "admin is valid", role: Admin, want: true},
		{name: "empty role is invalid", role: Role(""), want: false},
		{name: "unknown role is invalid", role: Role("superadmin"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.role.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name     string
		actor    Role
		required Role
		want     bool
	}{
		{name: "user may perform user-level operations", actor: User, required: User, want: true},
		{name: "admin may perform user-level operations", actor: Admin, required: User, want: true},
		{name: "admin may perform admin operations", actor: Admin, required: Admin, want: true},
		{name: "user may not perform admin operations", actor: User, required: Admin, want: false},
		{name: "empty actor fails closed", actor: Role(""), required: User, want: false},
		{name: "unknown actor fails closed", actor: Role("root"), required: Admin, want: false},
		{name: "unknown required role fails closed", actor: Admin, required: Role("owner"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Authorize(tt.actor, tt.required); got != tt.want {
				t.Errorf("Authorize(%q, %q) = %v, want %v", tt.actor, tt.required, got, tt.want)
			}
		})
	}
}
