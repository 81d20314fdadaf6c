package handler

import "testing"

func TestValidateRegister(t *testing.T) {
	tests := []struct {
		name      string
		userName  string
		email     string
		password  string
		badFields []string
	}{
		{"valid", "A", "a@x.com", "secret-password", nil},
		{"blank name", "  ", "a@x.com", "secret-password", []string{"name"}},
		{"blank email", "A", "", "secret-password", []string{"email"}},
		{"malformed email", "A", "not-an-email", "secret-password", []string{"email"}},
		{"name-addr email rejected", "A", "A <a@x.com>", "secret-password", []string{"email"}},
		{"blank password", "A", "a@x.com", "", []string{"password"}},
		{"short password", "A", "a@x.com", "short", []string{"password"}},
		{"everything wrong", "", "nope", "x", []string{"name", "email", "password"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fields := validateRegister(tc.userName, tc.email, tc.password, 8)
			if len(fields) != len(tc.badFields) {
				t.Fatalf("expected %d field errors, got %v", len(tc.badFields), fields)
			}
			for _, f := range tc.badFields {
				if fields[f] == "" {
					t.Fatalf("expected error for field %q, got %v", f, fields)
				}
			}
		})
	}
}

func TestValidateLogin(t *testing.T) {
	if fields := validateLogin("a@x.com", "pw"); len(fields) != 0 {
		t.Fatalf("expected no field errors, got %v", fields)
	}

	// Login does not apply the minimum-length policy; a short stored
	// password still has to be comparable.
	if fields := validateLogin("a@x.com", "x"); len(fields) != 0 {
		t.Fatalf("expected short password to be accepted at login, got %v", fields)
	}

	fields := validateLogin("", "")
	if fields["email"] == "" || fields["password"] == "" {
		t.Fatalf("expected email and password errors, got %v", fields)
	}
}
