package handler

import (
	"fmt"
	"net/mail"
	"strings"
)

// validateRegister checks the shape of a registration request and returns a
// field-to-reason map. An empty map means the request is valid. No service
// or store call happens until this passes.
func validateRegister(name, email, password string, minPasswordLen int) map[string]string {
	fields := make(map[string]string)

	if strings.TrimSpace(name) == "" {
		fields["name"] = "name is required"
	}
	validateEmail(fields, email)
	if password == "" {
		fields["password"] = "password is required"
	} else if len(password) < minPasswordLen {
		fields["password"] = fmt.Sprintf("password must be at least %d characters", minPasswordLen)
	}

	return fields
}

// validateLogin checks the shape of a login request. Password policy is not
// applied here; an existing password only has to match its hash.
func validateLogin(email, password string) map[string]string {
	fields := make(map[string]string)

	validateEmail(fields, email)
	if password == "" {
		fields["password"] = "password is required"
	}

	return fields
}

func validateEmail(fields map[string]string, email string) {
	if strings.TrimSpace(email) == "" {
		fields["email"] = "email is required"
		return
	}
	// ParseAddress accepts the name-addr form ("Name <a@b>"); require the
	// bare address so the stored login key is exactly what was submitted.
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		fields["email"] = "email is not a valid address"
	}
}
