package forms

import "strings"

// LoginForm is submitted by the login page
type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
	Redirect string `form:"redirect"`
}

func (f *LoginForm) Validate() FieldErrors {
	f.Email = strings.ToLower(strings.TrimSpace(f.Email))
	return check(f)
}

// SafeRedirect returns the local path to continue to after login, "/" otherwise
func (f LoginForm) SafeRedirect() string {
	return SafeRedirect(f.Redirect)
}

// SafeRedirect only accepts absolute local paths so the login form cannot be used as an open redirect
func SafeRedirect(target string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return "/"
	}
	return target
}
