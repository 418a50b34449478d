// Package account validates the authentication flows: login by password or
// one-time code, registration with optional referral binding, and password
// reset. The flows are form-level; no credential store sits behind them.
package account

import "errors"

// ContactMethod selects how a verification code is delivered.
type ContactMethod string

const (
	ByPhone ContactMethod = "phone"
	ByEmail ContactMethod = "email"
)

var (
	ErrMissingFields    = errors.New("account: required fields missing")
	ErrMissingContact   = errors.New("account: contact for selected method missing")
	ErrPasswordMismatch = errors.New("account: passwords do not match")
)

// LoginMode selects the login tab.
type LoginMode string

const (
	LoginPassword LoginMode = "password"
	LoginOTP      LoginMode = "otp"
)

// LoginForm carries either account+password or contact+code, depending on
// Mode.
type LoginForm struct {
	Mode     LoginMode
	Account  string
	Password string
	Contact  string
	Code     string
}

// Validate checks the fields the active mode requires.
func (f LoginForm) Validate() error {
	switch f.Mode {
	case LoginOTP:
		if f.Contact == "" || f.Code == "" {
			return ErrMissingFields
		}
	default:
		if f.Account == "" || f.Password == "" {
			return ErrMissingFields
		}
	}
	return nil
}

// RegisterForm is the sign-up submission. ReferralCode is optional and binds
// the new account to its referrer when present.
type RegisterForm struct {
	Method          ContactMethod
	Account         string
	Phone           string
	Email           string
	Code            string
	Password        string
	ConfirmPassword string
	ReferralCode    string
}

// Contact returns the contact value for the selected method.
func (f RegisterForm) Contact() string {
	if f.Method == ByEmail {
		return f.Email
	}
	return f.Phone
}

// Validate checks completeness, the method-specific contact field, and the
// password confirmation. Checks run in form order so the first error matches
// what the form highlights.
func (f RegisterForm) Validate() error {
	if f.Account == "" || f.Password == "" || f.Code == "" {
		return ErrMissingFields
	}
	if f.Contact() == "" {
		return ErrMissingContact
	}
	if f.Password != f.ConfirmPassword {
		return ErrPasswordMismatch
	}
	return nil
}

// ResetForm is the forgot-password submission.
type ResetForm struct {
	Method      ContactMethod
	Contact     string
	Code        string
	NewPassword string
}

// Validate requires all three fields.
func (f ResetForm) Validate() error {
	if f.Contact == "" || f.Code == "" || f.NewPassword == "" {
		return ErrMissingFields
	}
	return nil
}

// SendCode validates a code-delivery request and returns the destination.
func SendCode(method ContactMethod, contact string) (string, error) {
	if contact == "" {
		return "", ErrMissingContact
	}
	return contact, nil
}
