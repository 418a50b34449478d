package account

import (
	"errors"
	"testing"
)

func TestLoginFormValidate(t *testing.T) {
	tests := []struct {
		name    string
		form    LoginForm
		wantErr error
	}{
		{"password ok", LoginForm{Mode: LoginPassword, Account: "zhang", Password: "secret"}, nil},
		{"password missing", LoginForm{Mode: LoginPassword, Account: "zhang"}, ErrMissingFields},
		{"otp ok", LoginForm{Mode: LoginOTP, Contact: "13800000000", Code: "123456"}, nil},
		{"otp missing code", LoginForm{Mode: LoginOTP, Contact: "13800000000"}, ErrMissingFields},
		{"empty mode defaults to password", LoginForm{Account: "zhang", Password: "secret"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.form.Validate(); !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegisterFormValidate(t *testing.T) {
	base := RegisterForm{
		Method: ByPhone, Account: "zhang", Phone: "13800000000",
		Code: "123456", Password: "secret", ConfirmPassword: "secret",
	}

	if err := base.Validate(); err != nil {
		t.Fatalf("complete form rejected: %v", err)
	}

	f := base
	f.Code = ""
	if err := f.Validate(); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("missing code: %v", err)
	}

	f = base
	f.Phone = ""
	if err := f.Validate(); !errors.Is(err, ErrMissingContact) {
		t.Fatalf("missing phone for phone method: %v", err)
	}

	f = base
	f.Method = ByEmail
	f.Phone = ""
	f.Email = "zhang@example.com"
	if err := f.Validate(); err != nil {
		t.Fatalf("email method with email rejected: %v", err)
	}

	f = base
	f.ConfirmPassword = "different"
	if err := f.Validate(); !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("mismatched passwords: %v", err)
	}
}

func TestResetFormValidate(t *testing.T) {
	ok := ResetForm{Method: ByEmail, Contact: "zhang@example.com", Code: "123456", NewPassword: "secret"}
	if err := ok.Validate(); err != nil {
		t.Fatalf("complete form rejected: %v", err)
	}
	if err := (ResetForm{Contact: "x", Code: "1"}).Validate(); !errors.Is(err, ErrMissingFields) {
		t.Fatal("missing new password accepted")
	}
}

func TestSendCode(t *testing.T) {
	if _, err := SendCode(ByPhone, ""); !errors.Is(err, ErrMissingContact) {
		t.Fatal("empty contact accepted")
	}
	dest, err := SendCode(ByEmail, "zhang@example.com")
	if err != nil || dest != "zhang@example.com" {
		t.Fatalf("SendCode = (%q, %v)", dest, err)
	}
}
