package main

import (
	"net/http"

	"chengxiang.org/chengxiang-web/internal/account"
	mw "chengxiang.org/chengxiang-web/internal/middleware"
	"chengxiang.org/chengxiang-web/internal/store"
)

// AuthView carries the active auth screen and any referral prefilled from
// the share link.
type AuthView struct {
	Screen       string // login, register, forgot-password
	Mode         string // login: password|otp; register/forgot: phone|email
	ReferralCode string
	Error        string
}

// AuthHandler renders the login, register, or forgot-password screen.
func AuthHandler(w http.ResponseWriter, r *http.Request, c *store.Controller) {
	lang := mw.Lang(r)
	snap := c.Snapshot()
	view := &AuthView{
		Screen:       snap.ActiveTab,
		Mode:         r.URL.Query().Get("mode"),
		ReferralCode: r.URL.Query().Get("ref"),
		Error:        r.URL.Query().Get("err"),
	}
	titleKey := "auth." + snap.ActiveTab + ".title"
	vm := basePage(r, c, i18nOrDefault(lang, titleKey, "会员登录"))
	vm.Auth = view
	renderPage(w, r, vm)
}

func authRedirect(w http.ResponseWriter, r *http.Request, tab string, params map[string]string) {
	_, loc := newController(r)
	loc.Write(tab, "")
	for k, v := range params {
		if v != "" {
			loc.Values.Set(k, v)
		}
	}
	redirectTo(w, r, loc)
}

// LoginSubmitHandler validates the login form. On success the demo member is
// attached to the session and the browser lands on the member area.
func LoginSubmitHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	form := account.LoginForm{
		Mode:     account.LoginMode(r.PostFormValue("mode")),
		Account:  r.PostFormValue("account"),
		Password: r.PostFormValue("password"),
		Contact:  r.PostFormValue("contact"),
		Code:     r.PostFormValue("code"),
	}
	s := mw.GetSession(r)
	if err := form.Validate(); err != nil {
		authRedirect(w, r, store.TabLogin, map[string]string{
			"mode": string(form.Mode), "err": "missing",
		})
		return
	}
	wasAuthed := s.UserID != ""
	s.UserID = "88888888"
	if !wasAuthed {
		// prevent session fixation across the auth boundary
		s.RegenerateID()
	} else {
		s.MarkDirty()
	}
	s.PushNotice("登录成功！")
	authRedirect(w, r, store.TabProfile, nil)
}

// RegisterSubmitHandler validates sign-up, binds the referral when present,
// and sends the visitor to the login screen.
func RegisterSubmitHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	form := account.RegisterForm{
		Method:          account.ContactMethod(r.PostFormValue("method")),
		Account:         r.PostFormValue("account"),
		Phone:           r.PostFormValue("phone"),
		Email:           r.PostFormValue("email"),
		Code:            r.PostFormValue("code"),
		Password:        r.PostFormValue("password"),
		ConfirmPassword: r.PostFormValue("confirm_password"),
		ReferralCode:    r.PostFormValue("referral_code"),
	}
	s := mw.GetSession(r)
	if err := form.Validate(); err != nil {
		code := "missing"
		if err == account.ErrPasswordMismatch {
			code = "mismatch"
		}
		authRedirect(w, r, store.TabRegister, map[string]string{
			"mode": string(form.Method), "ref": form.ReferralCode, "err": code,
		})
		return
	}
	msg := "注册成功！请使用账号、手机号或邮箱登录。"
	if form.ReferralCode != "" {
		msg = "注册成功！已绑定推荐人 " + form.ReferralCode + "。请登录。"
	}
	s.PushNotice(msg)
	authRedirect(w, r, store.TabLogin, nil)
}

// ForgotSubmitHandler validates the password reset form.
func ForgotSubmitHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	form := account.ResetForm{
		Method:      account.ContactMethod(r.PostFormValue("method")),
		Contact:     r.PostFormValue("contact"),
		Code:        r.PostFormValue("code"),
		NewPassword: r.PostFormValue("new_password"),
	}
	s := mw.GetSession(r)
	if err := form.Validate(); err != nil {
		authRedirect(w, r, store.TabForgot, map[string]string{
			"mode": string(form.Method), "err": "missing",
		})
		return
	}
	s.PushNotice("密码重置成功，请重新登录")
	authRedirect(w, r, store.TabLogin, nil)
}

// SendCodeHandler acknowledges a verification code request.
func SendCodeHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	back := r.PostFormValue("back")
	if !store.KnownTab(back) {
		back = store.TabLogin
	}
	s := mw.GetSession(r)
	contact := r.PostFormValue("contact")
	method := account.ContactMethod(r.PostFormValue("method"))
	if contact == "" {
		if method == account.ByEmail {
			contact = r.PostFormValue("email")
		} else {
			contact = r.PostFormValue("phone")
		}
	}
	dest, err := account.SendCode(method, contact)
	if err != nil {
		s.PushNotice("请先填写手机号或邮箱")
	} else {
		s.PushNotice("验证码已发送至: " + dest)
	}
	if mw.IsHTMX(r.Context()) {
		c, _ := newController(r)
		renderTemplate(w, r, "frag_notices", basePage(r, c, ""))
		return
	}
	if err != nil {
		authRedirect(w, r, back, map[string]string{"err": "contact"})
		return
	}
	authRedirect(w, r, back, nil)
}
