// Package member holds the demo member account: profile, orders, coupon
// wallet, balance and withdrawals, and the partner program. There is no
// persistence layer behind it; the storefront runs against a single
// fully-populated account.
package member

// PayoutAccount is the bound withdrawal destination.
type PayoutAccount struct {
	BankName        string
	AccountNumber   string
	BeneficiaryName string
}

// Bound reports whether an account has been filled in.
func (a PayoutAccount) Bound() bool {
	return a.BankName != "" && a.AccountNumber != "" && a.BeneficiaryName != ""
}

// Address is a saved shipping address.
type Address struct {
	ID      string
	Name    string
	Phone   string
	Region  string
	Detail  string
	Default bool
}

// Member is the account the storefront renders. Balance is in whole yuan.
type Member struct {
	ID               string
	Name             string
	Avatar           string
	Level            string
	Points           int
	Balance          int64
	ReferralCode     string
	RegisteredAt     string
	IdentityVerified bool
	Payout           PayoutAccount
	Addresses        []Address
}

// Demo returns the stock account. Callers get a fresh copy each time so
// per-request mutation (a submitted withdrawal) cannot leak across sessions.
func Demo() *Member {
	return &Member{
		ID:           "88888888",
		Name:         "张先生",
		Avatar:       "https://i.pravatar.cc/150?u=a042581f4e29026704d",
		Level:        "黄金会员",
		Points:       12500,
		Balance:      8888,
		ReferralCode: "CX8888",
		RegisteredAt: "2023-11-11",
		Addresses: []Address{
			{ID: "1", Name: "张先生", Phone: "138****8888", Region: "北京市 朝阳区", Detail: "建国路88号华贸中心", Default: true},
			{ID: "2", Name: "张先生", Phone: "139****9999", Region: "上海市 静安区", Detail: "南京西路1266号恒隆广场"},
		},
	}
}

// ReferralLink builds the shareable registration URL for this member.
func (m *Member) ReferralLink(origin string) string {
	return origin + "/?tab=register&ref=" + m.ReferralCode
}
