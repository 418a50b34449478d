package member

import (
	"errors"
	"testing"
)

func verifiedMember() *Member {
	m := Demo()
	m.IdentityVerified = true
	m.Payout = PayoutAccount{BankName: "招商银行", AccountNumber: "6225****8888", BeneficiaryName: "张先生"}
	return m
}

func TestRequestWithdrawalValidation(t *testing.T) {
	tests := []struct {
		name    string
		setup   func() *Member
		amount  int64
		wantErr error
	}{
		{"unverified identity", func() *Member { return Demo() }, 500, ErrIdentityUnverified},
		{"no payout account", func() *Member {
			m := Demo()
			m.IdentityVerified = true
			return m
		}, 500, ErrNoPayoutAccount},
		{"zero amount", verifiedMember, 0, ErrInvalidAmount},
		{"negative amount", verifiedMember, -100, ErrInvalidAmount},
		{"below minimum", verifiedMember, 99, ErrBelowMinimum},
		{"at minimum", verifiedMember, 100, nil},
		{"over balance", verifiedMember, 8889, ErrInsufficientBalance},
		{"full balance", verifiedMember, 8888, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.setup()
			_, err := m.RequestWithdrawal(tt.amount, "2024-03-15 10:00")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("RequestWithdrawal(%d) error = %v, want %v", tt.amount, err, tt.wantErr)
			}
		})
	}
}

func TestRequestWithdrawalCap(t *testing.T) {
	m := verifiedMember()
	m.Balance = 100000
	if _, err := m.RequestWithdrawal(50001, "2024-03-15 10:00"); !errors.Is(err, ErrAboveMaximum) {
		t.Fatalf("error = %v, want %v", err, ErrAboveMaximum)
	}
	if _, err := m.RequestWithdrawal(50000, "2024-03-15 10:00"); err != nil {
		t.Fatalf("cap-sized withdrawal failed: %v", err)
	}
}

func TestRequestWithdrawalDebitsBalance(t *testing.T) {
	m := verifiedMember()
	w, err := m.RequestWithdrawal(1000, "2024-03-15 10:00")
	if err != nil {
		t.Fatal(err)
	}
	if m.Balance != 7888 {
		t.Fatalf("Balance = %d after withdrawal, want 7888", m.Balance)
	}
	if w.Status != WithdrawalProcessing {
		t.Fatalf("Status = %q, want processing", w.Status)
	}
	if w.ID == "" {
		t.Fatal("withdrawal id is empty")
	}
}

func TestCouponCounts(t *testing.T) {
	counts := CouponCounts()
	if counts[CouponAvailable] != 2 || counts[CouponUsed] != 1 || counts[CouponExpired] != 1 {
		t.Fatalf("counts = %v", counts)
	}
	if n := len(CouponsByStatus(CouponAvailable)); n != 2 {
		t.Fatalf("available coupons = %d, want 2", n)
	}
}

func TestApplyForAgent(t *testing.T) {
	m := Demo()
	app := AgentApplication{Name: "张先生", Phone: "13800000000", Region: "北京"}
	if err := m.ApplyForAgent(app); !errors.Is(err, ErrAgentNeedsIdentity) {
		t.Fatalf("error = %v, want %v", err, ErrAgentNeedsIdentity)
	}
	m.IdentityVerified = true
	if err := m.ApplyForAgent(app); err != nil {
		t.Fatalf("verified application rejected: %v", err)
	}
	if err := m.ApplyForAgent(AgentApplication{}); err == nil {
		t.Fatal("empty application accepted")
	}
}

func TestOrderByID(t *testing.T) {
	o, ok := OrderByID("202403150001")
	if !ok {
		t.Fatal("known order not found")
	}
	if o.Status != StatusPendingReceive || o.Total != 18800 {
		t.Fatalf("order = %+v", o)
	}
	if _, ok := OrderByID("000"); ok {
		t.Fatal("unknown order found")
	}
}

func TestAfterSalesSteps(t *testing.T) {
	steps := AfterSalesSteps(false)
	if len(steps) != 6 {
		t.Fatalf("len(steps) = %d, want 6", len(steps))
	}
	if steps[2].State != StepCurrent {
		t.Fatalf("buyer-return step state = %q before logistics filed", steps[2].State)
	}
	if AfterSalesSteps(true)[2].State != StepDone {
		t.Fatal("buyer-return step not completed after logistics filed")
	}
}
