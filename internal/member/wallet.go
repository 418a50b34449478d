package member

import (
	"errors"

	"github.com/google/uuid"
)

// Withdrawal limits, in whole yuan.
const (
	WithdrawalMin int64 = 100
	WithdrawalMax int64 = 50000
)

var (
	ErrIdentityUnverified  = errors.New("member: identity not verified")
	ErrNoPayoutAccount     = errors.New("member: no payout account bound")
	ErrInvalidAmount       = errors.New("member: withdrawal amount must be positive")
	ErrBelowMinimum        = errors.New("member: withdrawal below minimum")
	ErrAboveMaximum        = errors.New("member: withdrawal above single-transaction cap")
	ErrInsufficientBalance = errors.New("member: insufficient balance")
)

// WithdrawalStatus is the payout processing stage.
type WithdrawalStatus string

const (
	WithdrawalProcessing WithdrawalStatus = "processing"
	WithdrawalCompleted  WithdrawalStatus = "completed"
	WithdrawalFailed     WithdrawalStatus = "failed"
)

// Withdrawal is one payout record.
type Withdrawal struct {
	ID     string
	Date   string
	Amount int64
	Status WithdrawalStatus
	Method string
}

// WithdrawalHistory returns past payout requests, newest first.
func WithdrawalHistory() []Withdrawal {
	return []Withdrawal{
		{ID: "1", Date: "2024-03-10 14:30", Amount: 5000, Status: WithdrawalProcessing, Method: "AliPay"},
		{ID: "2", Date: "2024-02-15 09:20", Amount: 2800, Status: WithdrawalCompleted, Method: "Bank Card"},
	}
}

// RequestWithdrawal validates a payout request against the member's
// verification state, bound account, balance, and the per-transaction limits.
// On success the amount is debited and a processing record returned. Checks
// run in the order the form surfaces them: identity, account, then amount.
func (m *Member) RequestWithdrawal(amount int64, date string) (Withdrawal, error) {
	if !m.IdentityVerified {
		return Withdrawal{}, ErrIdentityUnverified
	}
	if !m.Payout.Bound() {
		return Withdrawal{}, ErrNoPayoutAccount
	}
	if amount <= 0 {
		return Withdrawal{}, ErrInvalidAmount
	}
	if amount < WithdrawalMin {
		return Withdrawal{}, ErrBelowMinimum
	}
	if amount > m.Balance {
		return Withdrawal{}, ErrInsufficientBalance
	}
	if amount > WithdrawalMax {
		return Withdrawal{}, ErrAboveMaximum
	}
	m.Balance -= amount
	return Withdrawal{
		ID:     uuid.NewString(),
		Date:   date,
		Amount: amount,
		Status: WithdrawalProcessing,
		Method: m.Payout.BankName,
	}, nil
}
