package reward

import "fervo/internal/pkg/errs"

const (
	DefaultPerShare  = 10
	DefaultThreshold = 100
)

var ErrInvalidPolicy = errs.New("reward per share and coupon threshold must be positive")

// Policy converts shares into per-venue FervoCoins and coins into coupons.
type Policy struct {
	perShare  int
	threshold int
}

func NewPolicy(perShare, threshold int) (Policy, error) {
	if perShare <= 0 || threshold <= 0 {
		return Policy{}, ErrInvalidPolicy
	}
	return Policy{perShare: perShare, threshold: threshold}, nil
}

func DefaultPolicy() Policy {
	return Policy{perShare: DefaultPerShare, threshold: DefaultThreshold}
}

func (p Policy) PerShare() int  { return p.perShare }
func (p Policy) Threshold() int { return p.threshold }

type Outcome struct {
	Awarded       int
	Balance       int
	CouponsMinted int
}

// Apply awards one share on top of balance. Each full threshold crossed is
// subtracted once and mints one coupon.
func (p Policy) Apply(balance int) Outcome {
	balance += p.perShare
	minted := 0
	for balance >= p.threshold {
		balance -= p.threshold
		minted++
	}
	return Outcome{Awarded: p.perShare, Balance: balance, CouponsMinted: minted}
}
