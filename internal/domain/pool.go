package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ShareScale is the decimal scale used when dividing a pool sum equally
// among its members. The same scale is applied to every member.
const ShareScale = 6

// Pool is a historical record of one pooling event: the combined balance of
// its members at creation time and the equal share each member received.
// Pools are write-once; creating a pool does not mutate any ledger balance.
type Pool struct {
	ID        string
	Name      string
	Period    int
	SumBefore decimal.Decimal
	Members   []PoolMember
	CreatedAt time.Time
}

// PoolMember records one vessel's balance going into a pool and the equal
// share it was allocated.
type PoolMember struct {
	PoolID        string
	VesselID      string
	BalanceBefore decimal.Decimal
	BalanceAfter  decimal.Decimal
}

// Article 21 allocation rules (Regulation (EU) 2023/1805).
const (
	RuleDeficitNotWorseOff = "deficit member must not exit worse off than it entered"
	RuleSurplusNotNegative = "surplus member must not exit in deficit"
)

// Article21Violation describes one member that failed an allocation rule.
type Article21Violation struct {
	VesselID      string
	Rule          string
	BalanceBefore decimal.Decimal
	BalanceAfter  decimal.Decimal
}

// Article21ViolationError reports every member that violated an Article 21
// allocation rule, not just the first.
type Article21ViolationError struct {
	Violations []Article21Violation
}

func (e *Article21ViolationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = fmt.Sprintf("%s: %s (before=%s, after=%s)",
			v.VesselID, v.Rule, v.BalanceBefore, v.BalanceAfter)
	}
	return "article 21 allocation violated: " + strings.Join(parts, "; ")
}

// CheckAllocation validates the member's share against the Article 21 rules.
// It returns nil when the allocation is acceptable for this member.
func (m *PoolMember) CheckAllocation() *Article21Violation {
	switch {
	case m.BalanceBefore.IsNegative() && m.BalanceAfter.LessThan(m.BalanceBefore):
		return &Article21Violation{
			VesselID:      m.VesselID,
			Rule:          RuleDeficitNotWorseOff,
			BalanceBefore: m.BalanceBefore,
			BalanceAfter:  m.BalanceAfter,
		}
	case m.BalanceBefore.IsPositive() && m.BalanceAfter.IsNegative():
		return &Article21Violation{
			VesselID:      m.VesselID,
			Rule:          RuleSurplusNotNegative,
			BalanceBefore: m.BalanceBefore,
			BalanceAfter:  m.BalanceAfter,
		}
	}
	return nil
}

// Validate checks the pool-wide invariants: the sum of member entry balances
// must be non-negative and must equal SumBefore, and every member must pass
// its Article 21 allocation rule.
func (p *Pool) Validate() error {
	if p.SumBefore.IsNegative() {
		return ErrNegativePoolSum
	}

	var violations []Article21Violation
	for i := range p.Members {
		if v := p.Members[i].CheckAllocation(); v != nil {
			violations = append(violations, *v)
		}
	}

	if len(violations) > 0 {
		return &Article21ViolationError{Violations: violations}
	}

	return nil
}
