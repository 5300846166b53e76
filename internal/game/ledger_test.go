package game

import (
	"math"
	"testing"
)

func TestCredit_IncreasesBalanceExactly(t *testing.T) {
	l := &ResourceLedger{Balance: 10, ClickYield: 1}
	l.Credit(2.5)
	if math.Abs(l.Balance-12.5) > 1e-9 {
		t.Fatalf("expected balance 12.5, got %v", l.Balance)
	}
}

func TestCredit_ZeroIsNoop(t *testing.T) {
	l := &ResourceLedger{Balance: 7}
	l.Credit(0)
	if l.Balance != 7 {
		t.Fatalf("expected balance 7, got %v", l.Balance)
	}
}

func TestCredit_NegativeIgnored(t *testing.T) {
	l := &ResourceLedger{Balance: 7}
	l.Credit(-5)
	if l.Balance != 7 {
		t.Fatalf("negative credit must not change the balance, got %v", l.Balance)
	}
}

func TestDebit_SufficientFunds(t *testing.T) {
	l := &ResourceLedger{Balance: 100}
	if !l.Debit(40) {
		t.Fatal("debit of 40 from 100 should succeed")
	}
	if l.Balance != 60 {
		t.Fatalf("expected balance 60, got %v", l.Balance)
	}
}

func TestDebit_ExactBalance(t *testing.T) {
	l := &ResourceLedger{Balance: 40}
	if !l.Debit(40) {
		t.Fatal("debit of the full balance should succeed")
	}
	if l.Balance != 0 {
		t.Fatalf("expected balance 0, got %v", l.Balance)
	}
}

func TestDebit_InsufficientFundsLeavesBalance(t *testing.T) {
	l := &ResourceLedger{Balance: 30}
	if l.Debit(30.01) {
		t.Fatal("debit above balance must be refused")
	}
	if l.Balance != 30 {
		t.Fatalf("refused debit must not change the balance, got %v", l.Balance)
	}
}

func TestDebit_NeverGoesNegative(t *testing.T) {
	l := &ResourceLedger{Balance: 0}
	if l.Debit(1) {
		t.Fatal("debit from empty ledger must be refused")
	}
	if l.Balance < 0 {
		t.Fatalf("balance went negative: %v", l.Balance)
	}
}

func TestCanAfford(t *testing.T) {
	l := &ResourceLedger{Balance: 50}
	if !l.CanAfford(50) {
		t.Fatal("should afford exactly the balance")
	}
	if l.CanAfford(50.0001) {
		t.Fatal("should not afford more than the balance")
	}
	if l.Balance != 50 {
		t.Fatalf("CanAfford must not mutate, got %v", l.Balance)
	}
}

func TestNewResourceLedger_Defaults(t *testing.T) {
	l := NewResourceLedger(GameBalance{})
	if l.Balance != 0 {
		t.Fatalf("fresh ledger should start at 0, got %v", l.Balance)
	}
	if l.ClickYield != 1 {
		t.Fatalf("click yield should default to 1, got %v", l.ClickYield)
	}
}
