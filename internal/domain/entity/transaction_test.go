package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidTransactionKind(t *testing.T) {
	assert.True(t, IsValidTransactionKind("credit"))
	assert.True(t, IsValidTransactionKind("debit"))
	assert.False(t, IsValidTransactionKind(""))
	assert.False(t, IsValidTransactionKind("CREDIT"))
	assert.False(t, IsValidTransactionKind("refund"))
}

func TestTransactionDirection(t *testing.T) {
	credit := &Transaction{Kind: KindCredit}
	debit := &Transaction{Kind: KindDebit}

	assert.True(t, credit.IsCredit())
	assert.False(t, credit.IsDebit())
	assert.True(t, debit.IsDebit())
	assert.False(t, debit.IsCredit())
}
