package ledger

import (
	"github.com/google/uuid"
)

// Log is the append-only transaction store. It is an audit trail only;
// member balances are never derived from it.
type Log struct {
	transactions []Transaction
}

func NewLog(transactions ...Transaction) *Log {
	l := &Log{}
	l.transactions = append(l.transactions, transactions...)
	return l
}

func (l *Log) Append(t Transaction) {
	l.transactions = append(l.transactions, t)
}

func (l *Log) All() []Transaction {
	out := make([]Transaction, len(l.transactions))
	copy(out, l.transactions)
	return out
}

func (l *Log) ByMember(memberID uuid.UUID) []Transaction {
	var out []Transaction
	for _, t := range l.transactions {
		if t.MemberID == memberID {
			out = append(out, t)
		}
	}
	return out
}

func (l *Log) ByType(typeKey string) []Transaction {
	var out []Transaction
	for _, t := range l.transactions {
		if t.Type == typeKey {
			out = append(out, t)
		}
	}
	return out
}

// PurgeByType removes every transaction with the given type key and returns
// how many were removed. Fee-year deletion is the only caller.
func (l *Log) PurgeByType(typeKey string) int {
	kept := l.transactions[:0]
	removed := 0
	for _, t := range l.transactions {
		if t.Type == typeKey {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	l.transactions = kept
	return removed
}

func (l *Log) Len() int {
	return len(l.transactions)
}
