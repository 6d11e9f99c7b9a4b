// Package ledger provides the wallet transactions shown by the transaction
// list: loading them from YAML, a built-in sample set, sorting and
// per-column formatting.
package ledger

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	txerrors "github.com/alexisbeaulieu97/txview/pkg/errors"
)

// Direction tells whether funds were received or sent.
type Direction string

const (
	Incoming Direction = "in"
	Outgoing Direction = "out"
)

// Status is the settlement state of a transaction.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusFailed    Status = "failed"
)

// Column keys understood by Field and SortBy.
const (
	KeyTime          = "time"
	KeyID            = "id"
	KeyDirection     = "direction"
	KeyAmount        = "amount"
	KeyFee           = "fee"
	KeyConfirmations = "confirmations"
	KeyStatus        = "status"
	KeyMemo          = "memo"
)

// Keys lists every field key in display order.
func Keys() []string {
	return []string{KeyTime, KeyID, KeyDirection, KeyAmount, KeyFee, KeyConfirmations, KeyStatus, KeyMemo}
}

// IsKey reports whether key names a transaction field.
func IsKey(key string) bool {
	for _, k := range Keys() {
		if k == key {
			return true
		}
	}
	return false
}

// Transaction is a single wallet movement. Amounts are in satoshis.
type Transaction struct {
	ID            string    `yaml:"id"`
	Time          time.Time `yaml:"time" validate:"required"`
	Direction     Direction `yaml:"direction" validate:"required,oneof=in out"`
	Amount        int64     `yaml:"amount" validate:"gte=0"`
	Fee           int64     `yaml:"fee" validate:"gte=0"`
	Confirmations int       `yaml:"confirmations" validate:"gte=0"`
	Status        Status    `yaml:"status" validate:"required,oneof=pending confirmed failed"`
	Memo          string    `yaml:"memo"`
}

var validate = validator.New()

// Load reads a YAML list of transactions. Entries without an id get a
// random UUID.
func Load(path string) ([]Transaction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, txerrors.NewParseError(path, 0, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, txerrors.NewParseError(path, 0, err)
	}

	var txs []Transaction
	if err := doc.Decode(&txs); err != nil {
		return nil, txerrors.NewParseError(path, 0, err)
	}

	items := sequenceItems(&doc)
	for i := range txs {
		if err := validate.Struct(txs[i]); err != nil {
			line := 0
			if i < len(items) {
				line = items[i].Line
			}
			return nil, txerrors.NewParseError(path, line, fmt.Errorf("transaction %d: %w", i, err))
		}
		if strings.TrimSpace(txs[i].ID) == "" {
			txs[i].ID = uuid.NewString()
		}
	}

	return txs, nil
}

func sequenceItems(doc *yaml.Node) []*yaml.Node {
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		doc = doc.Content[0]
	}
	if doc.Kind != yaml.SequenceNode {
		return nil
	}
	return doc.Content
}

// Field formats the value for column key. Unknown keys render empty.
func (t Transaction) Field(key string) string {
	switch key {
	case KeyTime:
		return t.Time.Format("2006-01-02 15:04")
	case KeyID:
		return shortID(t.ID)
	case KeyDirection:
		if t.Direction == Incoming {
			return "received"
		}
		return "sent"
	case KeyAmount:
		sign := "+"
		if t.Direction == Outgoing {
			sign = "-"
		}
		return sign + formatBTC(t.Amount)
	case KeyFee:
		if t.Fee == 0 {
			return "-"
		}
		return formatBTC(t.Fee)
	case KeyConfirmations:
		return strconv.Itoa(t.Confirmations)
	case KeyStatus:
		return string(t.Status)
	case KeyMemo:
		return t.Memo
	default:
		return ""
	}
}

// Net returns the signed balance change including the fee.
func (t Transaction) Net() int64 {
	if t.Direction == Outgoing {
		return -(t.Amount + t.Fee)
	}
	return t.Amount
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

func formatBTC(sats int64) string {
	return fmt.Sprintf("%d.%08d", sats/100_000_000, sats%100_000_000)
}

// FormatBTC renders a satoshi amount with eight decimals.
func FormatBTC(sats int64) string {
	if sats < 0 {
		return "-" + formatBTC(-sats)
	}
	return formatBTC(sats)
}

// SortBy returns a copy of txs ordered by key. Equal keys keep their
// relative order.
func SortBy(txs []Transaction, key string, desc bool) ([]Transaction, error) {
	less, ok := comparators[key]
	if !ok {
		return nil, txerrors.NewColumnError(key, txerrors.ErrUnknownColumn)
	}

	out := make([]Transaction, len(txs))
	copy(out, txs)
	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out, nil
}

var comparators = map[string]func(a, b Transaction) bool{
	KeyTime:          func(a, b Transaction) bool { return a.Time.Before(b.Time) },
	KeyID:            func(a, b Transaction) bool { return a.ID < b.ID },
	KeyDirection:     func(a, b Transaction) bool { return a.Direction < b.Direction },
	KeyAmount:        func(a, b Transaction) bool { return a.Net() < b.Net() },
	KeyFee:           func(a, b Transaction) bool { return a.Fee < b.Fee },
	KeyConfirmations: func(a, b Transaction) bool { return a.Confirmations < b.Confirmations },
	KeyStatus:        func(a, b Transaction) bool { return a.Status < b.Status },
	KeyMemo: func(a, b Transaction) bool {
		return strings.ToLower(a.Memo) < strings.ToLower(b.Memo)
	},
}
