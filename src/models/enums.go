package models

import "fmt"

// Category classifies a holding. Stored and serialized as its string code,
// handled internally as a closed type.
type Category int

const (
	CategoryStocks Category = iota
	CategoryBonds
	CategoryRealEstate
	CategoryCrypto
	CategoryMutualFunds
	CategoryOther
)

var categoryNames = map[Category]string{
	CategoryStocks:      "Stocks",
	CategoryBonds:       "Bonds",
	CategoryRealEstate:  "RealEstate",
	CategoryCrypto:      "Crypto",
	CategoryMutualFunds: "MutualFunds",
	CategoryOther:       "Other",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "Other"
}

func ParseCategory(s string) (Category, error) {
	for c, name := range categoryNames {
		if name == s {
			return c, nil
		}
	}
	return CategoryOther, fmt.Errorf("unknown category %q", s)
}

// AllCategories returns every category in declaration order.
func AllCategories() []Category {
	return []Category{
		CategoryStocks,
		CategoryBonds,
		CategoryRealEstate,
		CategoryCrypto,
		CategoryMutualFunds,
		CategoryOther,
	}
}

func (c Category) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

func (c *Category) UnmarshalJSON(data []byte) error {
	parsed, err := ParseCategory(unquote(data))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// HoldingStatus is the lifecycle state of a holding.
type HoldingStatus int

const (
	StatusActive HoldingStatus = iota
	StatusSold
	StatusOnHold
)

var statusNames = map[HoldingStatus]string{
	StatusActive: "Active",
	StatusSold:   "Sold",
	StatusOnHold: "OnHold",
}

func (s HoldingStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Active"
}

func ParseHoldingStatus(s string) (HoldingStatus, error) {
	for st, name := range statusNames {
		if name == s {
			return st, nil
		}
	}
	return StatusActive, fmt.Errorf("unknown holding status %q", s)
}

func (s HoldingStatus) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

func (s *HoldingStatus) UnmarshalJSON(data []byte) error {
	parsed, err := ParseHoldingStatus(unquote(data))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// TransactionType is the mutation semantic of a ledger entry. Buy adds to the
// holding value, Sell subtracts from it, Update sets it to an absolute amount.
type TransactionType int

const (
	TransactionBuy TransactionType = iota
	TransactionSell
	TransactionUpdate
)

var transactionTypeNames = map[TransactionType]string{
	TransactionBuy:    "Buy",
	TransactionSell:   "Sell",
	TransactionUpdate: "Update",
}

func (t TransactionType) String() string {
	if name, ok := transactionTypeNames[t]; ok {
		return name
	}
	return "Buy"
}

func ParseTransactionType(s string) (TransactionType, error) {
	for tt, name := range transactionTypeNames {
		if name == s {
			return tt, nil
		}
	}
	return TransactionBuy, fmt.Errorf("unknown transaction type %q", s)
}

func (t TransactionType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

func (t *TransactionType) UnmarshalJSON(data []byte) error {
	parsed, err := ParseTransactionType(unquote(data))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func unquote(data []byte) string {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
