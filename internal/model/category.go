package model

// CategoryID identifies one of the fixed payment classification dimensions.
type CategoryID string

const (
	// CategoryBank is the issuing bank dimension.
	CategoryBank CategoryID = "bank"
	// CategoryCompany is the payee company dimension.
	CategoryCompany CategoryID = "company"
	// CategoryBusinessGroup is the business unit dimension.
	CategoryBusinessGroup CategoryID = "businessGroup"
)

// CategoryIDs lists all category dimensions in display order.
func CategoryIDs() []CategoryID {
	return []CategoryID{CategoryBank, CategoryCompany, CategoryBusinessGroup}
}

// Valid reports whether the id names a known category dimension.
func (id CategoryID) Valid() bool {
	switch id {
	case CategoryBank, CategoryCompany, CategoryBusinessGroup:
		return true
	default:
		return false
	}
}

// DisplayName returns the user-facing name of the dimension.
func (id CategoryID) DisplayName() string {
	switch id {
	case CategoryBank:
		return "Banka"
	case CategoryCompany:
		return "Firma"
	case CategoryBusinessGroup:
		return "İş Grubu"
	default:
		return string(id)
	}
}

// PaymentField returns the payment field this category classifies.
func (id CategoryID) PaymentField(p Payment) string {
	switch id {
	case CategoryBank:
		return p.Bank
	case CategoryCompany:
		return p.Company
	case CategoryBusinessGroup:
		return p.BusinessGroup
	default:
		return ""
	}
}

// Category owns the ordered, duplicate-free label list for one dimension.
type Category struct {
	ID     CategoryID
	Name   string
	Labels []string
}
