package model

import (
	"testing"
	"time"
)

func TestPaymentDraft_Validate(t *testing.T) {
	due := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	valid := PaymentDraft{
		DueDate:       due,
		CheckNumber:   "100045",
		Bank:          "Halk Bankası",
		Company:       "DOĞU İNŞAAT",
		BusinessGroup: "KULU",
		Description:   "March rent",
		Amount:        12500,
	}

	tests := []struct {
		mutate  func(*PaymentDraft)
		name    string
		errMsg  string
		wantErr bool
	}{
		{
			name:    "valid draft",
			mutate:  func(*PaymentDraft) {},
			wantErr: false,
		},
		{
			name:    "empty description is allowed",
			mutate:  func(d *PaymentDraft) { d.Description = "" },
			wantErr: false,
		},
		{
			name:    "zero amount is allowed",
			mutate:  func(d *PaymentDraft) { d.Amount = 0 },
			wantErr: false,
		},
		{
			name:    "missing due date",
			mutate:  func(d *PaymentDraft) { d.DueDate = time.Time{} },
			wantErr: true,
			errMsg:  "due date is required",
		},
		{
			name:    "missing check number",
			mutate:  func(d *PaymentDraft) { d.CheckNumber = "  " },
			wantErr: true,
			errMsg:  "check number is required",
		},
		{
			name:    "missing bank",
			mutate:  func(d *PaymentDraft) { d.Bank = "" },
			wantErr: true,
			errMsg:  "bank is required",
		},
		{
			name:    "missing company",
			mutate:  func(d *PaymentDraft) { d.Company = "" },
			wantErr: true,
			errMsg:  "company is required",
		},
		{
			name:    "missing business group",
			mutate:  func(d *PaymentDraft) { d.BusinessGroup = "" },
			wantErr: true,
			errMsg:  "business group is required",
		},
		{
			name:    "negative amount",
			mutate:  func(d *PaymentDraft) { d.Amount = -1 },
			wantErr: true,
			errMsg:  "amount must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := valid
			tt.mutate(&draft)
			err := draft.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Validate() error = nil, want %q", tt.errMsg)
				}
				if tt.errMsg != "" && err.Error() != tt.errMsg {
					t.Errorf("Validate() error = %v, want %v", err.Error(), tt.errMsg)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() error = %v, want nil", err)
			}
		})
	}
}

func TestCategoryID_PaymentField(t *testing.T) {
	p := Payment{Bank: "Deniz Bank", Company: "ALTAY", BusinessGroup: "AKSARAY"}

	tests := []struct {
		name string
		id   CategoryID
		want string
	}{
		{name: "bank", id: CategoryBank, want: "Deniz Bank"},
		{name: "company", id: CategoryCompany, want: "ALTAY"},
		{name: "business group", id: CategoryBusinessGroup, want: "AKSARAY"},
		{name: "unknown id", id: CategoryID("payee"), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.id.PaymentField(p); got != tt.want {
				t.Errorf("PaymentField() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPayment_AmountString(t *testing.T) {
	tests := []struct {
		name   string
		want   string
		amount float64
	}{
		{name: "integral", amount: 150, want: "150"},
		{name: "two decimals", amount: 99.95, want: "99.95"},
		{name: "zero", amount: 0, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Payment{Amount: tt.amount}
			if got := p.AmountString(); got != tt.want {
				t.Errorf("AmountString() = %q, want %q", got, tt.want)
			}
		})
	}
}
