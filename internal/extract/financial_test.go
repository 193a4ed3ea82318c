package extract

import (
	"reflect"
	"testing"
)

func TestFinancialTermExtractor_Extract(t *testing.T) {
	f := NewFinancialTermExtractor()

	text := "A total of $10,000 is payable in 30 days, net 15. " +
		"Interest of 5% per annum applies to late amounts. " +
		"Payment is accepted by wire transfer or ACH."

	terms := f.Extract(text)

	if !reflect.DeepEqual(terms.Amounts, []string{"$10,000"}) {
		t.Errorf("amounts = %v", terms.Amounts)
	}
	if !reflect.DeepEqual(terms.PaymentSchedule, []string{"30", "15"}) {
		t.Errorf("payment schedule = %v", terms.PaymentSchedule)
	}
	if !reflect.DeepEqual(terms.InterestRates, []string{"5%"}) {
		t.Errorf("interest rates = %v", terms.InterestRates)
	}
	if !reflect.DeepEqual(terms.PaymentMethods, []string{"wire transfer", "ACH"}) {
		t.Errorf("payment methods = %v", terms.PaymentMethods)
	}
}

func TestFinancialTermExtractor_WordAmounts(t *testing.T) {
	f := NewFinancialTermExtractor()

	terms := f.Extract("The buyer pays 1,500 dollars up front and 2,500 USD on delivery.")
	if len(terms.Amounts) != 2 {
		t.Fatalf("expected 2 amounts, got %v", terms.Amounts)
	}
}

func TestFinancialTermExtractor_EmptyListsNotNil(t *testing.T) {
	f := NewFinancialTermExtractor()

	terms := f.Extract("no financial content")
	for name, list := range map[string][]string{
		"amounts":          terms.Amounts,
		"payment_schedule": terms.PaymentSchedule,
		"penalties":        terms.Penalties,
		"interest_rates":   terms.InterestRates,
		"currencies":       terms.Currencies,
		"payment_methods":  terms.PaymentMethods,
	} {
		if list == nil {
			t.Errorf("%s: expected empty slice, got nil", name)
		}
	}
}
