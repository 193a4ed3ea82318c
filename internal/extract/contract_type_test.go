package extract

import "testing"

func TestContractTypeClassifier_Classify(t *testing.T) {
	c := NewContractTypeClassifier()

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "lease",
			text: "The landlord leases the premises to the tenant, who agrees to rent the property.",
			want: "lease agreement",
		},
		{
			name: "employment",
			text: "The employer offers the employee a salary with benefits for the job described below.",
			want: "employment contract",
		},
		{
			name: "nda",
			text: "All proprietary and confidential information is covered by this non-disclosure promise.",
			want: "non-disclosure agreement",
		},
		{
			name: "no keywords",
			text: "An arrangement between two people about a picnic.",
			want: "general agreement",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Classify(tt.text); got != tt.want {
				t.Errorf("Classify = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestContractTypeClassifier_MainSubject(t *testing.T) {
	c := NewContractTypeClassifier()

	// Explanatory phrase wins over the archetype fallback
	text := "This contract is for the maintenance of elevators. Other text."
	got := c.MainSubject(text, "service agreement")
	if got != "maintenance of elevators" {
		t.Errorf("subject = %q", got)
	}

	// No pattern match: archetype fallback
	got = c.MainSubject("no explanatory phrases here", "lease agreement")
	if got != "property rental and occupancy" {
		t.Errorf("fallback subject = %q", got)
	}

	// Unknown archetype gets the generic fallback
	got = c.MainSubject("nothing here", "general agreement")
	if got != "business relationship and obligations" {
		t.Errorf("generic subject = %q", got)
	}
}
