package sic

import "testing"

func TestDescribe(t *testing.T) {
	tests := []struct {
		code     string
		expected string
	}{
		{"45310", "Wholesale trade of motor vehicle parts and accessories"},
		{"49410", "Freight transport by road"},
		// Unknown exact code falls back to the division description.
		{"45999", "Wholesale and retail trade; repair of motor vehicles"},
		{"99999", "SIC code 99999"},
		{"", "SIC code "},
	}

	for _, test := range tests {
		if got := Describe(test.code); got != test.expected {
			t.Errorf("Describe(%q) = %q, expected %q", test.code, got, test.expected)
		}
	}
}

func TestDescribeAll(t *testing.T) {
	got := DescribeAll([]string{"49410", " ", "77120"})
	expected := "49410: Freight transport by road; 77120: Renting and leasing of trucks"

	if got != expected {
		t.Errorf("DescribeAll() = %q, expected %q", got, expected)
	}

	if DescribeAll(nil) != "" {
		t.Errorf("DescribeAll(nil) should be empty")
	}
}
