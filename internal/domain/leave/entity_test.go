package leave

import "testing"

func TestCanonicalCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
		ok   bool
	}{
		{"Vacation", CategoryVacation, true},
		{"Annual Leave", CategoryVacation, true},
		{"Sick Leaves", CategorySick, true},
		{"sick_leave", CategorySick, true},
		{"Emergency Leave & Absence", CategoryEmergency, true},
		{"Leave Without Pay", CategoryUnpaid, true},
		{"New Hirring", CategoryNewHire, true},
		{"Stop Working", CategoryStopWorking, true},
		{"Back From Vacation", CategoryReturn, true},
		{"Random Notes", "", false},
	}
	for _, tt := range tests {
		got, ok := CanonicalCategory(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("CanonicalCategory(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestExcuses(t *testing.T) {
	excusing := []Category{CategoryVacation, CategorySick, CategoryEmergency, CategoryUnpaid}
	for _, c := range excusing {
		if !c.Excuses() {
			t.Errorf("%s should excuse absences", c)
		}
	}
	markers := []Category{CategoryNewHire, CategoryStopWorking, CategoryReturn}
	for _, c := range markers {
		if c.Excuses() {
			t.Errorf("%s should not excuse absences", c)
		}
	}
}
