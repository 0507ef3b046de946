package punch

import "testing"

func TestNormalizeEmployeeID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"100", "100"},
		{" 100 ", "100"},
		{"1084.0", "1084"},
		{"1084.5", "1084.5"},
		{"A-17", "A-17"},
		{"", ""},
		{"  ", ""},
	}
	for _, tt := range tests {
		if got := NormalizeEmployeeID(tt.in); got != tt.want {
			t.Errorf("NormalizeEmployeeID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStatusMatching(t *testing.T) {
	tests := []struct {
		status  string
		isEntry bool
		isExit  bool
	}{
		{"C/In", true, false},
		{"C/Out", false, true},
		{"OverTime C/In", true, false},
		{"OverTime C/Out", false, true},
		{"", false, false},
	}
	for _, tt := range tests {
		p := Punch{Status: tt.status}
		if p.IsEntry() != tt.isEntry {
			t.Errorf("IsEntry(%q) = %v, want %v", tt.status, p.IsEntry(), tt.isEntry)
		}
		if p.IsExit() != tt.isExit {
			t.Errorf("IsExit(%q) = %v, want %v", tt.status, p.IsExit(), tt.isExit)
		}
	}
}
