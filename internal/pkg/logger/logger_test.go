package logger

import "testing"

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", DEBUG},
		{"DEBUG", DEBUG},
		{"info", INFO},
		{"warn", WARN},
		{"warning", WARN},
		{"error", ERROR},
		{"", INFO},
		{"verbose", INFO},
		{"  info  ", INFO},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRedactAccountID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ACC-00042", "ACC-***42"},
		{"ACC-12345", "ACC-***45"},
		{"malformed", "[redacted]"},
		{"ACC-12", "[redacted]"},
	}

	for _, tt := range tests {
		if got := RedactAccountID(tt.in); got != tt.want {
			t.Errorf("RedactAccountID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRedactPIIValue(t *testing.T) {
	if got := redactPIIValue("address", "742 Evergreen Terrace"); got != "[address redacted]" {
		t.Errorf("address field not redacted: %q", got)
	}
	if got := redactPIIValue("account_id", "ACC-00042"); got != "ACC-***42" {
		t.Errorf("account field not redacted: %q", got)
	}
	if got := redactPIIValue("msg", "letter for ACC-00042 mailed"); got != "letter for ACC-***42 mailed" {
		t.Errorf("embedded account ID not redacted: %q", got)
	}
	if got := redactPIIValue("status", "shipped"); got != "shipped" {
		t.Errorf("benign value altered: %q", got)
	}
}
