package cmd

import "testing"

func TestMouseFlagRegistered(t *testing.T) {
	f := rootCmd.Flags().Lookup("mouse")
	if f == nil {
		t.Fatal("mouse flag not registered")
	}
	if f.DefValue != "auto" {
		t.Errorf("default = %q, want %q", f.DefValue, "auto")
	}
}

func TestMouseModeSet(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"auto", "auto", false},
		{"on", "on", false},
		{"off", "off", false},
		{"unknown value", "sideways", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m mouseMode
			err := m.Set(tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("Set(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && m.String() != tt.in {
				t.Errorf("after Set(%q) String() = %q", tt.in, m.String())
			}
		})
	}
}
