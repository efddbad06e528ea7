package errors

import (
	"testing"
)

func TestValidateTermWidth(t *testing.T) {
	tests := []struct {
		name    string
		input   int
		wantErr bool
	}{
		{"typical", 80, false},
		{"one", 1, false},
		{"zero", 0, true},
		{"negative", -4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTermWidth(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTermWidth(%d) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidFlag) {
				t.Errorf("ValidateTermWidth(%d) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidFlag)
			}
		})
	}
}

func TestValidateMargins(t *testing.T) {
	tests := []struct {
		name       string
		horizontal int
		vertical   int
		wantErr    bool
	}{
		{"defaults", 3, 1, false},
		{"none", 0, 0, false},
		{"negative horizontal", -1, 0, true},
		{"negative vertical", 0, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMargins(tt.horizontal, tt.vertical)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateMargins(%d, %d) error = %v, wantErr %v", tt.horizontal, tt.vertical, err, tt.wantErr)
			}
		})
	}
}

func TestValidateColumns(t *testing.T) {
	if err := ValidateColumns(0); err != nil {
		t.Errorf("ValidateColumns(0) = %v, want nil", err)
	}
	if err := ValidateColumns(8); err != nil {
		t.Errorf("ValidateColumns(8) = %v, want nil", err)
	}
	if err := ValidateColumns(-1); err == nil {
		t.Error("ValidateColumns(-1) = nil, want error")
	}
}
