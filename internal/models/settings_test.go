package models

import "testing"

func TestAccessCode_Validate(t *testing.T) {
	tests := []struct {
		code    string
		wantErr bool
	}{
		{"1234", false},
		{"0000", false},
		{"123", true},
		{"12345", true},
		{"abcd", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			ac := AccessCode{Code: tt.code}
			err := ac.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%q) error = %v, wantErr %v", tt.code, err, tt.wantErr)
			}
		})
	}
}

func TestEventInfo_Validate(t *testing.T) {
	valid := EventInfo{Date: "2024-12-15", Address: "1-1-1 Omotesando, Shibuya-ku, Tokyo"}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid event info rejected: %v", err)
	}

	badDate := EventInfo{Date: "15/12/2024", Address: "somewhere"}
	if err := badDate.Validate(); err == nil {
		t.Error("malformed date accepted")
	}

	noAddress := EventInfo{Date: "2024-12-15"}
	if err := noAddress.Validate(); err == nil {
		t.Error("missing address accepted")
	}
}

func TestLandingContent_Validate(t *testing.T) {
	valid := LandingContent{Title: "Pizza Night", Description: "Pre-order now."}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid landing content rejected: %v", err)
	}
	if err := (&LandingContent{Description: "x"}).Validate(); err == nil {
		t.Error("missing title accepted")
	}
}
