package image

import (
	"encoding/base64"
	"strings"
	"testing"
)

func TestFormatImageData(t *testing.T) {
	p := NewProcessor(1024)

	t.Run("裸のbase64を包む", func(t *testing.T) {
		got, err := p.FormatImageData("aGVsbG8=")
		if err != nil {
			t.Fatalf("FormatImageData() error = %v", err)
		}
		if got != "data:image/jpeg;base64,aGVsbG8=" {
			t.Errorf("FormatImageData() = %q", got)
		}
	})

	t.Run("data URIはそのまま", func(t *testing.T) {
		in := "data:image/png;base64,aGVsbG8="
		got, err := p.FormatImageData(in)
		if err != nil {
			t.Fatalf("FormatImageData() error = %v", err)
		}
		if got != in {
			t.Errorf("FormatImageData() = %q, want %q", got, in)
		}
	})

	t.Run("空文字はエラー", func(t *testing.T) {
		if _, err := p.FormatImageData(""); err == nil {
			t.Error("expected error for empty input")
		}
	})
}

func TestValidate(t *testing.T) {
	p := NewProcessor(16)

	valid := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte("0123456789"))

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "正常", input: valid, wantErr: false},
		{name: "空文字", input: "", wantErr: true},
		{name: "data URIでない", input: "aGVsbG8=", wantErr: true},
		{name: "カンマなし", input: "data:image/jpeg;base64", wantErr: true},
		{name: "base64が壊れている", input: "data:image/jpeg;base64,!!!", wantErr: true},
		{
			name:    "サイズ超過",
			input:   "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte(strings.Repeat("a", 32))),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := p.Validate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
