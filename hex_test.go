package colorfmt

import (
	"errors"
	"testing"
)

func TestHexToRGBA(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		opts []Option
		want string
	}{
		{name: "6 digits", hex: "#ff0000", want: "rgb(255, 0, 0)"},
		{name: "no hash", hex: "3498db", want: "rgb(52, 152, 219)"},
		{name: "upper case", hex: "#3498DB", want: "rgb(52, 152, 219)"},
		{name: "3 digits", hex: "#abc", want: "rgb(170, 187, 204)"},
		{name: "surrounding space", hex: "  #FFF  ", want: "rgb(255, 255, 255)"},
		{name: "4 digits", hex: "#abcd", want: "rgba(170, 187, 204, 0.8666666666666667)"},
		{name: "8 digits", hex: "#11223380", want: "rgba(17, 34, 51, 0.5019607843137255)"},
		{name: "8 digits opaque", hex: "#112233ff", want: "rgba(17, 34, 51, 1)"},
		{name: "explicit alpha", hex: "#112233", opts: []Option{WithAlpha(0.5)}, want: "rgba(17, 34, 51, 0.5)"},
		{name: "explicit alpha wins", hex: "#11223380", opts: []Option{WithAlpha(0.25)}, want: "rgba(17, 34, 51, 0.25)"},
		{name: "explicit zero alpha", hex: "#ff0000", opts: []Option{WithAlpha(0)}, want: "rgba(255, 0, 0, 0)"},
		{name: "last option wins", hex: "#000", opts: []Option{WithAlpha(0.1), WithAlpha(0.2)}, want: "rgba(0, 0, 0, 0.2)"},
		{name: "nil option ignored", hex: "#000", opts: []Option{nil}, want: "rgb(0, 0, 0)"},
		{name: "full width", hex: "＃ＦＦ００００", want: "rgb(255, 0, 0)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HexToRGBA(tt.hex, tt.opts...)
			if err != nil {
				t.Fatalf("HexToRGBA(%q) error = %v", tt.hex, err)
			}
			if got != tt.want {
				t.Errorf("HexToRGBA(%q) = %q, want %q", tt.hex, got, tt.want)
			}
		})
	}
}

func TestHexToHSLA(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		opts []Option
		want string
	}{
		{name: "red", hex: "#ff0000", want: "hsl(0, 100%, 50%)"},
		{name: "green", hex: "#00ff00", want: "hsl(120, 100%, 50%)"},
		{name: "blue", hex: "#0000ff", want: "hsl(240, 100%, 50%)"},
		{name: "orange keeps positive hue", hex: "#ff8000", want: "hsl(30, 100%, 50%)"},
		{name: "gray", hex: "#808080", want: "hsl(0, 0%, 50%)"},
		{name: "black", hex: "#000", want: "hsl(0, 0%, 0%)"},
		{name: "white", hex: "fff", want: "hsl(0, 0%, 100%)"},
		{name: "flat blue", hex: "#3498db", want: "hsl(204, 70%, 53%)"},
		{name: "embedded alpha", hex: "#ff000080", want: "hsla(0, 100%, 50%, 0.5019607843137255)"},
		{name: "shorthand alpha", hex: "#f008", want: "hsla(0, 100%, 50%, 0.5333333333333333)"},
		{name: "explicit alpha wins", hex: "#ff000080", opts: []Option{WithAlpha(0.3)}, want: "hsla(0, 100%, 50%, 0.3)"},
		{name: "explicit alpha", hex: "#00ff00", opts: []Option{WithAlpha(1)}, want: "hsla(120, 100%, 50%, 1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HexToHSLA(tt.hex, tt.opts...)
			if err != nil {
				t.Fatalf("HexToHSLA(%q) error = %v", tt.hex, err)
			}
			if got != tt.want {
				t.Errorf("HexToHSLA(%q) = %q, want %q", tt.hex, got, tt.want)
			}
		})
	}
}

func TestHexInvalid(t *testing.T) {
	inputs := []string{
		"",
		"#",
		"#12",
		"#12345",
		"12345",
		"#1234567",
		"#123456789",
		"#ggg",
		"#12345z",
		"##fff",
	}

	convs := map[string]func(string) (string, error){
		"HexToRGBA": func(s string) (string, error) { return HexToRGBA(s) },
		"HexToHSLA": func(s string) (string, error) { return HexToHSLA(s) },
	}

	for name, conv := range convs {
		for _, in := range inputs {
			got, err := conv(in)
			if !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("%s(%q) = (%q, %v), want ErrInvalidFormat", name, in, got, err)
			}
			if got != "" {
				t.Errorf("%s(%q) returned %q alongside an error", name, in, got)
			}
		}
	}
}

func TestShorthandMatchesLongForm(t *testing.T) {
	pairs := [][2]string{
		{"#abc", "#aabbcc"},
		{"#000", "#000000"},
		{"#f0f", "#ff00ff"},
		{"#abcd", "#aabbccdd"},
	}
	for _, p := range pairs {
		short, err := HexToRGBA(p[0])
		if err != nil {
			t.Fatal(err)
		}
		long, err := HexToRGBA(p[1])
		if err != nil {
			t.Fatal(err)
		}
		if short != long {
			t.Errorf("HexToRGBA(%q) = %q, HexToRGBA(%q) = %q", p[0], short, p[1], long)
		}
	}
}
