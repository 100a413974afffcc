package utils

import (
	"testing"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Fotografia de Paisagens", "fotografia de paisagens"},
		{"Saúde", "saude"},
		{"Educação", "educacao"},
		{"CÂMERA Mirrorless", "camera mirrorless"},
		{"", ""},
	}

	for _, test := range tests {
		result := NormalizeText(test.input)
		if result != test.expected {
			t.Errorf("NormalizeText(%q) = %q; expected %q", test.input, result, test.expected)
		}
	}
}

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"linha um\nlinha dois", "linha um linha dois"},
		{"  espaços   extras \t aqui ", "espaços extras aqui"},
		{"\n\n\n", ""},
		{"sem mudanca", "sem mudanca"},
	}

	for _, test := range tests {
		result := CollapseWhitespace(test.input)
		if result != test.expected {
			t.Errorf("CollapseWhitespace(%q) = %q; expected %q", test.input, result, test.expected)
		}
	}
}
