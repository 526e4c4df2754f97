package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidFullName(t *testing.T) {
	tests := []struct {
		name     string
		fullName string
		want     bool
	}{
		{"single word rejected", "Иван", false},
		{"two words accepted", "Иван Петров", true},
		{"extra whitespace accepted", "  Иван   Петров  ", true},
		{"three words accepted", "Анна Мария Иванова", true},
		{"empty rejected", "", false},
		{"whitespace only rejected", "   ", false},
		{"latin accepted", "Anna Ivanova", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidFullName(tt.fullName))
		})
	}
}
