package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyDocument(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			"purchase agreement",
			"This Real Estate Purchase Agreement is entered into by the parties.",
			"purchase_agreement",
		},
		{
			"lease",
			"RESIDENTIAL LEASE AGREEMENT between landlord and tenant.",
			"lease_agreement",
		},
		{
			"mortgage",
			"This Deed of Trust secures the mortgage on the property.",
			"mortgage",
		},
		{
			"deed",
			"WARRANTY DEED. The grantor conveys the property described herein.",
			"deed",
		},
		{
			"closing statement",
			"HUD-1 Settlement Statement for the transaction.",
			"closing_statement",
		},
		{
			"highest count wins",
			"This purchase agreement references a mortgage. The sales contract and the real estate contract control.",
			"purchase_agreement",
		},
		{
			"tie breaks by rule order",
			"The lease agreement references the mortgage.",
			"lease_agreement",
		},
		{
			"no signal",
			"An entirely unrelated memo about office supplies.",
			"unknown",
		},
		{
			"empty",
			"",
			"unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyDocument(tt.text))
		})
	}
}
