package assistant

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveConfirmation(t *testing.T) {
	tests := []struct {
		text string
		want Decision
	}{
		{"yes", Affirm},
		{"Yes", Affirm},
		{"  YES  ", Affirm},
		{"yes confirm", Affirm},
		{"yes, confirm", Affirm},
		{"yes please", Affirm},
		{"ok", Affirm},
		{"sure!", Affirm},
		{"confirm order", Affirm},
		{"yes list it", Affirm},
		{"yes add to cart", Affirm},
		{"no", Deny},
		{"No thanks.", Deny},
		{"cancel it", Deny},
		{"nope", Deny},
		{"don't", Deny},
		{"maybe", Ambiguous},
		{"what about the price", Ambiguous},
		{"yes but make it 5 kg", Ambiguous},
		{"", Ambiguous},
		{"order 3 kg tomato", Ambiguous},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			require.Equal(t, tt.want, ResolveConfirmation(tt.text))
		})
	}
}
