package gift

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBehavior(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    Behavior
		wantErr error
	}{
		{raw: "good", want: BehaviorGood},
		{raw: " Nice ", want: BehaviorGood},
		{raw: "BAD", want: BehaviorBad},
		{raw: "naughty", want: BehaviorBad},
		{raw: "jó", want: BehaviorGood},
		{raw: "Jó", want: BehaviorGood},
		{raw: "Rossz", want: BehaviorBad},
		{raw: "true", want: BehaviorGood},
		{raw: "False", want: BehaviorBad},
		{raw: "meh", want: BehaviorUnknown, wantErr: ErrUnknownBehavior},
		{raw: "", want: BehaviorUnknown, wantErr: ErrUnknownBehavior},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.raw, func(t *testing.T) {
			got, err := ParseBehavior(tc.raw)
			require.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBehaviorDeserving(t *testing.T) {
	t.Parallel()

	assert.True(t, BehaviorGood.Deserving())
	assert.False(t, BehaviorBad.Deserving())
	assert.False(t, BehaviorUnknown.Deserving())
	assert.False(t, Behavior(42).Deserving())
}

func TestGiftValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, Gift{Name: "kite", Weight: 0.5}.Validate())

	invalid := []Gift{
		{Name: " ", Weight: 1},
		{Name: "rock", Weight: 0},
		{Name: "anvil", Weight: -3},
		{Name: "bike", Weight: 4, MinAge: -1},
		{Name: "void", Weight: math.NaN()},
		{Name: "star", Weight: math.Inf(1)},
		{Name: "hole", Weight: math.Inf(-1)},
	}
	for _, g := range invalid {
		assert.ErrorIs(t, g.Validate(), ErrInvalidGift, "gift %+v", g)
	}
}

func TestRecipientValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, Recipient{Name: "Ana", Age: 0}.Validate())
	assert.ErrorIs(t, Recipient{Name: "", Age: 4}.Validate(), ErrInvalidRecipient)
	assert.ErrorIs(t, Recipient{Name: "Bo", Age: -2}.Validate(), ErrInvalidRecipient)
}

func TestRecipientCanReceive(t *testing.T) {
	t.Parallel()

	r := Recipient{Name: "Ana", Age: 4, Behavior: BehaviorGood}
	assert.True(t, r.CanReceive(Gift{Name: "blocks", Weight: 1, MinAge: 4}))
	assert.True(t, r.CanReceive(Gift{Name: "rattle", Weight: 1, MinAge: 0}))
	assert.False(t, r.CanReceive(Gift{Name: "bike", Weight: 8, MinAge: 5}))
}

func TestDescriptions(t *testing.T) {
	t.Parallel()

	g := Gift{Name: "teddy bear", Weight: 2, MinAge: 3, Category: "toy"}
	assert.Equal(t, "teddy bear (toy, 2.00kg, ages 3+)", g.String())
	assert.Equal(t, "socks (uncategorised, 0.20kg, ages 0+)", Gift{Name: "socks", Weight: 0.2}.String())

	r := Recipient{Name: "Ana", Age: 7, Behavior: BehaviorBad}
	assert.Equal(t, "Ana (age 7, bad)", r.String())
}
