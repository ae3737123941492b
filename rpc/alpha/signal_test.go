package alpha

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/agentalpha/agentalpha-contract/contracts/alpha/alphaconst"
	"github.com/stretchr/testify/require"
)

func TestPayloadCanonical(t *testing.T) {
	p := Payload{
		Token:          "BTC",
		Direction:      DirectionBuy,
		EntryPrice:     6500000,
		TakeProfit:     6700000,
		StopLoss:       6400000,
		TimeframeHours: 24,
		Confidence:     80,
	}
	require.Equal(t, "BTC:0:6500000:6700000:6400000:24:80", string(p.Canonical()))

	// Reference digest of the encoding above.
	h := p.Hash()
	require.Equal(t,
		"956a8d66de219d59580fd439a990cd8b7a62960c98e019949422351f622c0e1f",
		hex.EncodeToString(h[:]))

	p.Direction = DirectionSell
	h2 := p.Hash()
	require.NotEqual(t, h, h2, "any field change must change the digest")
}

func TestPayloadValidate(t *testing.T) {
	valid := Payload{
		Token:          "ETH",
		Direction:      DirectionSell,
		EntryPrice:     320000,
		TakeProfit:     300000,
		StopLoss:       330000,
		TimeframeHours: 12,
		Confidence:     55,
	}
	require.NoError(t, valid.Validate())

	for name, tc := range map[string]struct {
		mut func(*Payload)
		err string
	}{
		"long token":      {func(p *Payload) { p.Token = strings.Repeat("A", 17) }, alphaconst.ErrTokenTooLong},
		"bad direction":   {func(p *Payload) { p.Direction = 2 }, alphaconst.ErrInvalidDirection},
		"zero timeframe":  {func(p *Payload) { p.TimeframeHours = 0 }, alphaconst.ErrInvalidTimeframe},
		"long timeframe":  {func(p *Payload) { p.TimeframeHours = 73 }, alphaconst.ErrInvalidTimeframe},
		"high confidence": {func(p *Payload) { p.Confidence = 101 }, alphaconst.ErrInvalidConfidence},
		"negative price":  {func(p *Payload) { p.EntryPrice = -1 }, alphaconst.ErrInvalidPrice},
	} {
		t.Run(name, func(t *testing.T) {
			p := valid
			tc.mut(&p)
			require.EqualError(t, p.Validate(), tc.err)
		})
	}

	t.Run("token of max length", func(t *testing.T) {
		p := valid
		p.Token = strings.Repeat("A", 16)
		require.NoError(t, p.Validate())
	})
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection("buy")
	require.NoError(t, err)
	require.Equal(t, DirectionBuy, d)

	d, err = ParseDirection("SELL")
	require.NoError(t, err)
	require.Equal(t, DirectionSell, d)

	_, err = ParseDirection("hold")
	require.Error(t, err)
}

func TestParseOutcome(t *testing.T) {
	o, err := ParseOutcome("target")
	require.NoError(t, err)
	require.Equal(t, OutcomeTargetHit, o)

	o, err = ParseOutcome("EXPIRED")
	require.NoError(t, err)
	require.Equal(t, OutcomeExpired, o)

	_, err = ParseOutcome("void")
	require.Error(t, err)
}
