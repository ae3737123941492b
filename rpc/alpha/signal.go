// Package alpha provides client-side primitives for the AgentAlpha
// contract: the canonical signal-payload encoding and the commitment digest
// providers precompute offline before invoking commitSignal.
package alpha

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"strconv"

	"github.com/agentalpha/agentalpha-contract/contracts/alpha/alphaconst"
)

// Payload is the revealable content of a signal. Prices are integers in the
// token's minor unit.
type Payload struct {
	Token          string
	Direction      int
	EntryPrice     int64
	TakeProfit     int64
	StopLoss       int64
	TimeframeHours int
	Confidence     int
}

// Validate checks the payload against the same bounds the contract enforces
// in revealSignal.
func (p Payload) Validate() error {
	if len(p.Token) > alphaconst.MaxTokenLen {
		return errors.New(alphaconst.ErrTokenTooLong)
	}
	if p.Direction != alphaconst.DirectionBuy && p.Direction != alphaconst.DirectionSell {
		return errors.New(alphaconst.ErrInvalidDirection)
	}
	if p.TimeframeHours < alphaconst.MinTimeframeHours || p.TimeframeHours > alphaconst.MaxTimeframeHours {
		return errors.New(alphaconst.ErrInvalidTimeframe)
	}
	if p.Confidence < 0 || p.Confidence > alphaconst.MaxConfidence {
		return errors.New(alphaconst.ErrInvalidConfidence)
	}
	if p.EntryPrice < 0 || p.TakeProfit < 0 || p.StopLoss < 0 {
		return errors.New(alphaconst.ErrInvalidPrice)
	}
	return nil
}

// Canonical returns the canonical v2 byte encoding of the payload,
// `token:direction:entry:takeProfit:stopLoss:timeframe:confidence` with all
// numbers in plain decimal. It is byte-for-byte the encoding the contract
// hashes in revealSignal.
func (p Payload) Canonical() []byte {
	s := p.Token + ":" +
		strconv.Itoa(p.Direction) + ":" +
		strconv.FormatInt(p.EntryPrice, 10) + ":" +
		strconv.FormatInt(p.TakeProfit, 10) + ":" +
		strconv.FormatInt(p.StopLoss, 10) + ":" +
		strconv.Itoa(p.TimeframeHours) + ":" +
		strconv.Itoa(p.Confidence)

	return []byte(s)
}

// Hash returns the SHA-256 commitment digest of the canonical encoding,
// suitable as the signalHash argument of commitSignal.
func (p Payload) Hash() [32]byte {
	return sha256.Sum256(p.Canonical())
}

// ParseDirection converts a human-readable direction into its protocol
// code.
func ParseDirection(s string) (int, error) {
	switch s {
	case "buy", "BUY":
		return alphaconst.DirectionBuy, nil
	case "sell", "SELL":
		return alphaconst.DirectionSell, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// ParseOutcome converts a human-readable outcome into its protocol code.
func ParseOutcome(s string) (int, error) {
	switch s {
	case "target", "TARGET_HIT":
		return alphaconst.OutcomeTargetHit, nil
	case "stop", "STOP_HIT":
		return alphaconst.OutcomeStopHit, nil
	case "expired", "EXPIRED":
		return alphaconst.OutcomeExpired, nil
	}
	return 0, fmt.Errorf("unknown outcome %q", s)
}
