package alpha

import (
	"github.com/agentalpha/agentalpha-contract/contracts/alpha/alphaconst"
)

const (
	// EncodingVersion is the canonical payload-encoding version produced
	// by Payload.Canonical and accepted by the contract.
	EncodingVersion = alphaconst.EncodingVersion

	// DirectionBuy and DirectionSell are the signal direction codes.
	DirectionBuy  = alphaconst.DirectionBuy
	DirectionSell = alphaconst.DirectionSell

	// OutcomeTargetHit, OutcomeStopHit and OutcomeExpired are the
	// outcome codes accepted by recordOutcome.
	OutcomeTargetHit = alphaconst.OutcomeTargetHit
	OutcomeStopHit   = alphaconst.OutcomeStopHit
	OutcomeExpired   = alphaconst.OutcomeExpired

	// ProviderNotFoundError is returned if the provider record is missing.
	ProviderNotFoundError = alphaconst.ErrProviderNotFound
	// CommitmentNotFoundError is returned if the commitment record is missing.
	CommitmentNotFoundError = alphaconst.ErrCommitmentNotFound
	// HashMismatchError is returned when a revealed payload does not
	// match its commitment; unlike a benign double submission it signals
	// a forgery attempt.
	HashMismatchError = alphaconst.ErrHashMismatch
)
