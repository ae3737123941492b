package alphaconst

const (
	// EncodingVersion is the version of the canonical reveal-payload
	// encoding the contract accepts. Version 1 (boolean-outcome scheme
	// with no reveal phase) is a dead protocol revision and is not
	// supported.
	EncodingVersion = 2

	// MaxNameLen is the maximum length of a provider name.
	MaxNameLen = 64
	// MaxEndpointLen is the maximum length of a provider endpoint URL.
	MaxEndpointLen = 256
	// MaxCategories is the maximum number of category tags per provider.
	MaxCategories = 8
	// MaxTokenLen is the maximum length of a revealed token symbol.
	MaxTokenLen = 16

	// MinTimeframeHours and MaxTimeframeHours bound the advisory
	// evaluation window of a revealed signal.
	MinTimeframeHours = 1
	MaxTimeframeHours = 72

	// MaxConfidence bounds the revealed confidence value (percent).
	MaxConfidence = 100

	// DirectionBuy and DirectionSell are the two signal directions.
	DirectionBuy  = 0
	DirectionSell = 1

	// OutcomeTargetHit, OutcomeStopHit and OutcomeExpired are the
	// outcomes an oracle can record for a revealed signal.
	OutcomeTargetHit = 1
	OutcomeStopHit   = 2
	OutcomeExpired   = 3
)

const (
	// ErrNameTooLong is returned on provider name exceeding MaxNameLen.
	ErrNameTooLong = "provider name too long"
	// ErrEndpointTooLong is returned on endpoint exceeding MaxEndpointLen.
	ErrEndpointTooLong = "provider endpoint too long"
	// ErrTooManyCategories is returned on more than MaxCategories tags.
	ErrTooManyCategories = "too many provider categories"
	// ErrInvalidPrice is returned on a negative signal price.
	ErrInvalidPrice = "invalid signal price"
	// ErrAlreadyRegistered is returned on repeated registration of the
	// same owner identity.
	ErrAlreadyRegistered = "identity already registered"
	// ErrProviderNotFound is returned if the provider record is missing.
	ErrProviderNotFound = "provider not registered"

	// ErrInvalidHash is returned on a signal hash of the wrong length.
	ErrInvalidHash = "invalid signal hash"
	// ErrDuplicateCommitment is returned on repeated commit of the same
	// (provider, hash) pair.
	ErrDuplicateCommitment = "signal hash already committed"
	// ErrCommitmentNotFound is returned if the commitment record is missing.
	ErrCommitmentNotFound = "signal commitment not found"

	// ErrTokenTooLong is returned on token symbol exceeding MaxTokenLen.
	ErrTokenTooLong = "token symbol too long"
	// ErrInvalidDirection is returned on a direction outside {BUY, SELL}.
	ErrInvalidDirection = "invalid signal direction"
	// ErrInvalidTimeframe is returned on a timeframe outside 1..72 hours.
	ErrInvalidTimeframe = "invalid timeframe"
	// ErrInvalidConfidence is returned on a confidence outside 0..100.
	ErrInvalidConfidence = "invalid confidence"
	// ErrAlreadyRevealed is returned on repeated reveal of a commitment.
	ErrAlreadyRevealed = "signal already revealed"
	// ErrHashMismatch is returned when the canonical digest of the
	// revealed payload differs from the committed hash.
	ErrHashMismatch = "revealed data does not match commitment"

	// ErrNotRevealed is returned on resolving a commitment that has not
	// been revealed yet.
	ErrNotRevealed = "signal not revealed yet"
	// ErrAlreadyResolved is returned on repeated outcome recording.
	ErrAlreadyResolved = "outcome already recorded"
	// ErrInvalidOutcome is returned on an outcome outside the defined set.
	ErrInvalidOutcome = "invalid outcome"
)
