package alpha

import (
	"github.com/agentalpha/agentalpha-contract/common"
	"github.com/agentalpha/agentalpha-contract/contracts/alpha/alphaconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/crypto"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

type (
	// Provider is a registered signal provider together with its
	// accumulated reputation counters. Counters only ever change via
	// RecordOutcome.
	Provider struct {
		// Script hash of the controlling account.
		Owner interop.Hash160
		// Display name, at most alphaconst.MaxNameLen characters.
		Name string
		// Service endpoint URL, at most alphaconst.MaxEndpointLen characters.
		Endpoint string
		// Category tag codes, at most alphaconst.MaxCategories entries.
		Categories []int
		// Price per signal in minimal fee units.
		Price int
		// Number of resolved signals.
		TotalSignals int
		// Number of resolved signals classified as correct.
		CorrectSignals int
		// Cumulative return of resolved signals in basis points, signed.
		TotalReturnBps int
		// Block timestamps of registration and last mutation.
		CreatedAt int
		UpdatedAt int
	}

	// SignalCommitment is a single commit-reveal record. It is created at
	// commit time, extended with the payload at reveal time and finalized
	// with the outcome at resolution time. Records are never deleted and
	// serve as a permanent audit trail.
	SignalCommitment struct {
		// Owner of the committing provider.
		Provider interop.Hash160
		// SHA-256 digest of the canonical payload encoding.
		SignalHash  interop.Hash256
		CommittedAt int
		Revealed    bool
		// OutcomeRecorded implies Revealed.
		OutcomeRecorded bool

		// Payload, zero until revealed.
		Token          string
		Direction      int
		EntryPrice     int
		TakeProfit     int
		StopLoss       int
		TimeframeHours int
		Confidence     int
		RevealedAt     int

		// Resolution, zero until the outcome is recorded.
		Outcome     int
		FinalPrice  int
		WasCorrect  bool
		ReturnBps   int
		EvaluatedAt int
	}
)

const (
	providerKeyPrefix = 'p'
	signalKeyPrefix   = 's'

	oracleKey          = "oracle"
	encodingVersionKey = "encVersion"
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()

	if isUpdate {
		args := data.([]any)
		version := args[len(args)-1].(int)

		common.CheckVersion(version)
		return
	}

	var oracle interop.Hash160

	args := data.([]any)
	if len(args) >= 1 && len(args[0].(interop.Hash160)) == interop.Hash160Len {
		oracle = args[0].(interop.Hash160)
	} else {
		oracle = common.CommitteeAddress()
	}

	storage.Put(ctx, oracleKey, oracle)
	storage.Put(ctx, encodingVersionKey, alphaconst.EncodingVersion)

	runtime.Log("alpha contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("alpha contract updated")
}

// RegisterProvider method creates a provider record for the owner account.
// One record per owner: repeated registration panics with
// alphaconst.ErrAlreadyRegistered. Reputation counters start at zero.
//
// It can be invoked only by the owner account itself.
func RegisterProvider(owner interop.Hash160, name string, endpoint string, categories []int, price int) {
	ctx := storage.GetContext()

	common.CheckOwnerWitness(owner)

	if len(name) > alphaconst.MaxNameLen {
		panic(alphaconst.ErrNameTooLong)
	}
	if len(endpoint) > alphaconst.MaxEndpointLen {
		panic(alphaconst.ErrEndpointTooLong)
	}
	if len(categories) > alphaconst.MaxCategories {
		panic(alphaconst.ErrTooManyCategories)
	}
	if price < 0 {
		panic(alphaconst.ErrInvalidPrice)
	}

	key := providerKey(owner)
	if storage.Get(ctx, key) != nil {
		panic(alphaconst.ErrAlreadyRegistered)
	}

	now := runtime.GetTime()
	p := Provider{
		Owner:          owner,
		Name:           name,
		Endpoint:       endpoint,
		Categories:     categories,
		Price:          price,
		TotalSignals:   0,
		CorrectSignals: 0,
		TotalReturnBps: 0,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	common.SetSerialized(ctx, key, p)

	runtime.Log("registered new signal provider")
	runtime.Notify("ProviderRegistered", owner, name, endpoint)
}

// UpdateProvider method changes the mutable provider metadata. An empty name
// or endpoint and a negative price leave the corresponding field untouched.
// Reputation counters cannot be changed by this method.
//
// It can be invoked only by the owner account.
func UpdateProvider(owner interop.Hash160, name string, endpoint string, price int) {
	ctx := storage.GetContext()

	common.CheckOwnerWitness(owner)

	key := providerKey(owner)
	p := getProvider(ctx, key)

	if len(name) != 0 {
		if len(name) > alphaconst.MaxNameLen {
			panic(alphaconst.ErrNameTooLong)
		}
		p.Name = name
	}
	if len(endpoint) != 0 {
		if len(endpoint) > alphaconst.MaxEndpointLen {
			panic(alphaconst.ErrEndpointTooLong)
		}
		p.Endpoint = endpoint
	}
	if price >= 0 {
		p.Price = price
	}

	p.UpdatedAt = runtime.GetTime()
	common.SetSerialized(ctx, key, p)
}

// CommitSignal method publishes a commitment to a not yet revealed signal.
// SignalHash must be the SHA-256 digest of the canonical payload encoding,
// see CalculateSignalHash. The (provider, hash) pair is the record identity:
// committing the same hash twice panics with
// alphaconst.ErrDuplicateCommitment.
//
// It can be invoked only by the owner of a registered provider.
func CommitSignal(owner interop.Hash160, signalHash interop.Hash256) {
	ctx := storage.GetContext()

	common.CheckOwnerWitness(owner)

	if len(signalHash) != interop.Hash256Len {
		panic(alphaconst.ErrInvalidHash)
	}
	if storage.Get(ctx, providerKey(owner)) == nil {
		panic(alphaconst.ErrProviderNotFound)
	}

	key := signalKey(owner, signalHash)
	if storage.Get(ctx, key) != nil {
		panic(alphaconst.ErrDuplicateCommitment)
	}

	now := runtime.GetTime()
	c := SignalCommitment{
		Provider:    owner,
		SignalHash:  signalHash,
		CommittedAt: now,
	}
	common.SetSerialized(ctx, key, c)

	runtime.Log("committed new signal")
	runtime.Notify("SignalCommitted", owner, signalHash, now)
}

// RevealSignal method discloses the payload of a previously committed
// signal. The payload is validated against the protocol bounds, canonically
// encoded and hashed; the digest must equal the committed hash, otherwise
// the method panics with alphaconst.ErrHashMismatch and nothing is stored.
// Revealing is one-shot: a second call panics with
// alphaconst.ErrAlreadyRevealed.
//
// It can be invoked only by the owner of the committing provider.
func RevealSignal(owner interop.Hash160, signalHash interop.Hash256, token string, direction int,
	entryPrice int, takeProfit int, stopLoss int, timeframeHours int, confidence int) {
	ctx := storage.GetContext()

	common.CheckOwnerWitness(owner)

	key := signalKey(owner, signalHash)
	c := getSignal(ctx, key)

	if c.Revealed {
		panic(alphaconst.ErrAlreadyRevealed)
	}
	if len(token) > alphaconst.MaxTokenLen {
		panic(alphaconst.ErrTokenTooLong)
	}
	if direction != alphaconst.DirectionBuy && direction != alphaconst.DirectionSell {
		panic(alphaconst.ErrInvalidDirection)
	}
	if timeframeHours < alphaconst.MinTimeframeHours || timeframeHours > alphaconst.MaxTimeframeHours {
		panic(alphaconst.ErrInvalidTimeframe)
	}
	if confidence < 0 || confidence > alphaconst.MaxConfidence {
		panic(alphaconst.ErrInvalidConfidence)
	}
	if entryPrice < 0 || takeProfit < 0 || stopLoss < 0 {
		panic(alphaconst.ErrInvalidPrice)
	}

	digest := CalculateSignalHash(token, direction, entryPrice, takeProfit, stopLoss, timeframeHours, confidence)
	if !common.BytesEqual(digest, c.SignalHash) {
		panic(alphaconst.ErrHashMismatch)
	}

	c.Revealed = true
	c.Token = token
	c.Direction = direction
	c.EntryPrice = entryPrice
	c.TakeProfit = takeProfit
	c.StopLoss = stopLoss
	c.TimeframeHours = timeframeHours
	c.Confidence = confidence
	c.RevealedAt = runtime.GetTime()
	common.SetSerialized(ctx, key, c)

	runtime.Log("revealed signal")
	runtime.Notify("SignalRevealed", owner, signalHash, token, direction,
		entryPrice, takeProfit, stopLoss, timeframeHours, confidence)
}

// RecordOutcome method finalizes a revealed signal and accumulates the
// provider's reputation. TargetHit counts as correct, StopHit as wrong and
// Expired as correct only with a strictly positive return. The commitment
// and the provider counters are written in the same transaction, so either
// both are updated or neither is. Recording is one-shot: a second call
// panics with alphaconst.ErrAlreadyResolved.
//
// It can be invoked only by the designated oracle account, see Oracle.
func RecordOutcome(owner interop.Hash160, signalHash interop.Hash256, outcome int, finalPrice int, returnBps int) {
	ctx := storage.GetContext()

	oracle := storage.Get(ctx, oracleKey).(interop.Hash160)
	common.CheckOracleWitness(oracle)

	key := signalKey(owner, signalHash)
	c := getSignal(ctx, key)

	if !c.Revealed {
		panic(alphaconst.ErrNotRevealed)
	}
	if c.OutcomeRecorded {
		panic(alphaconst.ErrAlreadyResolved)
	}
	if outcome < alphaconst.OutcomeTargetHit || outcome > alphaconst.OutcomeExpired {
		panic(alphaconst.ErrInvalidOutcome)
	}

	pKey := providerKey(owner)
	p := getProvider(ctx, pKey)

	wasCorrect := false
	switch outcome {
	case alphaconst.OutcomeTargetHit:
		wasCorrect = true
	case alphaconst.OutcomeStopHit:
		wasCorrect = false
	case alphaconst.OutcomeExpired:
		wasCorrect = returnBps > 0
	}

	now := runtime.GetTime()

	c.OutcomeRecorded = true
	c.Outcome = outcome
	c.FinalPrice = finalPrice
	c.WasCorrect = wasCorrect
	c.ReturnBps = returnBps
	c.EvaluatedAt = now

	p.TotalSignals = p.TotalSignals + 1
	if wasCorrect {
		p.CorrectSignals = p.CorrectSignals + 1
	}
	p.TotalReturnBps = p.TotalReturnBps + returnBps
	p.UpdatedAt = now

	common.SetSerialized(ctx, key, c)
	common.SetSerialized(ctx, pKey, p)

	runtime.Log("recorded signal outcome")
	runtime.Notify("OutcomeRecorded", owner, signalHash, outcome, wasCorrect,
		returnBps, p.TotalSignals, p.CorrectSignals)
}

// CalculateSignalHash method computes the commitment digest of a signal
// payload: the SHA-256 hash of
// `token:direction:entry:takeProfit:stopLoss:timeframe:confidence` with all
// numbers in plain decimal. Providers normally precompute the digest
// offline, this method exists so that any client can cross-check its
// encoder against the contract.
func CalculateSignalHash(token string, direction int, entryPrice int, takeProfit int,
	stopLoss int, timeframeHours int, confidence int) interop.Hash256 {
	data := token + ":" +
		std.Itoa(direction, 10) + ":" +
		std.Itoa(entryPrice, 10) + ":" +
		std.Itoa(takeProfit, 10) + ":" +
		std.Itoa(stopLoss, 10) + ":" +
		std.Itoa(timeframeHours, 10) + ":" +
		std.Itoa(confidence, 10)

	return crypto.Sha256([]byte(data))
}

// GetProvider method returns the provider record of the owner account.
//
// If the provider doesn't exist, it panics with alphaconst.ErrProviderNotFound.
func GetProvider(owner interop.Hash160) Provider {
	ctx := storage.GetReadOnlyContext()
	return getProvider(ctx, providerKey(owner))
}

// GetSignal method returns the commitment record of the (provider, hash)
// pair regardless of its phase.
//
// If the record doesn't exist, it panics with alphaconst.ErrCommitmentNotFound.
func GetSignal(owner interop.Hash160, signalHash interop.Hash256) SignalCommitment {
	ctx := storage.GetReadOnlyContext()
	return getSignal(ctx, signalKey(owner, signalHash))
}

// HitRateBps method returns the provider's hit rate in basis points:
// correct signals over total resolved signals, zero before the first
// resolution.
func HitRateBps(owner interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	p := getProvider(ctx, providerKey(owner))

	if p.TotalSignals == 0 {
		return 0
	}
	return p.CorrectSignals * 10000 / p.TotalSignals
}

// AvgReturnBps method returns the provider's average per-signal return in
// basis points, truncated toward zero, zero before the first resolution.
func AvgReturnBps(owner interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	p := getProvider(ctx, providerKey(owner))

	if p.TotalSignals == 0 {
		return 0
	}
	return p.TotalReturnBps / p.TotalSignals
}

// ProviderCount method returns the number of registered providers.
func ProviderCount() int {
	count := 0
	ctx := storage.GetReadOnlyContext()
	it := storage.Find(ctx, []byte{providerKeyPrefix}, storage.KeysOnly)
	for iterator.Next(it) {
		count++
	}
	return count
}

// ListSignals method returns an iterator over all commitment records of the
// provider, in any phase. The iterator items are SignalCommitment
// structures.
func ListSignals(owner interop.Hash160) iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	key := append([]byte{signalKeyPrefix}, owner...)
	return storage.Find(ctx, key, storage.ValuesOnly|storage.DeserializeValues)
}

// Oracle method returns the account currently authorized to record signal
// outcomes.
func Oracle() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, oracleKey).(interop.Hash160)
}

// SetOracle method designates a new outcome oracle. It can be invoked only
// by committee.
func SetOracle(addr interop.Hash160) {
	if !common.HasUpdateAccess() {
		panic("only committee can designate oracle")
	}
	if len(addr) != interop.Hash160Len {
		panic("invalid oracle address")
	}

	ctx := storage.GetContext()
	storage.Put(ctx, oracleKey, addr)

	runtime.Log("designated new outcome oracle")
	runtime.Notify("OracleDesignated", addr)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func providerKey(owner interop.Hash160) []byte {
	return append([]byte{providerKeyPrefix}, owner...)
}

func signalKey(owner interop.Hash160, signalHash interop.Hash256) []byte {
	key := append([]byte{signalKeyPrefix}, owner...)
	return append(key, signalHash...)
}

func getProvider(ctx storage.Context, key []byte) Provider {
	data := storage.Get(ctx, key)
	if data == nil {
		panic(alphaconst.ErrProviderNotFound)
	}
	return std.Deserialize(data.([]byte)).(Provider)
}

func getSignal(ctx storage.Context, key []byte) SignalCommitment {
	data := storage.Get(ctx, key)
	if data == nil {
		panic(alphaconst.ErrCommitmentNotFound)
	}
	return std.Deserialize(data.([]byte)).(SignalCommitment)
}
