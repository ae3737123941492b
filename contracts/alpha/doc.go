/*
Package alpha implements AgentAlpha contract, a commit-reveal reputation
ledger for predictive trading signals.

A provider registers once per owner account, then publishes SHA-256
commitments to signals before their outcome is knowable. After the fact the
provider reveals the exact payload, which is re-encoded and re-hashed by the
contract and accepted only if the digest equals the committed one, so a
prediction cannot be swapped after commit time. A designated oracle account
records the outcome of each revealed signal, which atomically bumps the
provider's reputation counters in the same transaction. Commitment records
are never deleted and form a permanent audit trail.

The evaluation window of a signal (timeframeHours) is advisory data for the
oracle; the contract does not schedule anything on its expiry.

# Contract notifications

ProviderRegistered notification. This notification is produced when a new
provider is registered.

	ProviderRegistered
	  - name: provider
	    type: Hash160
	  - name: name
	    type: String
	  - name: endpoint
	    type: String

SignalCommitted notification. This notification is produced when a provider
commits a new signal hash.

	SignalCommitted
	  - name: provider
	    type: Hash160
	  - name: signalHash
	    type: Hash256
	  - name: committedAt
	    type: Integer

SignalRevealed notification. This notification is produced when a commitment
is successfully revealed; it carries the full payload.

	SignalRevealed
	  - name: provider
	    type: Hash160
	  - name: signalHash
	    type: Hash256
	  - name: token
	    type: String
	  - name: direction
	    type: Integer
	  - name: entryPrice
	    type: Integer
	  - name: takeProfit
	    type: Integer
	  - name: stopLoss
	    type: Integer
	  - name: timeframeHours
	    type: Integer
	  - name: confidence
	    type: Integer

OutcomeRecorded notification. This notification is produced when the oracle
resolves a revealed signal; it carries the post-update provider totals so
that an off-chain indexer can reconstruct reputation without reading
storage.

	OutcomeRecorded
	  - name: provider
	    type: Hash160
	  - name: signalHash
	    type: Hash256
	  - name: outcome
	    type: Integer
	  - name: wasCorrect
	    type: Boolean
	  - name: returnBps
	    type: Integer
	  - name: totalSignals
	    type: Integer
	  - name: correctSignals
	    type: Integer

OracleDesignated notification. This notification is produced when committee
rotates the outcome oracle.

	OracleDesignated
	  - name: oracle
	    type: Hash160
*/
package alpha

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'p' + 20-byte owner script hash -> std.Serialize(Provider)
   registered providers with their reputation counters
 - 's' + 20-byte owner script hash + 32-byte signal hash -> std.Serialize(SignalCommitment)
   commitment records in any of the three phases
 - 'oracle' -> interop.Hash160
   account authorized to record outcomes
 - 'encVersion' -> int
   version of the canonical reveal-payload encoding (2)

Record keys are pure functions of stable identifiers, so any caller can
compute a record location without an index, and key collision on creation is
what enforces one-record-per-identity.

# Commit-reveal lifecycle
Each 's' record moves through Committed -> Revealed -> Resolved, each edge
exactly once. Guards are checked before the first write and a panic aborts
the whole transaction, so a failed transition leaves both the commitment and
the provider record untouched.
*/
