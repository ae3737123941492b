package common

import "github.com/nspcc-dev/neo-go/pkg/interop/runtime"

var (
	// ErrOwnerWitnessFailed appears when the method must be called
	// by the owner of the provider record but was not.
	ErrOwnerWitnessFailed = "owner witness check failed"
	// ErrOracleWitnessFailed appears when the method must be called
	// by the designated outcome oracle but was not.
	ErrOracleWitnessFailed = "oracle witness check failed"
	// ErrWitnessFailed appears when the method must be called
	// using certain public key but was not.
	ErrWitnessFailed = "witness check failed"
)

// CheckOwnerWitness checks witness of the passed caller.
// It panics with ErrOwnerWitnessFailed message on fail.
func CheckOwnerWitness(caller []byte) {
	checkWitnessWithPanic(caller, ErrOwnerWitnessFailed)
}

// CheckOracleWitness checks witness of the passed caller.
// It panics with ErrOracleWitnessFailed message on fail.
func CheckOracleWitness(caller []byte) {
	checkWitnessWithPanic(caller, ErrOracleWitnessFailed)
}

// CheckWitness checks witness of the passed caller.
// It panics with ErrWitnessFailed message on fail.
func CheckWitness(caller []byte) {
	checkWitnessWithPanic(caller, ErrWitnessFailed)
}

func checkWitnessWithPanic(caller []byte, panicMsg string) {
	if !runtime.CheckWitness(caller) {
		panic(panicMsg)
	}
}
