// Command signal-hash computes the commitment digest of a signal payload.
// Providers run it offline before invoking commitSignal, so the payload
// never leaves their machine until reveal time.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"

	"github.com/agentalpha/agentalpha-contract/rpc/alpha"
	"github.com/mr-tron/base58"
)

func main() {
	token := flag.String("token", "", "Token symbol, e.g. BTC (max 16 chars)")
	direction := flag.String("direction", "buy", "Signal direction: buy or sell")
	entry := flag.Int64("entry", -1, "Entry price in minor units")
	takeProfit := flag.Int64("tp", -1, "Take-profit price in minor units")
	stopLoss := flag.Int64("sl", -1, "Stop-loss price in minor units")
	timeframe := flag.Int("timeframe", 24, "Evaluation window in hours (1-72)")
	confidence := flag.Int("confidence", 0, "Confidence percent (0-100)")

	flag.Parse()

	switch {
	case *token == "":
		log.Fatal("missing token symbol")
	case *entry < 0 || *takeProfit < 0 || *stopLoss < 0:
		log.Fatal("missing or negative price")
	}

	dir, err := alpha.ParseDirection(*direction)
	if err != nil {
		log.Fatal(err)
	}

	p := alpha.Payload{
		Token:          *token,
		Direction:      dir,
		EntryPrice:     *entry,
		TakeProfit:     *takeProfit,
		StopLoss:       *stopLoss,
		TimeframeHours: *timeframe,
		Confidence:     *confidence,
	}
	if err := p.Validate(); err != nil {
		log.Fatal(err)
	}

	h := p.Hash()

	fmt.Printf("canonical: %s\n", p.Canonical())
	fmt.Printf("hex:       %s\n", hex.EncodeToString(h[:]))
	fmt.Printf("base58:    %s\n", base58.Encode(h[:]))
}
