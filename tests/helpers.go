package tests

import (
	"math/rand"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func randomBytes(n int) []byte {
	a := make([]byte, n)
	rand.Read(a) //nolint:staticcheck // SA1019: rand.Read has been deprecated since Go 1.20
	return a
}

// provider mirrors the contract's Provider structure for test-side parsing
// of getProvider results.
type provider struct {
	owner          []byte
	name           string
	endpoint       string
	categories     []int64
	price          int64
	totalSignals   int64
	correctSignals int64
	totalReturnBps int64
	createdAt      int64
	updatedAt      int64
}

// signal mirrors the contract's SignalCommitment structure for test-side
// parsing of getSignal results.
type signal struct {
	provider        []byte
	signalHash      []byte
	committedAt     int64
	revealed        bool
	outcomeRecorded bool
	token           string
	direction       int64
	entryPrice      int64
	takeProfit      int64
	stopLoss        int64
	timeframeHours  int64
	confidence      int64
	revealedAt      int64
	outcome         int64
	finalPrice      int64
	wasCorrect      bool
	returnBps       int64
	evaluatedAt     int64
}

func itemBytes(t *testing.T, item stackitem.Item) []byte {
	b, err := item.TryBytes()
	require.NoError(t, err)
	return b
}

func itemInt(t *testing.T, item stackitem.Item) int64 {
	n, err := item.TryInteger()
	require.NoError(t, err)
	return n.Int64()
}

func itemBool(t *testing.T, item stackitem.Item) bool {
	b, err := item.TryBool()
	require.NoError(t, err)
	return b
}

func getProvider(t *testing.T, c *neotest.ContractInvoker, owner util.Uint160) provider {
	res, err := c.TestInvoke(t, "getProvider", owner)
	require.NoError(t, err)

	items := res.Pop().Array()
	require.Len(t, items, 10)

	var categories []int64
	for _, item := range items[3].Value().([]stackitem.Item) {
		categories = append(categories, itemInt(t, item))
	}

	return provider{
		owner:          itemBytes(t, items[0]),
		name:           string(itemBytes(t, items[1])),
		endpoint:       string(itemBytes(t, items[2])),
		categories:     categories,
		price:          itemInt(t, items[4]),
		totalSignals:   itemInt(t, items[5]),
		correctSignals: itemInt(t, items[6]),
		totalReturnBps: itemInt(t, items[7]),
		createdAt:      itemInt(t, items[8]),
		updatedAt:      itemInt(t, items[9]),
	}
}

func getSignal(t *testing.T, c *neotest.ContractInvoker, owner util.Uint160, signalHash []byte) signal {
	res, err := c.TestInvoke(t, "getSignal", owner, signalHash)
	require.NoError(t, err)

	items := res.Pop().Array()
	require.Len(t, items, 18)

	return signal{
		provider:        itemBytes(t, items[0]),
		signalHash:      itemBytes(t, items[1]),
		committedAt:     itemInt(t, items[2]),
		revealed:        itemBool(t, items[3]),
		outcomeRecorded: itemBool(t, items[4]),
		token:           string(itemBytes(t, items[5])),
		direction:       itemInt(t, items[6]),
		entryPrice:      itemInt(t, items[7]),
		takeProfit:      itemInt(t, items[8]),
		stopLoss:        itemInt(t, items[9]),
		timeframeHours:  itemInt(t, items[10]),
		confidence:      itemInt(t, items[11]),
		revealedAt:      itemInt(t, items[12]),
		outcome:         itemInt(t, items[13]),
		finalPrice:      itemInt(t, items[14]),
		wasCorrect:      itemBool(t, items[15]),
		returnBps:       itemInt(t, items[16]),
		evaluatedAt:     itemInt(t, items[17]),
	}
}
