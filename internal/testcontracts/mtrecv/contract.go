package mtrecv

import (
	"github.com/nspcc-dev/multitoken-contract/common"
	"github.com/nspcc-dev/multitoken-contract/contracts/multitoken/multitokenconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Behavior modes recognized in the transfer data argument.
const (
	// modeReject makes the hook return a wrong acknowledgment.
	modeReject = "reject"
	// modeAbort makes the hook terminate abnormally.
	modeAbort = "abort"
	// modeReenter makes the hook call balanceOf on the calling ledger
	// before acknowledging, recording the balance it observed.
	modeReenter = "reenter"
)

type Call struct {
	Operator interop.Hash160
	From     interop.Hash160
	ID       int
	Amount   int
	// Observed is the receiver's own balance as seen by a reentrant
	// balanceOf call, -1 otherwise.
	Observed int
}

type BatchCall struct {
	Operator interop.Hash160
	From     interop.Hash160
	IDs      []int
	Amounts  []int
}

func OnMultiTokenReceived(operator, from interop.Hash160, id, amount int, data any) []byte {
	mode := modeOf(data)
	if mode == modeAbort {
		panic("receiver aborted")
	}

	observed := -1
	if mode == modeReenter {
		ledger := runtime.GetCallingScriptHash()
		self := runtime.GetExecutingScriptHash()
		observed = contract.Call(ledger, "balanceOf", contract.ReadOnly, self, id).(int)
	}

	common.SetSerialized(storage.GetContext(), "single", Call{
		Operator: operator,
		From:     from,
		ID:       id,
		Amount:   amount,
		Observed: observed,
	})

	if mode == modeReject {
		return []byte("no")
	}
	return []byte(multitokenconst.ReceivedSentinel)
}

func OnMultiTokenBatchReceived(operator, from interop.Hash160, ids, amounts []int, data any) []byte {
	mode := modeOf(data)
	if mode == modeAbort {
		panic("receiver aborted")
	}

	common.SetSerialized(storage.GetContext(), "batch", BatchCall{
		Operator: operator,
		From:     from,
		IDs:      ids,
		Amounts:  amounts,
	})

	if mode == modeReject {
		return []byte("no")
	}
	return []byte(multitokenconst.BatchReceivedSentinel)
}

func Get() Call {
	val := storage.Get(storage.GetReadOnlyContext(), "single")
	if val == nil {
		return Call{}
	}
	return std.Deserialize(val.([]byte)).(Call)
}

func GetBatch() BatchCall {
	val := storage.Get(storage.GetReadOnlyContext(), "batch")
	if val == nil {
		return BatchCall{}
	}
	return std.Deserialize(val.([]byte)).(BatchCall)
}

func Verify() bool {
	return true
}

func modeOf(data any) string {
	if data == nil {
		return ""
	}
	return string(data.([]byte))
}
