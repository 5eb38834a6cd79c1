package tests

import (
	"math/big"
	"path"
	"testing"

	"github.com/nspcc-dev/multitoken-contract/contracts/multitoken/multitokenconst"
	"github.com/nspcc-dev/multitoken-contract/rpc/multitoken"
	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

const multitokenPath = "../contracts/multitoken"
const mtrecvPath = "../internal/testcontracts/mtrecv"

func newMultitokenInvoker(t *testing.T) *neotest.ContractInvoker {
	e := newExecutor(t)
	ctr := neotest.CompileFile(t, e.CommitteeHash, multitokenPath, path.Join(multitokenPath, "config.yml"))
	e.DeployContract(t, ctr, nil)
	return e.CommitteeInvoker(ctr.Hash)
}

// deployReceiver compiles and deploys the test receiver contract next to the
// ledger and returns its invoker.
func deployReceiver(t *testing.T, c *neotest.ContractInvoker) *neotest.ContractInvoker {
	ctr := neotest.CompileFile(t, c.CommitteeHash, mtrecvPath, path.Join(mtrecvPath, "config.yml"))
	c.Executor.DeployContract(t, ctr, nil)
	return c.Executor.CommitteeInvoker(ctr.Hash)
}

func TestSupportsInterface(t *testing.T) {
	c := newMultitokenInvoker(t)

	c.Invoke(t, true, "supportsInterface", []byte(multitokenconst.CapabilityIntrospection))
	c.Invoke(t, true, "supportsInterface", []byte(multitokenconst.CapabilityLedger))
	c.Invoke(t, true, "supportsInterface", []byte(multitokenconst.CapabilityMetadata))
	c.Invoke(t, false, "supportsInterface", []byte{0xde, 0xad, 0xbe, 0xef})
	c.Invoke(t, false, "supportsInterface", []byte{})
}

func TestBalanceOfDefault(t *testing.T) {
	c := newMultitokenInvoker(t)

	acc := c.NewAccount(t)
	c.Invoke(t, 0, "balanceOf", acc.ScriptHash(), 1)
	c.Invoke(t, 0, "balanceOf", acc.ScriptHash(), 42)
	c.Invoke(t, 0, "totalSupply", 1)

	c.InvokeFail(t, "invalid owner", "balanceOf", []byte{1, 2, 3}, 1)
}

func TestMint(t *testing.T) {
	c := newMultitokenInvoker(t)

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)

	cAcc.Invoke(t, stackitem.Null{}, "mint", acc.ScriptHash(), 1, 100, nil)
	c.Invoke(t, 100, "balanceOf", acc.ScriptHash(), 1)
	c.Invoke(t, 100, "totalSupply", 1)

	// Repeated mint accumulates.
	cAcc.Invoke(t, stackitem.Null{}, "mint", acc.ScriptHash(), 1, 1, nil)
	c.Invoke(t, 101, "balanceOf", acc.ScriptHash(), 1)
	c.Invoke(t, 101, "totalSupply", 1)

	cAcc.InvokeFail(t, "zero address recipient", "mint", util.Uint160{}, 1, 100, nil)
	cAcc.InvokeFail(t, "negative amount", "mint", acc.ScriptHash(), 1, -5, nil)

	// Minting into a foreign account needs that account's witness.
	other := c.NewAccount(t)
	cAcc.InvokeFail(t, "owner witness check failed", "mint", other.ScriptHash(), 1, 100, nil)
}

func TestTransfer(t *testing.T) {
	c := newMultitokenInvoker(t)

	accA := c.NewAccount(t)
	accB := c.NewAccount(t)
	cA := c.WithSigners(accA)

	cA.Invoke(t, stackitem.Null{}, "mint", accA.ScriptHash(), 1, 100, nil)
	cA.Invoke(t, stackitem.Null{}, "safeTransferFrom",
		accA.ScriptHash(), accA.ScriptHash(), accB.ScriptHash(), 1, 40, nil)

	c.Invoke(t, 60, "balanceOf", accA.ScriptHash(), 1)
	c.Invoke(t, 40, "balanceOf", accB.ScriptHash(), 1)
	c.Invoke(t, 100, "totalSupply", 1)

	cA.InvokeFail(t, "insufficient balance", "safeTransferFrom",
		accA.ScriptHash(), accA.ScriptHash(), accB.ScriptHash(), 1, 61, nil)
	c.Invoke(t, 60, "balanceOf", accA.ScriptHash(), 1)
	c.Invoke(t, 40, "balanceOf", accB.ScriptHash(), 1)

	// Zero recipient is rejected before anything else is looked at.
	cA.InvokeFail(t, "zero address recipient", "safeTransferFrom",
		accA.ScriptHash(), accA.ScriptHash(), util.Uint160{}, 1, 1, nil)
}

func TestTransferAuthorization(t *testing.T) {
	c := newMultitokenInvoker(t)

	accA := c.NewAccount(t)
	accB := c.NewAccount(t)
	cA := c.WithSigners(accA)
	cB := c.WithSigners(accB)

	cA.Invoke(t, stackitem.Null{}, "mint", accA.ScriptHash(), 1, 100, nil)

	// Unapproved operator.
	cB.InvokeFail(t, "caller not permitted", "safeTransferFrom",
		accB.ScriptHash(), accA.ScriptHash(), accB.ScriptHash(), 1, 10, nil)

	// Operator without its own witness.
	cA.InvokeFail(t, "caller not permitted", "safeTransferFrom",
		accB.ScriptHash(), accA.ScriptHash(), accB.ScriptHash(), 1, 10, nil)

	c.Invoke(t, 100, "balanceOf", accA.ScriptHash(), 1)
}

func TestApprovalForAll(t *testing.T) {
	c := newMultitokenInvoker(t)

	accA := c.NewAccount(t)
	accB := c.NewAccount(t)
	cA := c.WithSigners(accA)
	cB := c.WithSigners(accB)

	c.Invoke(t, false, "isApprovedForAll", accA.ScriptHash(), accB.ScriptHash())

	// Only the owner can write their own approval row.
	cB.InvokeFail(t, "owner witness check failed", "setApprovalForAll",
		accA.ScriptHash(), accB.ScriptHash(), true)

	cA.Invoke(t, stackitem.Null{}, "setApprovalForAll", accA.ScriptHash(), accB.ScriptHash(), true)
	c.Invoke(t, true, "isApprovedForAll", accA.ScriptHash(), accB.ScriptHash())

	// Re-setting the same value is legal.
	cA.Invoke(t, stackitem.Null{}, "setApprovalForAll", accA.ScriptHash(), accB.ScriptHash(), true)

	cA.Invoke(t, stackitem.Null{}, "mint", accA.ScriptHash(), 1, 100, nil)
	cB.Invoke(t, stackitem.Null{}, "safeTransferFrom",
		accB.ScriptHash(), accA.ScriptHash(), accB.ScriptHash(), 1, 30, nil)
	c.Invoke(t, 70, "balanceOf", accA.ScriptHash(), 1)
	c.Invoke(t, 30, "balanceOf", accB.ScriptHash(), 1)

	cA.Invoke(t, stackitem.Null{}, "setApprovalForAll", accA.ScriptHash(), accB.ScriptHash(), false)
	c.Invoke(t, false, "isApprovedForAll", accA.ScriptHash(), accB.ScriptHash())
	cB.InvokeFail(t, "caller not permitted", "safeTransferFrom",
		accB.ScriptHash(), accA.ScriptHash(), accB.ScriptHash(), 1, 30, nil)
}

func TestBalanceOfBatch(t *testing.T) {
	c := newMultitokenInvoker(t)

	accA := c.NewAccount(t)
	accB := c.NewAccount(t)
	cA := c.WithSigners(accA)

	cA.Invoke(t, stackitem.Null{}, "mint", accA.ScriptHash(), 1, 100, nil)
	cA.Invoke(t, stackitem.Null{}, "mint", accA.ScriptHash(), 2, 5, nil)

	expected := stackitem.NewArray([]stackitem.Item{
		stackitem.Make(100),
		stackitem.Make(5),
		stackitem.Make(0),
	})
	c.Invoke(t, expected, "balanceOfBatch",
		[]any{accA.ScriptHash(), accA.ScriptHash(), accB.ScriptHash()},
		[]any{1, 2, 1})

	c.InvokeFail(t, "arity mismatch", "balanceOfBatch",
		[]any{accA.ScriptHash(), accB.ScriptHash()},
		[]any{1})
}

func TestBatchTransfer(t *testing.T) {
	c := newMultitokenInvoker(t)

	accA := c.NewAccount(t)
	accB := c.NewAccount(t)
	cA := c.WithSigners(accA)

	cA.Invoke(t, stackitem.Null{}, "mintBatch", accA.ScriptHash(), []any{1, 2}, []any{100, 50}, nil)
	c.Invoke(t, 100, "balanceOf", accA.ScriptHash(), 1)
	c.Invoke(t, 50, "balanceOf", accA.ScriptHash(), 2)
	c.Invoke(t, 100, "totalSupply", 1)
	c.Invoke(t, 50, "totalSupply", 2)

	cA.Invoke(t, stackitem.Null{}, "safeBatchTransferFrom",
		accA.ScriptHash(), accA.ScriptHash(), accB.ScriptHash(), []any{1, 2}, []any{40, 50}, nil)
	c.Invoke(t, 60, "balanceOf", accA.ScriptHash(), 1)
	c.Invoke(t, 40, "balanceOf", accB.ScriptHash(), 1)
	c.Invoke(t, 0, "balanceOf", accA.ScriptHash(), 2)
	c.Invoke(t, 50, "balanceOf", accB.ScriptHash(), 2)

	cA.InvokeFail(t, "arity mismatch", "safeBatchTransferFrom",
		accA.ScriptHash(), accA.ScriptHash(), accB.ScriptHash(), []any{1, 2}, []any{40}, nil)
	c.Invoke(t, 60, "balanceOf", accA.ScriptHash(), 1)

	// Any failing item aborts the whole batch, earlier items included.
	cA.InvokeFail(t, "insufficient balance", "safeBatchTransferFrom",
		accA.ScriptHash(), accA.ScriptHash(), accB.ScriptHash(), []any{1, 2}, []any{10, 1}, nil)
	c.Invoke(t, 60, "balanceOf", accA.ScriptHash(), 1)
	c.Invoke(t, 40, "balanceOf", accB.ScriptHash(), 1)

	cA.InvokeFail(t, "arity mismatch", "mintBatch", accA.ScriptHash(), []any{1}, []any{1, 2}, nil)
}

func TestBatchTransferRepeatedID(t *testing.T) {
	c := newMultitokenInvoker(t)

	accA := c.NewAccount(t)
	accB := c.NewAccount(t)
	cA := c.WithSigners(accA)

	cA.Invoke(t, stackitem.Null{}, "mint", accA.ScriptHash(), 1, 10, nil)

	// Items are checked against the running balance: earlier debits in the
	// same batch are visible to later items with the same id.
	cA.InvokeFail(t, "insufficient balance", "safeBatchTransferFrom",
		accA.ScriptHash(), accA.ScriptHash(), accB.ScriptHash(), []any{1, 1}, []any{7, 4}, nil)
	c.Invoke(t, 10, "balanceOf", accA.ScriptHash(), 1)

	cA.Invoke(t, stackitem.Null{}, "safeBatchTransferFrom",
		accA.ScriptHash(), accA.ScriptHash(), accB.ScriptHash(), []any{1, 1}, []any{7, 3}, nil)
	c.Invoke(t, 0, "balanceOf", accA.ScriptHash(), 1)
	c.Invoke(t, 10, "balanceOf", accB.ScriptHash(), 1)
}

func TestBurn(t *testing.T) {
	c := newMultitokenInvoker(t)

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)

	cAcc.Invoke(t, stackitem.Null{}, "mint", acc.ScriptHash(), 1, 60, nil)
	cAcc.Invoke(t, stackitem.Null{}, "burn", acc.ScriptHash(), 1, 60)

	c.Invoke(t, 0, "balanceOf", acc.ScriptHash(), 1)
	c.Invoke(t, 0, "totalSupply", 1)

	cAcc.InvokeFail(t, "insufficient balance", "burn", acc.ScriptHash(), 1, 1)
	cAcc.InvokeFail(t, "zero address sender", "burn", util.Uint160{}, 1, 1)

	other := c.NewAccount(t)
	cAcc.InvokeFail(t, "owner witness check failed", "burn", other.ScriptHash(), 1, 1)
}

func TestBurnBatch(t *testing.T) {
	c := newMultitokenInvoker(t)

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)

	cAcc.Invoke(t, stackitem.Null{}, "mintBatch", acc.ScriptHash(), []any{1, 2}, []any{10, 20}, nil)
	cAcc.Invoke(t, stackitem.Null{}, "burnBatch", acc.ScriptHash(), []any{1, 2}, []any{10, 5})

	c.Invoke(t, 0, "balanceOf", acc.ScriptHash(), 1)
	c.Invoke(t, 15, "balanceOf", acc.ScriptHash(), 2)
	c.Invoke(t, 0, "totalSupply", 1)
	c.Invoke(t, 15, "totalSupply", 2)

	cAcc.InvokeFail(t, "arity mismatch", "burnBatch", acc.ScriptHash(), []any{1}, []any{1, 2})

	// A failing item rolls the whole batch back.
	cAcc.InvokeFail(t, "insufficient balance", "burnBatch", acc.ScriptHash(), []any{2, 2}, []any{10, 10})
	c.Invoke(t, 15, "balanceOf", acc.ScriptHash(), 2)
}

func TestMintBurnNotifications(t *testing.T) {
	c := newMultitokenInvoker(t)

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)

	// Mint carries the no-owner sentinel as `from` and the event decodes
	// with Hash160 typing intact.
	txHash := cAcc.Invoke(t, stackitem.Null{}, "mint", acc.ScriptHash(), 7, 3, nil)
	aer := c.CheckHalt(t, txHash, stackitem.Null{})
	require.Len(t, aer.Events, 1)
	require.Equal(t, "TransferSingle", aer.Events[0].Name)

	ev := new(multitoken.TransferSingleEvent)
	require.NoError(t, ev.FromStackItem(aer.Events[0].Item))
	require.Equal(t, acc.ScriptHash(), ev.Operator)
	require.Equal(t, util.Uint160{}, ev.From)
	require.Equal(t, acc.ScriptHash(), ev.To)
	require.Equal(t, big.NewInt(7), ev.ID)
	require.Equal(t, big.NewInt(3), ev.Amount)

	// Burn carries the sentinel as `to`.
	txHash = cAcc.Invoke(t, stackitem.Null{}, "burn", acc.ScriptHash(), 7, 3)
	aer = c.CheckHalt(t, txHash, stackitem.Null{})
	require.Len(t, aer.Events, 1)
	require.Equal(t, "TransferSingle", aer.Events[0].Name)

	ev = new(multitoken.TransferSingleEvent)
	require.NoError(t, ev.FromStackItem(aer.Events[0].Item))
	require.Equal(t, acc.ScriptHash(), ev.From)
	require.Equal(t, util.Uint160{}, ev.To)

	txHash = cAcc.Invoke(t, stackitem.Null{}, "mintBatch", acc.ScriptHash(), []any{1, 2}, []any{5, 6}, nil)
	aer = c.CheckHalt(t, txHash, stackitem.Null{})
	require.Len(t, aer.Events, 1)
	require.Equal(t, "TransferBatch", aer.Events[0].Name)

	bev := new(multitoken.TransferBatchEvent)
	require.NoError(t, bev.FromStackItem(aer.Events[0].Item))
	require.Equal(t, util.Uint160{}, bev.From)
	require.Equal(t, acc.ScriptHash(), bev.To)
	require.Equal(t, []*big.Int{big.NewInt(1), big.NewInt(2)}, bev.IDs)
	require.Equal(t, []*big.Int{big.NewInt(5), big.NewInt(6)}, bev.Amounts)
}

func TestReceiverAcknowledgment(t *testing.T) {
	c := newMultitokenInvoker(t)
	cRecv := deployReceiver(t, c)

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)

	cAcc.Invoke(t, stackitem.Null{}, "mint", acc.ScriptHash(), 1, 100, nil)
	cAcc.Invoke(t, stackitem.Null{}, "safeTransferFrom",
		acc.ScriptHash(), acc.ScriptHash(), cRecv.Hash, 1, 40, nil)

	c.Invoke(t, 60, "balanceOf", acc.ScriptHash(), 1)
	c.Invoke(t, 40, "balanceOf", cRecv.Hash, 1)

	// The receiver recorded the hook arguments.
	s, err := cRecv.TestInvoke(t, "get")
	require.NoError(t, err)
	call := s.Pop().Item().Value().([]stackitem.Item)
	require.Equal(t, acc.ScriptHash().BytesBE(), mustBytes(t, call[0]))
	require.Equal(t, acc.ScriptHash().BytesBE(), mustBytes(t, call[1]))
	require.Equal(t, big.NewInt(1), mustInt(t, call[2]))
	require.Equal(t, big.NewInt(40), mustInt(t, call[3]))
}

func TestReceiverRejection(t *testing.T) {
	c := newMultitokenInvoker(t)
	cRecv := deployReceiver(t, c)

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)

	cAcc.Invoke(t, stackitem.Null{}, "mint", acc.ScriptHash(), 1, 100, nil)

	// Wrong acknowledgment: the already-applied balance mutation is
	// rolled back together with the rest of the invocation.
	cAcc.InvokeFail(t, "transfer rejected by receiver", "safeTransferFrom",
		acc.ScriptHash(), acc.ScriptHash(), cRecv.Hash, 1, 40, []byte("reject"))
	c.Invoke(t, 100, "balanceOf", acc.ScriptHash(), 1)
	c.Invoke(t, 0, "balanceOf", cRecv.Hash, 1)

	// Abnormal termination of the hook is rejection too.
	cAcc.InvokeFail(t, "receiver aborted", "safeTransferFrom",
		acc.ScriptHash(), acc.ScriptHash(), cRecv.Hash, 1, 40, []byte("abort"))
	c.Invoke(t, 100, "balanceOf", acc.ScriptHash(), 1)

	// Plain accounts are never asked: the same data is inert.
	plain := c.NewAccount(t)
	cAcc.Invoke(t, stackitem.Null{}, "safeTransferFrom",
		acc.ScriptHash(), acc.ScriptHash(), plain.ScriptHash(), 1, 40, []byte("reject"))
	c.Invoke(t, 60, "balanceOf", acc.ScriptHash(), 1)
	c.Invoke(t, 40, "balanceOf", plain.ScriptHash(), 1)
}

func TestReceiverReentrancy(t *testing.T) {
	c := newMultitokenInvoker(t)
	cRecv := deployReceiver(t, c)

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)

	cAcc.Invoke(t, stackitem.Null{}, "mint", acc.ScriptHash(), 1, 100, nil)
	cAcc.Invoke(t, stackitem.Null{}, "safeTransferFrom",
		acc.ScriptHash(), acc.ScriptHash(), cRecv.Hash, 1, 25, []byte("reenter"))

	// The hook runs after the balances are committed, so the receiver's
	// reentrant balanceOf observed its updated balance.
	s, err := cRecv.TestInvoke(t, "get")
	require.NoError(t, err)
	call := s.Pop().Item().Value().([]stackitem.Item)
	require.Equal(t, big.NewInt(25), mustInt(t, call[4]))
}

func TestReceiverBatchAcknowledgment(t *testing.T) {
	c := newMultitokenInvoker(t)
	cRecv := deployReceiver(t, c)

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)

	cAcc.Invoke(t, stackitem.Null{}, "mintBatch", acc.ScriptHash(), []any{1, 2}, []any{10, 20}, nil)
	cAcc.Invoke(t, stackitem.Null{}, "safeBatchTransferFrom",
		acc.ScriptHash(), acc.ScriptHash(), cRecv.Hash, []any{1, 2}, []any{10, 20}, nil)

	c.Invoke(t, 10, "balanceOf", cRecv.Hash, 1)
	c.Invoke(t, 20, "balanceOf", cRecv.Hash, 2)

	s, err := cRecv.TestInvoke(t, "getBatch")
	require.NoError(t, err)
	call := s.Pop().Item().Value().([]stackitem.Item)
	ids := call[2].Value().([]stackitem.Item)
	amounts := call[3].Value().([]stackitem.Item)
	require.Equal(t, big.NewInt(1), mustInt(t, ids[0]))
	require.Equal(t, big.NewInt(2), mustInt(t, ids[1]))
	require.Equal(t, big.NewInt(10), mustInt(t, amounts[0]))
	require.Equal(t, big.NewInt(20), mustInt(t, amounts[1]))
}

func TestReceiverBatchRejection(t *testing.T) {
	c := newMultitokenInvoker(t)
	cRecv := deployReceiver(t, c)

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)

	cAcc.Invoke(t, stackitem.Null{}, "mintBatch", acc.ScriptHash(), []any{1, 2}, []any{10, 20}, nil)
	cAcc.InvokeFail(t, "transfer rejected by receiver", "safeBatchTransferFrom",
		acc.ScriptHash(), acc.ScriptHash(), cRecv.Hash, []any{1, 2}, []any{10, 20}, []byte("reject"))

	c.Invoke(t, 10, "balanceOf", acc.ScriptHash(), 1)
	c.Invoke(t, 20, "balanceOf", acc.ScriptHash(), 2)
	c.Invoke(t, 0, "balanceOf", cRecv.Hash, 1)
	c.Invoke(t, 0, "balanceOf", cRecv.Hash, 2)
}

func TestMintToReceiver(t *testing.T) {
	c := newMultitokenInvoker(t)
	cRecv := deployReceiver(t, c)

	// The receiver witnesses the mint itself via its verify method, the
	// committee signer pays the fees.
	recvSigner := neotest.NewContractSigner(cRecv.Hash, func(tx *transaction.Transaction) []any {
		return nil
	})
	cMint := c.WithSigners(c.Committee, recvSigner)

	cMint.Invoke(t, stackitem.Null{}, "mint", cRecv.Hash, 1, 10, nil)
	c.Invoke(t, 10, "balanceOf", cRecv.Hash, 1)
	c.Invoke(t, 10, "totalSupply", 1)

	// The hook observed the mint.
	s, err := cRecv.TestInvoke(t, "get")
	require.NoError(t, err)
	call := s.Pop().Item().Value().([]stackitem.Item)
	require.Equal(t, cRecv.Hash.BytesBE(), mustBytes(t, call[0]))
	require.Equal(t, big.NewInt(1), mustInt(t, call[2]))
	require.Equal(t, big.NewInt(10), mustInt(t, call[3]))

	// A rejecting receiver unwinds the mint, supply included.
	cMint.InvokeFail(t, "transfer rejected by receiver", "mint", cRecv.Hash, 2, 5, []byte("reject"))
	c.Invoke(t, 0, "balanceOf", cRecv.Hash, 2)
	c.Invoke(t, 0, "totalSupply", 2)

	cMint.Invoke(t, stackitem.Null{}, "mintBatch", cRecv.Hash, []any{3, 4}, []any{1, 2}, nil)
	c.Invoke(t, 1, "balanceOf", cRecv.Hash, 3)
	c.Invoke(t, 2, "balanceOf", cRecv.Hash, 4)

	s, err = cRecv.TestInvoke(t, "getBatch")
	require.NoError(t, err)
	batch := s.Pop().Item().Value().([]stackitem.Item)
	require.Equal(t, cRecv.Hash.BytesBE(), mustBytes(t, batch[0]))
}

func TestTokensIterator(t *testing.T) {
	c := newMultitokenInvoker(t)

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)

	cAcc.Invoke(t, stackitem.Null{}, "mint", acc.ScriptHash(), 5, 1, nil)
	cAcc.Invoke(t, stackitem.Null{}, "mint", acc.ScriptHash(), 9, 1, nil)

	// Burning to zero does not unregister the token.
	cAcc.Invoke(t, stackitem.Null{}, "burn", acc.ScriptHash(), 9, 1)

	s, err := c.TestInvoke(t, "tokens")
	require.NoError(t, err)
	iter := s.Pop().Value().(*storage.Iterator)
	items := iteratorToArray(iter)
	require.Len(t, items, 2)
	require.Equal(t, big.NewInt(5), mustInt(t, items[0]))
	require.Equal(t, big.NewInt(9), mustInt(t, items[1]))
}

func TestAnnounceURI(t *testing.T) {
	c := newMultitokenInvoker(t)

	c.Invoke(t, stackitem.Null{}, "announceURI", "ipfs://meta/1.json", 1)

	acc := c.NewAccount(t)
	c.WithSigners(acc).InvokeFail(t, "not witnessed by committee", "announceURI", "x", 1)
}

func TestUpdateAccess(t *testing.T) {
	c := newMultitokenInvoker(t)

	acc := c.NewAccount(t)
	c.WithSigners(acc).InvokeFail(t, "not witnessed by committee", "update", []byte{}, []byte{}, nil)
}

func mustBytes(t *testing.T, item stackitem.Item) []byte {
	b, err := item.TryBytes()
	require.NoError(t, err)
	return b
}

func mustInt(t *testing.T, item stackitem.Item) *big.Int {
	v, err := item.TryInteger()
	require.NoError(t, err)
	return v
}
