package multitoken

import (
	"github.com/nspcc-dev/multitoken-contract/common"
	"github.com/nspcc-dev/multitoken-contract/contracts/multitoken/multitokenconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Prefixes used for contract data storage.
const (
	// prefixBalance contains map from (owner + token id) to the owner's
	// balance of that token. Zero balances are not stored.
	prefixBalance byte = 'b'
	// prefixApproval contains map from (owner + operator) to the operator
	// approval flag. Revoked approvals are not stored.
	prefixApproval byte = 'a'
	// prefixSupply contains map from token id to its total supply.
	prefixSupply byte = 's'
	// prefixToken contains set of token ids that have ever been minted.
	prefixToken byte = 't'
)

// Error messages for failed preconditions. Every failure aborts the whole
// invocation, no state is mutated.
const (
	// errZeroRecipient appears when a transfer or mint targets the
	// no-owner sentinel.
	errZeroRecipient = "zero address recipient"
	// errZeroSender appears when a transfer or burn debits the no-owner
	// sentinel.
	errZeroSender = "zero address sender"
	// errNotPermitted appears when the acting operator is neither the
	// balance owner nor an approved operator, or is not the actual caller.
	errNotPermitted = "caller not permitted"
	// errInsufficientBalance appears when a debit exceeds the current
	// balance.
	errInsufficientBalance = "insufficient balance"
	// errArityMismatch appears when parallel batch arrays have unequal
	// lengths.
	errArityMismatch = "arity mismatch"
	// errCallbackRejected appears when a contract recipient's receiver
	// hook returns anything but the accept sentinel.
	errCallbackRejected = "transfer rejected by receiver"
)

// noOwner is the no-owner sentinel appearing as `from` in mint and as `to`
// in burn notifications and receiver hook calls. Typed to keep the emitted
// events compliant with the Hash160 parameters declared in the manifest.
var noOwner interop.Hash160

// nolint:unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	runtime.Log("multitoken contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(nefFile, manifest []byte, data any) {
	common.CheckCommitteeWitness()

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("multitoken contract updated")
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// SupportsInterface returns true if the contract implements the capability
// identified by interfaceID. Exactly three capabilities are answered:
// introspection (this very method), the multi-token ledger surface and the
// multi-token metadata signal. See multitokenconst for tag derivation.
func SupportsInterface(interfaceID []byte) bool {
	switch string(interfaceID) {
	case multitokenconst.CapabilityIntrospection,
		multitokenconst.CapabilityLedger,
		multitokenconst.CapabilityMetadata:
		return true
	}
	return false
}

// BalanceOf returns the balance of the specified owner for the specified
// token id. Accounts that never received the token have zero balance.
func BalanceOf(owner interop.Hash160, id int) int {
	if len(owner) != interop.Hash160Len {
		panic("invalid owner")
	}
	ctx := storage.GetReadOnlyContext()
	return getBalance(ctx, owner, id)
}

// BalanceOfBatch performs a balance lookup for every (owner, id) pair of the
// parallel input arrays and returns the results in input order.
func BalanceOfBatch(owners []interop.Hash160, ids []int) []int {
	if len(owners) != len(ids) {
		panic(errArityMismatch)
	}

	ctx := storage.GetReadOnlyContext()
	balances := make([]int, len(owners))
	for i := 0; i < len(owners); i++ {
		if len(owners[i]) != interop.Hash160Len {
			panic("invalid owner")
		}
		balances[i] = getBalance(ctx, owners[i], ids[i])
	}
	return balances
}

// TotalSupply returns the overall amount of the specified token minted and
// not yet burned.
func TotalSupply(id int) int {
	ctx := storage.GetReadOnlyContext()
	return common.GetIntOrZero(ctx, supplyKey(id))
}

// Tokens returns iterator over ids of all tokens ever minted by the
// contract. Burning a token to zero supply does not remove it from the set.
func Tokens() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{prefixToken}, storage.ValuesOnly)
}

// SetApprovalForAll grants or revokes the operator's right to move all of
// the owner's tokens, for any id, without per-transfer consent. It can be
// invoked only by the owner. Setting the already-stored value is legal and
// produces the ApprovalForAll notification again.
func SetApprovalForAll(owner, operator interop.Hash160, approved bool) {
	if len(owner) != interop.Hash160Len || len(operator) != interop.Hash160Len {
		panic("invalid account")
	}
	common.CheckOwnerWitness(owner)

	ctx := storage.GetContext()
	key := approvalKey(owner, operator)
	if approved {
		storage.Put(ctx, key, true)
	} else {
		storage.Delete(ctx, key)
	}
	runtime.Notify("ApprovalForAll", owner, operator, approved)
}

// IsApprovedForAll returns true if the operator has been approved by the
// owner via SetApprovalForAll.
func IsApprovedForAll(owner, operator interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()
	return getApproval(ctx, owner, operator)
}

// SafeTransferFrom transfers amount of the specified token from one account
// to another. The operator must be the actual caller and must either be the
// `from` account itself or be approved by it via SetApprovalForAll.
//
// It produces the TransferSingle notification. If the recipient is a
// deployed contract, its onMultiTokenReceived method is invoked after the
// balances have been updated; unless it returns the accept sentinel, the
// whole invocation is aborted and every change is reverted.
func SafeTransferFrom(operator, from, to interop.Hash160, id, amount int, data any) {
	ctx := storage.GetContext()

	checkRoute(from, to)
	checkAuthorized(ctx, operator, from)
	debit(ctx, from, id, amount)
	credit(ctx, to, id, amount)

	runtime.Notify("TransferSingle", operator, from, to, id, amount)
	postSingleTransfer(operator, from, to, id, amount, data)
}

// SafeBatchTransferFrom transfers several tokens from one account to another
// in a single atomic operation. ids and amounts are parallel arrays. Items
// are checked and applied in order, so a debit made by an earlier item is
// visible to the sufficiency check of a later item with the same id. On any
// check failure the whole batch aborts with no partial mutation.
//
// It produces one TransferBatch notification and invokes the recipient's
// onMultiTokenBatchReceived method once, under the same rules as
// SafeTransferFrom.
func SafeBatchTransferFrom(operator, from, to interop.Hash160, ids, amounts []int, data any) {
	ctx := storage.GetContext()

	checkRoute(from, to)
	checkAuthorized(ctx, operator, from)
	if len(ids) != len(amounts) {
		panic(errArityMismatch)
	}
	for i := 0; i < len(ids); i++ {
		debit(ctx, from, ids[i], amounts[i])
		credit(ctx, to, ids[i], amounts[i])
	}

	runtime.Notify("TransferBatch", operator, from, to, ids, amounts)
	postBatchTransfer(operator, from, to, ids, amounts, data)
}

// Mint credits amount of the specified token to the `to` account and
// increases the token's total supply. It can be invoked only by the account
// itself: supply changes are strictly bound to the calling identity, there
// is no operator delegation on this surface.
//
// It produces the TransferSingle notification with the no-owner sentinel as
// `from` and runs the receiver hook if `to` is a deployed contract.
func Mint(to interop.Hash160, id, amount int, data any) {
	if isZeroSentinel(to) {
		panic(errZeroRecipient)
	}
	common.CheckOwnerWitness(to)

	ctx := storage.GetContext()
	mint(ctx, to, id, amount)

	runtime.Notify("TransferSingle", to, noOwner, to, id, amount)
	postSingleTransfer(to, noOwner, to, id, amount, data)
}

// MintBatch is a batch variant of Mint with SafeBatchTransferFrom's arity
// and atomicity rules.
func MintBatch(to interop.Hash160, ids, amounts []int, data any) {
	if isZeroSentinel(to) {
		panic(errZeroRecipient)
	}
	common.CheckOwnerWitness(to)
	if len(ids) != len(amounts) {
		panic(errArityMismatch)
	}

	ctx := storage.GetContext()
	for i := 0; i < len(ids); i++ {
		mint(ctx, to, ids[i], amounts[i])
	}

	runtime.Notify("TransferBatch", to, noOwner, to, ids, amounts)
	postBatchTransfer(to, noOwner, to, ids, amounts, data)
}

// Burn debits amount of the specified token from the `from` account and
// decreases the token's total supply. It can be invoked only by the account
// itself.
//
// It produces the TransferSingle notification with the no-owner sentinel as
// `to`. Burns have no recipient, so no receiver hook is invoked.
func Burn(from interop.Hash160, id, amount int) {
	if isZeroSentinel(from) {
		panic(errZeroSender)
	}
	common.CheckOwnerWitness(from)

	ctx := storage.GetContext()
	burn(ctx, from, id, amount)

	runtime.Notify("TransferSingle", from, from, noOwner, id, amount)
}

// BurnBatch is a batch variant of Burn with SafeBatchTransferFrom's arity
// and atomicity rules.
func BurnBatch(from interop.Hash160, ids, amounts []int) {
	if isZeroSentinel(from) {
		panic(errZeroSender)
	}
	common.CheckOwnerWitness(from)
	if len(ids) != len(amounts) {
		panic(errArityMismatch)
	}

	ctx := storage.GetContext()
	for i := 0; i < len(ids); i++ {
		burn(ctx, from, ids[i], amounts[i])
	}

	runtime.Notify("TransferBatch", from, from, noOwner, ids, amounts)
}

// AnnounceURI signals watchers that the metadata of the specified token may
// have changed. Metadata itself is kept and resolved outside of the
// contract. It can be invoked only by committee.
func AnnounceURI(value string, id int) {
	common.CheckCommitteeWitness()
	runtime.Notify("URI", value, id)
}

// checkRoute validates transfer endpoints: the no-owner sentinel can be
// neither debited nor credited.
func checkRoute(from, to interop.Hash160) {
	if isZeroSentinel(to) {
		panic(errZeroRecipient)
	}
	if isZeroSentinel(from) {
		panic(errZeroSender)
	}
}

// checkAuthorized panics unless the operator is the actual caller and is
// entitled to move the `from` account's tokens.
func checkAuthorized(ctx storage.Context, operator, from interop.Hash160) {
	if !isCaller(operator) {
		panic(errNotPermitted)
	}
	if operator.Equals(from) {
		return
	}
	if !getApproval(ctx, from, operator) {
		panic(errNotPermitted)
	}
}

// isCaller checks if the account is the one this invocation acts on behalf
// of: either it witnessed the transaction or it is a smart contract that is
// the direct caller.
func isCaller(acc interop.Hash160) bool {
	if len(acc) != interop.Hash160Len {
		return false
	}
	if runtime.CheckWitness(acc) {
		return true
	}

	callingScriptHash := runtime.GetCallingScriptHash()
	return callingScriptHash.Equals(acc)
}

func isZeroSentinel(acc interop.Hash160) bool {
	if len(acc) != interop.Hash160Len {
		return true
	}
	for i := 0; i < len(acc); i++ {
		if acc[i] != 0 {
			return false
		}
	}
	return true
}

// mint credits the account, updates the supply and registers the token id.
// Caller is responsible for notifications and receiver hooks.
func mint(ctx storage.Context, to interop.Hash160, id, amount int) {
	if amount < 0 {
		panic("negative amount")
	}

	credit(ctx, to, id, amount)

	sKey := supplyKey(id)
	storage.Put(ctx, sKey, common.GetIntOrZero(ctx, sKey)+amount)

	tKey := tokenKey(id)
	if storage.Get(ctx, tKey) == nil {
		storage.Put(ctx, tKey, id)
	}
}

// burn debits the account and updates the supply. Caller is responsible for
// notifications.
func burn(ctx storage.Context, from interop.Hash160, id, amount int) {
	debit(ctx, from, id, amount)

	sKey := supplyKey(id)
	supply := common.GetIntOrZero(ctx, sKey)
	if supply < amount {
		panic("negative supply after burn")
	}
	storage.Put(ctx, sKey, supply-amount)
}

// debit checks sufficiency and subtracts amount from the owner's balance.
// Zero balance entries are removed, a missing entry reads as zero.
func debit(ctx storage.Context, owner interop.Hash160, id, amount int) {
	if amount < 0 {
		panic("negative amount")
	}

	key := balanceKey(owner, id)
	balance := common.GetIntOrZero(ctx, key)
	if balance < amount {
		panic(errInsufficientBalance)
	}

	if balance == amount {
		storage.Delete(ctx, key)
	} else {
		storage.Put(ctx, key, balance-amount)
	}
}

func credit(ctx storage.Context, owner interop.Hash160, id, amount int) {
	if amount < 0 {
		panic("negative amount")
	}

	key := balanceKey(owner, id)
	storage.Put(ctx, key, common.GetIntOrZero(ctx, key)+amount)
}

// postSingleTransfer calls onMultiTokenReceived on a contract recipient and
// verifies the returned acknowledgment. The balances are already committed
// at this point: a reentrant call from the recipient observes consistent,
// updated state, and a rejection aborts the invocation which reverts every
// write of the enclosing transfer.
func postSingleTransfer(operator, from, to interop.Hash160, id, amount int, data any) {
	if management.GetContract(to) == nil {
		return
	}

	res := contract.Call(to, multitokenconst.ReceivedMethod, contract.All,
		operator, from, id, amount, data)
	if !acknowledged(res, multitokenconst.ReceivedSentinel) {
		panic(errCallbackRejected)
	}
}

// postBatchTransfer is a batch variant of postSingleTransfer.
func postBatchTransfer(operator, from, to interop.Hash160, ids, amounts []int, data any) {
	if management.GetContract(to) == nil {
		return
	}

	res := contract.Call(to, multitokenconst.BatchReceivedMethod, contract.All,
		operator, from, ids, amounts, data)
	if !acknowledged(res, multitokenconst.BatchReceivedSentinel) {
		panic(errCallbackRejected)
	}
}

func acknowledged(res any, sentinel string) bool {
	if res == nil {
		return false
	}
	return common.BytesEqual(res.([]byte), []byte(sentinel))
}

func getBalance(ctx storage.Context, owner interop.Hash160, id int) int {
	return common.GetIntOrZero(ctx, balanceKey(owner, id))
}

func getApproval(ctx storage.Context, owner, operator interop.Hash160) bool {
	val := storage.Get(ctx, approvalKey(owner, operator))
	return val != nil && val.(bool)
}

func balanceKey(owner interop.Hash160, id int) []byte {
	return append(append([]byte{prefixBalance}, owner...), std.Itoa(id, 10)...)
}

func approvalKey(owner, operator interop.Hash160) []byte {
	return append(append([]byte{prefixApproval}, owner...), operator...)
}

func supplyKey(id int) []byte {
	return append([]byte{prefixSupply}, std.Itoa(id, 10)...)
}

func tokenKey(id int) []byte {
	return append([]byte{prefixToken}, std.Itoa(id, 10)...)
}
