// Package multitoken contains RPC wrappers for Multi Token contract.
package multitoken

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// TransferSingleEvent represents "TransferSingle" event emitted by the contract.
type TransferSingleEvent struct {
	Operator util.Uint160
	From     util.Uint160
	To       util.Uint160
	ID       *big.Int
	Amount   *big.Int
}

// TransferBatchEvent represents "TransferBatch" event emitted by the contract.
type TransferBatchEvent struct {
	Operator util.Uint160
	From     util.Uint160
	To       util.Uint160
	IDs      []*big.Int
	Amounts  []*big.Int
}

// ApprovalForAllEvent represents "ApprovalForAll" event emitted by the contract.
type ApprovalForAllEvent struct {
	Owner    util.Uint160
	Operator util.Uint160
	Approved bool
}

// URIEvent represents "URI" event emitted by the contract.
type URIEvent struct {
	Value string
	ID    *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash    util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash  util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// BalanceOf invokes `balanceOf` method of contract.
func (c *ContractReader) BalanceOf(owner util.Uint160, id *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "balanceOf", owner, id))
}

// BalanceOfBatch invokes `balanceOfBatch` method of contract.
func (c *ContractReader) BalanceOfBatch(owners []util.Uint160, ids []*big.Int) ([]*big.Int, error) {
	return unwrap.ArrayOfBigInts(c.invoker.Call(c.hash, "balanceOfBatch", owners, ids))
}

// IsApprovedForAll invokes `isApprovedForAll` method of contract.
func (c *ContractReader) IsApprovedForAll(owner util.Uint160, operator util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isApprovedForAll", owner, operator))
}

// SupportsInterface invokes `supportsInterface` method of contract.
func (c *ContractReader) SupportsInterface(interfaceID []byte) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "supportsInterface", interfaceID))
}

// TotalSupply invokes `totalSupply` method of contract.
func (c *ContractReader) TotalSupply(id *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "totalSupply", id))
}

// Tokens invokes `tokens` method of contract.
func (c *ContractReader) Tokens() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "tokens"))
}

// TokensExpanded is similar to Tokens (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) TokensExpanded(_numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "tokens", _numOfIteratorItems))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// AnnounceURI creates a transaction invoking `announceURI` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) AnnounceURI(value string, id *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "announceURI", value, id)
}

// AnnounceURITransaction creates a transaction invoking `announceURI` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AnnounceURITransaction(value string, id *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "announceURI", value, id)
}

// AnnounceURIUnsigned creates a transaction invoking `announceURI` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AnnounceURIUnsigned(value string, id *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "announceURI", nil, value, id)
}

// Burn creates a transaction invoking `burn` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Burn(from util.Uint160, id *big.Int, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "burn", from, id, amount)
}

// BurnTransaction creates a transaction invoking `burn` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) BurnTransaction(from util.Uint160, id *big.Int, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "burn", from, id, amount)
}

// BurnUnsigned creates a transaction invoking `burn` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) BurnUnsigned(from util.Uint160, id *big.Int, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "burn", nil, from, id, amount)
}

// BurnBatch creates a transaction invoking `burnBatch` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) BurnBatch(from util.Uint160, ids []*big.Int, amounts []*big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "burnBatch", from, ids, amounts)
}

// BurnBatchTransaction creates a transaction invoking `burnBatch` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) BurnBatchTransaction(from util.Uint160, ids []*big.Int, amounts []*big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "burnBatch", from, ids, amounts)
}

// BurnBatchUnsigned creates a transaction invoking `burnBatch` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) BurnBatchUnsigned(from util.Uint160, ids []*big.Int, amounts []*big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "burnBatch", nil, from, ids, amounts)
}

// Mint creates a transaction invoking `mint` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Mint(to util.Uint160, id *big.Int, amount *big.Int, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "mint", to, id, amount, data)
}

// MintTransaction creates a transaction invoking `mint` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) MintTransaction(to util.Uint160, id *big.Int, amount *big.Int, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "mint", to, id, amount, data)
}

// MintUnsigned creates a transaction invoking `mint` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) MintUnsigned(to util.Uint160, id *big.Int, amount *big.Int, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "mint", nil, to, id, amount, data)
}

// MintBatch creates a transaction invoking `mintBatch` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) MintBatch(to util.Uint160, ids []*big.Int, amounts []*big.Int, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "mintBatch", to, ids, amounts, data)
}

// MintBatchTransaction creates a transaction invoking `mintBatch` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) MintBatchTransaction(to util.Uint160, ids []*big.Int, amounts []*big.Int, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "mintBatch", to, ids, amounts, data)
}

// MintBatchUnsigned creates a transaction invoking `mintBatch` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) MintBatchUnsigned(to util.Uint160, ids []*big.Int, amounts []*big.Int, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "mintBatch", nil, to, ids, amounts, data)
}

// SafeBatchTransferFrom creates a transaction invoking `safeBatchTransferFrom` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SafeBatchTransferFrom(operator util.Uint160, from util.Uint160, to util.Uint160, ids []*big.Int, amounts []*big.Int, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "safeBatchTransferFrom", operator, from, to, ids, amounts, data)
}

// SafeBatchTransferFromTransaction creates a transaction invoking `safeBatchTransferFrom` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SafeBatchTransferFromTransaction(operator util.Uint160, from util.Uint160, to util.Uint160, ids []*big.Int, amounts []*big.Int, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "safeBatchTransferFrom", operator, from, to, ids, amounts, data)
}

// SafeBatchTransferFromUnsigned creates a transaction invoking `safeBatchTransferFrom` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SafeBatchTransferFromUnsigned(operator util.Uint160, from util.Uint160, to util.Uint160, ids []*big.Int, amounts []*big.Int, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "safeBatchTransferFrom", nil, operator, from, to, ids, amounts, data)
}

// SafeTransferFrom creates a transaction invoking `safeTransferFrom` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SafeTransferFrom(operator util.Uint160, from util.Uint160, to util.Uint160, id *big.Int, amount *big.Int, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "safeTransferFrom", operator, from, to, id, amount, data)
}

// SafeTransferFromTransaction creates a transaction invoking `safeTransferFrom` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SafeTransferFromTransaction(operator util.Uint160, from util.Uint160, to util.Uint160, id *big.Int, amount *big.Int, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "safeTransferFrom", operator, from, to, id, amount, data)
}

// SafeTransferFromUnsigned creates a transaction invoking `safeTransferFrom` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SafeTransferFromUnsigned(operator util.Uint160, from util.Uint160, to util.Uint160, id *big.Int, amount *big.Int, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "safeTransferFrom", nil, operator, from, to, id, amount, data)
}

// SetApprovalForAll creates a transaction invoking `setApprovalForAll` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetApprovalForAll(owner util.Uint160, operator util.Uint160, approved bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setApprovalForAll", owner, operator, approved)
}

// SetApprovalForAllTransaction creates a transaction invoking `setApprovalForAll` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetApprovalForAllTransaction(owner util.Uint160, operator util.Uint160, approved bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setApprovalForAll", owner, operator, approved)
}

// SetApprovalForAllUnsigned creates a transaction invoking `setApprovalForAll` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetApprovalForAllUnsigned(owner util.Uint160, operator util.Uint160, approved bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setApprovalForAll", nil, owner, operator, approved)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(nefFile []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, nefFile, manifest, data)
}

// TransferSingleEventsFromApplicationLog retrieves a set of all emitted events
// with "TransferSingle" name from the provided [result.ApplicationLog].
func TransferSingleEventsFromApplicationLog(log *result.ApplicationLog) ([]*TransferSingleEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*TransferSingleEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "TransferSingle" {
				continue
			}
			event := new(TransferSingleEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize TransferSingleEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to TransferSingleEvent or
// returns an error if it's not possible to do to so.
func (e *TransferSingleEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Operator, err = itemToAccount(arr[index])
	if err != nil {
		return fmt.Errorf("field Operator: %w", err)
	}

	index++
	e.From, err = itemToAccount(arr[index])
	if err != nil {
		return fmt.Errorf("field From: %w", err)
	}

	index++
	e.To, err = itemToAccount(arr[index])
	if err != nil {
		return fmt.Errorf("field To: %w", err)
	}

	index++
	e.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// TransferBatchEventsFromApplicationLog retrieves a set of all emitted events
// with "TransferBatch" name from the provided [result.ApplicationLog].
func TransferBatchEventsFromApplicationLog(log *result.ApplicationLog) ([]*TransferBatchEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*TransferBatchEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "TransferBatch" {
				continue
			}
			event := new(TransferBatchEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize TransferBatchEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to TransferBatchEvent or
// returns an error if it's not possible to do to so.
func (e *TransferBatchEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Operator, err = itemToAccount(arr[index])
	if err != nil {
		return fmt.Errorf("field Operator: %w", err)
	}

	index++
	e.From, err = itemToAccount(arr[index])
	if err != nil {
		return fmt.Errorf("field From: %w", err)
	}

	index++
	e.To, err = itemToAccount(arr[index])
	if err != nil {
		return fmt.Errorf("field To: %w", err)
	}

	index++
	e.IDs, err = itemToIntegers(arr[index])
	if err != nil {
		return fmt.Errorf("field IDs: %w", err)
	}

	index++
	e.Amounts, err = itemToIntegers(arr[index])
	if err != nil {
		return fmt.Errorf("field Amounts: %w", err)
	}

	return nil
}

// ApprovalForAllEventsFromApplicationLog retrieves a set of all emitted events
// with "ApprovalForAll" name from the provided [result.ApplicationLog].
func ApprovalForAllEventsFromApplicationLog(log *result.ApplicationLog) ([]*ApprovalForAllEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ApprovalForAllEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ApprovalForAll" {
				continue
			}
			event := new(ApprovalForAllEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ApprovalForAllEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ApprovalForAllEvent or
// returns an error if it's not possible to do to so.
func (e *ApprovalForAllEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Owner, err = itemToAccount(arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.Operator, err = itemToAccount(arr[index])
	if err != nil {
		return fmt.Errorf("field Operator: %w", err)
	}

	index++
	e.Approved, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Approved: %w", err)
	}

	return nil
}

// URIEventsFromApplicationLog retrieves a set of all emitted events
// with "URI" name from the provided [result.ApplicationLog].
func URIEventsFromApplicationLog(log *result.ApplicationLog) ([]*URIEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*URIEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "URI" {
				continue
			}
			event := new(URIEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize URIEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to URIEvent or
// returns an error if it's not possible to do to so.
func (e *URIEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Value, err = func(item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		return string(b), nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field Value: %w", err)
	}

	index++
	e.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	return nil
}

// itemToAccount converts a Hash160 event field to util.Uint160. The no-owner
// sentinel used by mint and burn notifications converts to a zero hash.
func itemToAccount(item stackitem.Item) (util.Uint160, error) {
	if _, ok := item.(stackitem.Null); ok {
		return util.Uint160{}, nil
	}
	b, err := item.TryBytes()
	if err != nil {
		return util.Uint160{}, err
	}
	if len(b) == 0 {
		return util.Uint160{}, nil
	}
	return util.Uint160DecodeBytesBE(b)
}

func itemToIntegers(item stackitem.Item) ([]*big.Int, error) {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return nil, errors.New("not an array")
	}
	res := make([]*big.Int, len(arr))
	for i := range arr {
		v, err := arr[i].TryInteger()
		if err != nil {
			return nil, fmt.Errorf("item #%d: %w", i, err)
		}
		res[i] = v
	}
	return res, nil
}
