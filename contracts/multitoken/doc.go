/*
Package multitoken contains implementation of Multi Token contract: a single
contract tracking balances of many distinct token identifiers per owner. It
supports single and batched transfers, blanket operator approvals and
caller-bound mint/burn operations. Token identifiers are opaque non-negative
integers, the contract imposes no schema on what they represent (fungible
class vs. unique item), that is a convention left to callers.

Every state-changing operation is atomic: on any failed precondition or on a
rejected receiver acknowledgment the whole invocation aborts and no state
mutation survives. Transfers and mints into deployed contracts are gated by
the receiver acknowledgment protocol: the recipient's onMultiTokenReceived
(onMultiTokenBatchReceived for batches) method is invoked after the balance
mutation and must return the accept sentinel defined in the multitokenconst
package. The recipient classification (deployed contract vs. plain account)
is performed fresh on every transfer, since a contract can be deployed to an
address between calls.

Supply changes are bound to the calling identity: mint credits only the
account that witnessed the transaction, burn debits only it. There is no
delegated minting or burning.

# Contract notifications

TransferSingle notification. Mints carry the no-owner sentinel as `from`,
burns carry it as `to`.

	TransferSingle:
	  - name: operator
	    type: Hash160
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: id
	    type: Integer
	  - name: amount
	    type: Integer

TransferBatch notification. ids and amounts are same-order parallel arrays.

	TransferBatch:
	  - name: operator
	    type: Hash160
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: ids
	    type: Array
	  - name: amounts
	    type: Array

ApprovalForAll notification.

	ApprovalForAll:
	  - name: owner
	    type: Hash160
	  - name: operator
	    type: Hash160
	  - name: approved
	    type: Boolean

URI notification. A signal that token metadata may have changed; metadata is
resolved by an external collaborator.

	URI:
	  - name: value
	    type: String
	  - name: id
	    type: Integer
*/
package multitoken

/*
Contract storage model.

# Summary
Key-value storage format:
 - b<interop.Hash160><id> -> int
   balance of the owner for the token id, zero balances are deleted
 - a<interop.Hash160><interop.Hash160> -> bool
   operator approval of the first account for the second one
 - s<id> -> int
   total supply of the token id
 - t<id> -> int
   token ids ever minted

# Accounting
Contract stores balances and operator approvals of all accounts that ever
held tokens.
*/
