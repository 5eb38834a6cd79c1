/*
Package multitokenconst contains constants of the Multi Token contract that
are shared between the contract itself, receiver implementations and
off-chain code.
*/
package multitokenconst

// Receiver hook method names. Any contract that wants to accept incoming
// multi-token transfers must expose these methods and return the matching
// accept sentinel.
const (
	// ReceivedMethod is invoked on a contract recipient of a single
	// transfer or mint.
	ReceivedMethod = "onMultiTokenReceived"
	// BatchReceivedMethod is invoked on a contract recipient of a batch
	// transfer or batch mint.
	BatchReceivedMethod = "onMultiTokenBatchReceived"
)

// Accept sentinels returned by receiver hooks. Each sentinel is the first
// 4 bytes of the SHA-256 hash of the corresponding hook signature.
const (
	// ReceivedSentinel is SHA-256("onMultiTokenReceived(operator,from,id,amount,data)")[:4].
	ReceivedSentinel = "\xfd\x0c\x11\xe0"
	// BatchReceivedSentinel is SHA-256("onMultiTokenBatchReceived(operator,from,ids,amounts,data)")[:4].
	BatchReceivedSentinel = "\x91\x06\x1f\x54"
)

// Capability tags answered by the supportsInterface method. Each tag is the
// first 4 bytes of the SHA-256 hash of the capability name.
const (
	// CapabilityIntrospection is SHA-256("introspection")[:4], the capability
	// query interface itself.
	CapabilityIntrospection = "\x9a\xbe\xcc\x01"
	// CapabilityLedger is SHA-256("multi-token-ledger")[:4], the balance,
	// approval and transfer surface.
	CapabilityLedger = "\xaf\x0d\xe1\xd9"
	// CapabilityMetadata is SHA-256("multi-token-metadata")[:4], the URI
	// change signal.
	CapabilityMetadata = "\x3c\x9b\xff\x40"
)
