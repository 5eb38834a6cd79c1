// Command balances queries the Multi Token contract over Neo RPC and prints
// holdings of a single account.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/multitoken-contract/common"
	"github.com/nspcc-dev/multitoken-contract/rpc/multitoken"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	contractHash := flag.String("contract", "", "Multi Token contract hash (LE hex)")
	ownerAddr := flag.String("owner", "", "Account to query (base58 address or LE hex hash)")
	idList := flag.String("ids", "", "Comma-separated token ids (all known tokens when empty)")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *contractHash == "":
		log.Fatal("missing contract hash")
	case *ownerAddr == "":
		log.Fatal("missing owner account")
	}

	hash, err := util.Uint160DecodeStringLE(*contractHash)
	if err != nil {
		log.Fatal(fmt.Errorf("invalid contract hash: %w", err))
	}

	owner, err := parseAccount(*ownerAddr)
	if err != nil {
		log.Fatal(fmt.Errorf("invalid owner account: %w", err))
	}

	c, err := rpcclient.New(context.Background(), *neoRPCEndpoint, rpcclient.Options{
		DialTimeout:    15 * time.Second,
		RequestTimeout: 15 * time.Second,
	})
	if err != nil {
		log.Fatal(fmt.Errorf("RPC client dial: %w", err))
	}

	defer c.Close()

	reader := multitoken.NewReader(invoker.New(c, nil), hash)

	ids, err := tokenIDs(reader, *idList)
	if err != nil {
		log.Fatal(err)
	}

	owners := make([]util.Uint160, len(ids))
	for i := range owners {
		owners[i] = owner
	}

	balances, err := reader.BalanceOfBatch(owners, ids)
	if err != nil {
		log.Fatal(fmt.Errorf("balance query: %w", err))
	}

	for i := range ids {
		supply, err := reader.TotalSupply(ids[i])
		if err != nil {
			log.Fatal(fmt.Errorf("supply query for token %s: %w", ids[i], err))
		}
		fmt.Printf("token %s: balance %s, total supply %s\n", ids[i], balances[i], supply)
	}
}

// parseAccount accepts either a base58-encoded Neo address or an LE hex
// script hash.
func parseAccount(s string) (util.Uint160, error) {
	if wallet, err := base58.Decode(s); err == nil && len(wallet) == 25 {
		return util.Uint160DecodeBytesBE(common.WalletToScriptHash(wallet))
	}
	return util.Uint160DecodeStringLE(s)
}

// tokenIDs parses the -ids flag or, when it is empty, fetches ids of all
// tokens known to the contract.
func tokenIDs(reader *multitoken.ContractReader, list string) ([]*big.Int, error) {
	if list != "" {
		parts := strings.Split(list, ",")
		ids := make([]*big.Int, len(parts))
		for i, p := range parts {
			v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid token id %q: %w", p, err)
			}
			ids[i] = new(big.Int).SetUint64(v)
		}
		return ids, nil
	}

	const maxTokens = 1024

	items, err := reader.TokensExpanded(maxTokens)
	if err != nil {
		return nil, fmt.Errorf("token list query: %w", err)
	}

	ids := make([]*big.Int, len(items))
	for i := range items {
		ids[i], err = items[i].TryInteger()
		if err != nil {
			return nil, fmt.Errorf("unexpected token id item #%d: %w", i, err)
		}
	}
	return ids, nil
}
