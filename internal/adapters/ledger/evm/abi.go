package evm

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

const contractABI = `[
  {"type":"function","name":"mintArtwork","stateMutability":"nonpayable",
   "inputs":[{"name":"to","type":"address"},{"name":"metadataURI","type":"string"},
             {"name":"_promptHash","type":"bytes32"},{"name":"theme","type":"string"}],
   "outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"totalSupply","stateMutability":"view","inputs":[],
   "outputs":[{"name":"","type":"uint256"}]},
  {"type":"event","name":"Transfer","anonymous":false,
   "inputs":[{"name":"from","type":"address","indexed":true},
             {"name":"to","type":"address","indexed":true},
             {"name":"tokenId","type":"uint256","indexed":true}]}
]`

var parsedABI = mustParseABI(contractABI)

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic("evm: parse contract abi: " + err.Error())
	}
	return parsed
}

func transferEventID() common.Hash {
	return parsedABI.Events["Transfer"].ID
}
