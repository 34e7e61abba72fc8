package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	fasthex "github.com/tmthrgd/go-hex"

	"git.gammaspectra.live/P2Pool/aes/keyschedule"
	"git.gammaspectra.live/P2Pool/aes/types"
	"git.gammaspectra.live/P2Pool/aes/utils"
)

const success, failure, invalid = 0, 1, 2

func main() { os.Exit(program()) }

type scheduleOutput struct {
	KeyBits   int              `json:"key_bits"`
	Rounds    int              `json:"rounds"`
	RoundKeys []types.RoundKey `json:"round_keys"`
}

func program() int {
	keyHex := pflag.StringP("key", "k", "", "cipher key as hex, 16/24/32 bytes")
	asJSON := pflag.BoolP("json", "j", false, "print the schedule as a JSON document")
	quiet := pflag.BoolP("quiet", "q", false, "print only the raw schedule hex")
	debug := pflag.BoolP("verbose", "v", false, "enable debug logging")
	pflag.Parse()

	if *debug {
		utils.GlobalLogLevel |= utils.LogLevelNotice | utils.LogLevelDebug
	}

	if *keyHex == "" && pflag.NArg() == 1 {
		*keyHex = pflag.Arg(0)
	}
	if *keyHex == "" {
		pflag.Usage()
		return invalid
	}

	cipherKey, err := fasthex.DecodeString(*keyHex)
	if err != nil {
		utils.Errorf("aessched", "invalid key hex: %s", err)
		return invalid
	}

	params, err := keyschedule.ParamsForSize(len(cipherKey) * 8)
	if err != nil {
		utils.Errorf("aessched", "%s", err)
		return invalid
	}
	utils.Debugf("aessched", "KeyWords = %d, Rounds = %d", params.KeyWords, params.Rounds)

	s, err := keyschedule.Expand(params, cipherKey)
	if err != nil {
		utils.Errorf("aessched", "%s", err)
		return failure
	}
	utils.Noticef("aessched", "expanded %d-bit cipher key into %d words", len(cipherKey)*8, s.NumWords())
	if utils.IsLogLevelDebug() {
		utils.Debugf("aessched", "schedule: %s", s)
	}

	switch {
	case *asJSON:
		keys := make([]types.RoundKey, 0, params.Rounds+1)
		for r := 0; r <= params.Rounds; r++ {
			keys = append(keys, s.RoundKey(r))
		}
		buf, err := utils.MarshalJSONIndent(scheduleOutput{
			KeyBits:   len(cipherKey) * 8,
			Rounds:    params.Rounds,
			RoundKeys: keys,
		}, "  ")
		if err != nil {
			utils.Errorf("aessched", "%s", err)
			return failure
		}
		fmt.Println(string(buf))
	case *quiet:
		fmt.Println(s.String())
	default:
		for r := 0; r <= params.Rounds; r++ {
			fmt.Printf("round %2d: %s\n", r, s.RoundKey(r))
		}
	}

	return success
}
