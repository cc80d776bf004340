package main

import (
	"github.com/esitarski/llrp-go/cmd"
)

func main() {
	cmd.CmdLLRPCtl.Execute()
}
