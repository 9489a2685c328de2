package main

import (
	"fmt"
	"os"

	"github.com/daofoundry/govern/cmd/govern"
)

func main() {
	rootCmd := govern.BuildGovernCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
