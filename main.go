// FPT Pray - offer a wish, earn merit, decorate the altar.
package main

import (
	"os"

	"github.com/vyyka/fptpray/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
