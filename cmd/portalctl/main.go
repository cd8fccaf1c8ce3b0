// Command portalctl is the operator CLI of the aluminum ordering portal.
package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
)

var Version = "dev"

func main() {
	root := newRootCmd(openContainer)
	root.Version = Version
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
