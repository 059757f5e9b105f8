package main

import (
	"os"

	"github.com/sirsjg/gogogo/cmd/greet/root"
)

// Same entry as cmd/greet, so `go run .` greets too.
func main() {
	os.Exit(root.Main(os.Args[1:], os.Stderr))
}
