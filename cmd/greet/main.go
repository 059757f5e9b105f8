package main

import (
	"os"

	"github.com/sirsjg/gogogo/cmd/greet/root"
)

func main() {
	os.Exit(root.Main(os.Args[1:], os.Stderr))
}
