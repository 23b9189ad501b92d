package main

import (
	"github.com/daosign/daosign-go/cmd/daosignd/cmd"
)

func main() {
	cmd.Execute()
}
