package main

import (
	"github.com/nikrus/rpsduel-go/internal/cli"
)

func main() {
	cli.Execute()
}
