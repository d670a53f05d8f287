package main

import "github.com/goplus/buildenv/cmd/buildenv/internal"

func main() {
	internal.Execute()
}
