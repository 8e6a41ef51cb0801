// cmd/crashpersist/main.go
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		newLogger(os.Stderr, false).Error("command failed", "err", err)
		os.Exit(1)
	}
}
