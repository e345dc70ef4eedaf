// Command tweetsclassifier trains a membership-based sentiment classifier on
// labeled tweets and evaluates, applies or serves it.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
