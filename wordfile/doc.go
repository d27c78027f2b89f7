/*
Package wordfile loads the words of text files into sorted collections.

Loading happens asynchronously: Load opens a file synchronously, then reads
and collects its words in the background. Clients may subscribe to progress
events while loading and call Wait to receive the finished collection.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package wordfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ordnung'
func tracer() tracing.Trace {
	return tracing.Select("ordnung")
}
