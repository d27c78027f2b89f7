/*
Package wordlist extracts words from text sources and collects them as
sorted collections.

Word boundaries follow Unicode Annex #29. Sources may be plain text or
HTML fragments; for HTML, only the textual content contributes words.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package wordlist

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ordnung'
func tracer() tracing.Trace {
	return tracing.Select("ordnung")
}
