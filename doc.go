/*
Package ordnung offers sorted, self-balancing collections for Go values.

Collections keep their items in comparator order at all times, inside a
balanced multi-way search tree with bounded branching (a B-tree). Compared
to a sorted slice, a collection trades contiguous storage for logarithmic
mutation costs, which pays off as soon as items keep arriving and leaving
in arbitrary order.

	Operation     |   Collection    |  sorted slice
	--------------+-----------------+--------------
	Add           |   O(log n)      |   O(n)
	Remove        |   O(log n)      |   O(n)
	Contains      |   O(log n)      |   O(log n)
	Iterate       |   O(n)          |   O(n)

Collections are multisets: adding a value equal to ones already present
keeps every instance, and removing deletes a single instance at a time.
Clients that need set semantics check Contains before Add.

Collections of ordered base types are created with New, everything else
with NewWith and a comparator:

	persons, err := ordnung.NewWith(0, func(a, b Person) int {
		return strings.Compare(a.Name, b.Name)
	})

Collections are not safe for concurrent use. Mutating a collection while an
iteration over it is in progress is undefined; see package wordfile for a
loader that hands a collection between goroutines safely.

The tree machinery itself lives in package btree and can be used directly
when the thin shell is in the way.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package ordnung

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ordnung'
func tracer() tracing.Trace {
	return tracing.Select("ordnung")
}

// OrderError is an error type for the ordnung module
type OrderError string

func (e OrderError) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever a destination buffer cannot hold
// all items of a collection.
const ErrIndexOutOfBounds = OrderError("index out of bounds")

// ErrIllegalArguments is flagged whenever a client passes arguments which
// cannot be worked with, e.g. a nil node.
const ErrIllegalArguments = OrderError("illegal arguments")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
