/*
Package redblack implements a persistent, generic red-black tree: an
ordered container that keeps a balanced binary search tree of
client-supplied records under a client-supplied key ordering.

Every insert and remove is value-returning: the tree is a recursive,
immutable value, and mutating methods on Tree simply rebind the tree's
root to the freshly produced value. Callers that hold on to a previous
Tree value continue to see the pre-mutation shape — the algebra makes no
promise of structural sharing, but it makes no promise against it either.

The client supplies a Config bundling a 3-way comparator over a key type
and a duplicates policy (refuse, FIFO, LIFO). The core never assumes an
ascending or descending direction: "left" and "right" throughout this
package are tree-structural, not comparator-directional.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

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
package redblack

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// RBError is an error type for the redblack module.
type RBError string

func (e RBError) Error() string {
	return string(e)
}

// ErrInvariantViolation is wrapped by every error Tree.Check returns; it
// signals that the tree no longer satisfies the structural invariants of
// a red-black tree (BST order, red-red, black-height, root color).
const ErrInvariantViolation RBError = "redblack: invariant violation"
