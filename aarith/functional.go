// Copyright 2026 aarith Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package aarith

// Word-wise combinators. The arithmetic in this package is expressed through
// these higher-order functions so that the word-iteration and top-word
// masking logic lives in one place. They are parameterized by the per-word
// function only; no dynamic dispatch is involved.

// Map applies f to every word of b and returns the resulting block. Shadow
// bits produced by f on the top word are discarded.
func Map[W Word](b Block[W], f func(W) W) Block[W] {
	out := NewBlock[W](b.width)
	for i, w := range b.words {
		out.words[i] = f(w)
	}
	out.maskTop()
	return out
}

// ZipWith combines two blocks word by word. The result width is the smaller
// of the two operand widths.
func ZipWith[W Word](a, b Block[W], f func(x, y W) W) Block[W] {
	out := NewBlock[W](min(a.width, b.width))
	for i := range out.words {
		out.words[i] = f(a.words[i], b.words[i])
	}
	out.maskTop()
	return out
}

// ZipWithExpand combines two blocks word by word after zero-extending the
// narrower operand, so the result width is the larger of the two operand
// widths.
func ZipWithExpand[W Word](a, b Block[W], f func(x, y W) W) Block[W] {
	width := max(a.width, b.width)
	return ZipWith(a.Resize(width), b.Resize(width), f)
}

// ZipWithState combines two blocks word by word while threading a state
// value through the words in order, least significant first. The per-word
// function receives both words and the incoming state and returns the
// result word and the outgoing state; ripple-carry arithmetic is built on
// it. The result width is the smaller operand width; the final state is
// returned alongside the block.
func ZipWithState[W Word](a, b Block[W], state W, f func(x, y, state W) (W, W)) (Block[W], W) {
	out := NewBlock[W](min(a.width, b.width))
	for i := range out.words {
		out.words[i], state = f(a.words[i], b.words[i], state)
	}
	out.maskTop()
	return out, state
}

// ZipWithStateExpand is ZipWithState over zero-extended operands; the
// result width is the larger operand width.
func ZipWithStateExpand[W Word](a, b Block[W], state W, f func(x, y, state W) (W, W)) (Block[W], W) {
	width := max(a.width, b.width)
	return ZipWithState(a.Resize(width), b.Resize(width), state, f)
}

// Reduce folds f over the words of b, least significant first.
func Reduce[W Word, R any](b Block[W], init R, f func(acc R, w W) R) R {
	acc := init
	for _, w := range b.words {
		acc = f(acc, w)
	}
	return acc
}

// ZipReduce folds f over the word pairs of a and b, least significant
// first, visiting as many words as the narrower operand holds.
func ZipReduce[W Word, R any](a, b Block[W], init R, f func(acc R, x, y W) R) R {
	n := min(len(a.words), len(b.words))
	acc := init
	for i := 0; i < n; i++ {
		acc = f(acc, a.words[i], b.words[i])
	}
	return acc
}

// ZipReduceExpand folds f over the word pairs of a and b after
// zero-extending the narrower operand to the wider operand's width.
func ZipReduceExpand[W Word, R any](a, b Block[W], init R, f func(acc R, x, y W) R) R {
	width := max(a.width, b.width)
	return ZipReduce(a.Resize(width), b.Resize(width), init, f)
}
