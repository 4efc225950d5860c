/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package transpositiontable

import (
	"os"
	"path"
	"runtime"
	"testing"
	"unsafe"

	logging2 "github.com/op/go-logging"
	"github.com/stretchr/testify/assert"

	"github.com/leiserchess/engine/internal/config"
	. "github.com/leiserchess/engine/internal/game"
	"github.com/leiserchess/engine/internal/logging"
)

var logTest *logging2.Logger

func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

func TestMain(m *testing.M) {
	config.Setup()
	logTest = logging.GetTestLog()
	code := m.Run()
	os.Exit(code)
}

func TestEntrySize(t *testing.T) {
	var e TtEntry
	assert.EqualValues(t, TtEntrySize, unsafe.Sizeof(e))
	logTest.Debugf("Size of Entry %d bytes", unsafe.Sizeof(e))
}

func TestNewResize(t *testing.T) {
	tt := NewTtTable(2)
	assert.Equal(t, uint64(65_536), tt.maxNumberOfEntries)
	assert.Equal(t, 65_536, cap(tt.data))
	logTest.Debug(tt.String())

	tt = NewTtTable(64)
	assert.Equal(t, uint64(2_097_152), tt.maxNumberOfEntries)
	assert.Equal(t, 2_097_152, cap(tt.data))
}

func TestPutAndProbe(t *testing.T) {
	tt := NewTtTable(4)

	mv := NewMove(Pawn, RotNone, SquareOf(3, 4), SquareOf(3, 5))

	tt.Put(Key(111), mv, 4, Value(17), ValueAlpha, Value(9))
	assert.EqualValues(t, 1, tt.Len())
	assert.EqualValues(t, 1, tt.Stats.numberOfPuts)

	e := tt.Probe(Key(111))
	assert.NotNil(t, e)
	assert.EqualValues(t, Key(111), e.Key())
	assert.EqualValues(t, mv, e.Move())
	assert.EqualValues(t, 4, e.Depth())
	assert.EqualValues(t, ValueAlpha, e.Vtype())
	assert.EqualValues(t, Value(17), e.Value())
	assert.EqualValues(t, Value(9), e.Eval())

	// the first probe already decreased age from its initial 1 to 0; a
	// second probe leaves it at 0
	e = tt.Probe(Key(111))
	assert.EqualValues(t, 0, e.Age())
}

func TestPutUpdatesSameKey(t *testing.T) {
	tt := NewTtTable(4)
	mv := NewMove(King, RotNone, SquareOf(4, 4), SquareOf(4, 5))

	tt.Put(Key(222), mv, 3, Value(5), ValueBeta, Value(5))
	tt.Put(Key(222), mv, 6, Value(9), ValueExact, Value(9))

	assert.EqualValues(t, 1, tt.Len())
	assert.EqualValues(t, 1, tt.Stats.numberOfUpdates)
	assert.EqualValues(t, 0, tt.Stats.numberOfCollisions)

	e := tt.Probe(Key(222))
	assert.EqualValues(t, Value(9), e.Value())
	assert.EqualValues(t, ValueExact, e.Vtype())
}

func TestPutCollision(t *testing.T) {
	tt := NewTtTable(4)
	mv := NewMove(Pawn, RotRight, SquareOf(3, 4), SquareOf(3, 4))

	tt.Put(Key(1), mv, 4, Value(1), ValueAlpha, Value(1))
	collidingKey := Key(1) + Key(tt.maxNumberOfEntries)
	tt.Put(collidingKey, mv, 6, Value(2), ValueExact, Value(2))

	assert.EqualValues(t, 1, tt.Len())
	assert.EqualValues(t, 1, tt.Stats.numberOfCollisions)
	assert.EqualValues(t, 1, tt.Stats.numberOfOverwrites)

	e := tt.Probe(collidingKey)
	assert.NotNil(t, e)
	assert.EqualValues(t, Value(2), e.Value())

	e = tt.Probe(Key(1))
	assert.Nil(t, e)
}

func TestClear(t *testing.T) {
	tt := NewTtTable(4)
	mv := NewMove(Pawn, RotNone, SquareOf(3, 4), SquareOf(3, 5))
	tt.Put(Key(9), mv, 2, Value(2), ValueExact, Value(2))
	assert.EqualValues(t, 1, tt.Len())

	tt.Clear()
	assert.EqualValues(t, 0, tt.Len())
	assert.Nil(t, tt.Probe(Key(9)))
}

func TestAgeEntries(t *testing.T) {
	tt := NewTtTable(4)
	mv := NewMove(Pawn, RotNone, SquareOf(3, 4), SquareOf(3, 5))
	tt.Put(Key(1), mv, 2, Value(2), ValueExact, Value(2))

	e := tt.GetEntry(Key(1))
	assert.EqualValues(t, 1, e.Age())

	tt.AgeEntries()
	e = tt.GetEntry(Key(1))
	assert.EqualValues(t, 2, e.Age())
}
