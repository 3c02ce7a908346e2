package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruthy(t *testing.T) {
	assert := assert.New(t)

	assert.False(Truthy(nil))
	assert.False(Truthy(Uninitialized{}))
	assert.False(Truthy(Nil{}))
	assert.False(Truthy(Int(0)))
	assert.False(Truthy(Float(0)))
	assert.False(Truthy(Bool(false)))

	assert.True(Truthy(Bool(true)))
	assert.True(Truthy(Int(-3)))
	assert.True(Truthy(Float(0.25)))
	assert.True(Truthy(String("")))
	assert.True(Truthy(NumericPair{Bank: Int(0), Addr: Int(0)}))
}

func TestEqual(t *testing.T) {
	assert := assert.New(t)

	assert.True(Equal(Int(3), Float(3)))
	assert.True(Equal(Nil{}, Nil{}))
	assert.True(Equal(String("a"), String("a")))
	assert.True(Equal(NumericPair{Int(1), Int(2)}, NumericPair{Float(1), Int(2)}))

	assert.False(Equal(Int(1), Bool(true)))
	assert.False(Equal(Nil{}, Uninitialized{}))
	assert.False(Equal(String("1"), Int(1)))
	assert.False(Equal(NumericPair{Int(1), Int(2)}, NumericPair{Int(2), Int(1)}))
}

func TestValueString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("nil", Nil{}.String())
	assert.Equal("true", Bool(true).String())
	assert.Equal("false", Bool(false).String())
	assert.Equal("-3", Float(-3).String())
	assert.Equal("0.125", Float(0.125).String())
	assert.Equal("12", Int(12).String())
	assert.Equal("1:256", NumericPair{Int(1), Int(256)}.String())
	assert.Equal("text", String("text").String())
}

func TestPromote(t *testing.T) {
	assert := assert.New(t)

	ai, bi, _, _, isInt := promote(Int(2), Int(3))
	assert.True(isInt)
	assert.Equal(int64(2), ai)
	assert.Equal(int64(3), bi)

	_, _, af, bf, isInt := promote(Int(2), Float(0.5))
	assert.False(isInt)
	assert.Equal(2.0, af)
	assert.Equal(0.5, bf)
}
