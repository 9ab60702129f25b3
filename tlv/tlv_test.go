package tlv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eput-tools/eput.go/tlv"
)

func TestFindFirstSkipsNullBlocks(t *testing.T) {
	buf := []byte{0x00, 0x00, 0x03, 0x05, 1, 2, 3, 4, 5, 0xFE}

	offset, length, found := tlv.FindFirst(buf, tlv.TypeNDEFMessage)
	assert.True(t, found)
	assert.Equal(t, 4, offset)
	assert.Equal(t, 5, length)
	assert.Equal(t, []byte{1, 2, 3, 4, 5}, buf[offset:offset+length])
}

func TestFindFirstStopsAtTerminator(t *testing.T) {
	buf := []byte{0xFE, 0x03, 0x01, 0xAA}

	_, _, found := tlv.FindFirst(buf, tlv.TypeNDEFMessage)
	assert.False(t, found)
}

func TestFindFirstExtendedLength(t *testing.T) {
	buf := []byte{0x03, 0xFF, 0x00, 0x02, 0xAA, 0xBB}

	offset, length, found := tlv.FindFirst(buf, tlv.TypeNDEFMessage)
	assert.True(t, found)
	assert.Equal(t, 4, offset)
	assert.Equal(t, 2, length)
}

func TestFindFirstSkipsOtherBlocks(t *testing.T) {
	buf := []byte{0x01, 0x02, 0xAA, 0xBB, 0x03, 0x01, 0xCC, 0xFE}

	offset, length, found := tlv.FindFirst(buf, tlv.TypeNDEFMessage)
	assert.True(t, found)
	assert.Equal(t, 6, offset)
	assert.Equal(t, 1, length)
}

func TestFindFirstTruncatedBuffers(t *testing.T) {
	// a buffer ending inside a type or length field holds no block
	for _, buf := range [][]byte{
		nil,
		{0x03},
		{0x03, 0xFF},
		{0x03, 0xFF, 0x00},
		{0x00, 0x00, 0x00},
	} {
		_, _, found := tlv.FindFirst(buf, tlv.TypeNDEFMessage)
		assert.False(t, found, "buffer %x", buf)
	}
}

func TestFindFirstReservedLength(t *testing.T) {
	buf := []byte{0x03, 0xFF, 0xFF, 0xFF, 0xAA}

	_, _, found := tlv.FindFirst(buf, tlv.TypeNDEFMessage)
	assert.False(t, found)
}

func TestAppendShortForm(t *testing.T) {
	value := []byte{0xDE, 0xAD}

	buf, err := tlv.Append(nil, tlv.TypeNDEFMessage, value)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x03, 0x02, 0xDE, 0xAD}, buf)
}

func TestAppendExtendedForm(t *testing.T) {
	value := make([]byte, 0xFF)

	buf, err := tlv.Append(nil, tlv.TypeNDEFMessage, value)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x03, 0xFF, 0x00, 0xFF}, buf[:4])
	assert.Len(t, buf, 4+len(value))

	offset, length, found := tlv.FindFirst(buf, tlv.TypeNDEFMessage)
	assert.True(t, found)
	assert.Equal(t, 4, offset)
	assert.Equal(t, len(value), length)
}

func TestAppendValueTooLong(t *testing.T) {
	_, err := tlv.Append(nil, tlv.TypeNDEFMessage, make([]byte, tlv.MaxValueLength+1))
	assert.ErrorIs(t, err, tlv.ErrValueTooLong)
}

func TestAppendTerminator(t *testing.T) {
	buf, err := tlv.Append(nil, tlv.TypeNDEFMessage, []byte{0x01})
	require.NoError(t, err)
	buf = tlv.AppendTerminator(buf)
	assert.Equal(t, byte(tlv.TypeTerminator), buf[len(buf)-1])
}

func TestAppendFindRoundTrip(t *testing.T) {
	for _, size := range []int{0, 1, 0xFE, 0xFF, 0x100, tlv.MaxValueLength} {
		value := make([]byte, size)
		for i := range value {
			value[i] = byte(i)
		}

		buf := []byte{0x00}
		buf, err := tlv.Append(buf, tlv.TypeNDEFMessage, value)
		require.NoError(t, err)
		buf = tlv.AppendTerminator(buf)

		offset, length, found := tlv.FindFirst(buf, tlv.TypeNDEFMessage)
		require.True(t, found, "size %d", size)
		assert.Equal(t, value, buf[offset:offset+length])
	}
}
