package tablefmt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bjaus/tablefmt"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "512.00  B", tablefmt.FormatBytes(512))
	assert.Equal(t, "1024.00  B", tablefmt.FormatBytes(1024))
	assert.Equal(t, "2.00 KB", tablefmt.FormatBytes(2048))
	assert.Equal(t, "1.50 KB", tablefmt.FormatBytes(1536))
	assert.Equal(t, "3.00 GB", tablefmt.FormatBytes(int64(3)*1024*1024*1024))
	assert.Equal(t, "2.00 TB", tablefmt.FormatBytes(uint64(2)*1024*1024*1024*1024))
}

func TestFormatBytesStrings(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "2.00 KB", tablefmt.FormatBytes("2048"))
	assert.Empty(t, tablefmt.FormatBytes("not a number"))
}

func TestFormatBytesNonNumeric(t *testing.T) {
	t.Parallel()
	assert.Empty(t, tablefmt.FormatBytes(nil))
	assert.Empty(t, tablefmt.FormatBytes(struct{}{}))
}

func TestFormatCommas(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "1,234,567", tablefmt.FormatCommas(1234567))
	assert.Equal(t, "-1,234", tablefmt.FormatCommas(-1234))
	assert.Equal(t, "0", tablefmt.FormatCommas(0))
	assert.Equal(t, "987,654", tablefmt.FormatCommas("987654"))
	assert.Empty(t, tablefmt.FormatCommas("nope"))
	assert.Empty(t, tablefmt.FormatCommas(nil))
}
