package xmlb

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringify(t *testing.T) {
	data := []struct {
		value    interface{}
		expected string
	}{
		{nil, ""},
		{"s", "s"},
		{[]byte("b"), "b"},
		{true, "true"},
		{false, "false"},
		{2, "2"},
		{int64(-9000000000), "-9000000000"},
		{uint64(18446744073709551615), "18446744073709551615"},
		{2.5, "2.5"},
		{float32(0.25), "0.25"},
		{1e21, "1e+21"},
		{net.IPv4(127, 0, 0, 1), "127.0.0.1"},
		{struct{ A int }{42}, "{42}"},
	}

	for _, c := range data {
		if !assert.Equal(t, c.expected, stringify(c.value), "stringify(%#v)", c.value) {
			return
		}
	}
}
