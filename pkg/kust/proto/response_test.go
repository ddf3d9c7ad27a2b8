package proto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name   string
		in     string
		expect Response
	}{
		{
			"temperature with sign",
			"IBRTer00+00215",
			Response{Command: "RT", ErrCode: "00", Value: "00215"},
		},
		{
			"crlf terminated",
			"IBRRer00+00100\r\n",
			Response{Command: "RR", ErrCode: "00", Value: "00100"},
		},
		{
			"firmware free text",
			"IBRFer00 V1.07",
			Response{Command: "RF", ErrCode: "00", Value: "V1.07"},
		},
		{
			"nonzero error code",
			"IBRTer13+00000",
			Response{Command: "RT", ErrCode: "13", Value: "00000"},
		},
		{
			"filler before value",
			"IBRIer00xx +00042",
			Response{Command: "RI", ErrCode: "00", Value: "00042"},
		},
		{
			"value swallowed by filler",
			"IBRTer0000215",
			Response{Command: "RT", ErrCode: "00", Value: ""},
		},
		{
			"short numeric falls back to text",
			"IBRRer00+123",
			Response{Command: "RR", ErrCode: "00", Value: "123"},
		},
		{
			"five digit field trims trailing garbage",
			"IBRTer00+0021599",
			Response{Command: "RT", ErrCode: "00", Value: "00215"},
		},
		{
			"negative value as text",
			"IBRTer00 -00042",
			Response{Command: "RT", ErrCode: "00", Value: "-00042"},
		},
		{
			"no value at all",
			"IBEIer00",
			Response{Command: "EI", ErrCode: "00", Value: ""},
		},
		{"empty line", "", Response{}},
		{"garbage", "hello world", Response{}},
		{"truncated after prefix", "IBRT", Response{}},
		{"truncated error code", "IBRTer0", Response{}},
		{"digits as command", "IB12er00+00215", Response{}},
		{"wrong prefix", "XXRTer00+00215", Response{}},
		{"missing er literal", "IBRTee00+00215", Response{}},
		{"non-digit error code", "IBRTerxx+00215", Response{}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expect, Parse(tc.in))
		})
	}
}

func TestResponseOK(t *testing.T) {
	testCases := []struct {
		name string
		resp Response
		cmd  string
		ok   bool
	}{
		{"match", Response{Command: "RT", ErrCode: "00"}, "RT", true},
		{"wrong command", Response{Command: "RR", ErrCode: "00"}, "RT", false},
		{"nonzero error code", Response{Command: "RT", ErrCode: "13"}, "RT", false},
		{"sentinel never validates", Response{}, "RT", false},
		{"sentinel against empty", Response{}, "", false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.ok, tc.resp.OK(tc.cmd))
		})
	}
}
