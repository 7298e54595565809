/*
 * Copyright 2024-present Open Networking Foundation (ONF) and the ONF Contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package hexdump

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexStringWrapsAtSixteenBytes(t *testing.T) {
	var out bytes.Buffer
	err := ProcessHexString(context.Background(), "c2 ef 0a 00 00 91 88 43 e1 38 a7 2b 08 00 45 00 00 3c", &out)
	require.NoError(t, err)
	assert.Equal(t,
		"000000 c2 ef 0a 00 00 91 88 43  e1 38 a7 2b 08 00 45 00\n"+
			"000010 00 3c \n",
		out.String())
}

func TestUppercaseAndTabs(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, ProcessHexString(context.Background(), "AB\tCD Ef", &out))
	assert.Equal(t, "000000 ab cd ef \n", out.String())
}

func TestOddTrailingDigitIsKept(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, ProcessHexString(context.Background(), "ab cd e", &out))
	assert.Equal(t, "000000 ab cd e\n", out.String())
}

func TestGroupedWordsAreNotHex(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, ProcessHexString(context.Background(), "c2ef0a00 00918843", &out))
	assert.Empty(t, out.String())
}

func TestIsHexLine(t *testing.T) {
	assert.True(t, isHexLine("00 11"))
	assert.True(t, isHexLine("\r\r0a\tFF"))
	assert.False(t, isHexLine("0a 1"))
	assert.False(t, isHexLine("0a-11"))
	assert.False(t, isHexLine("zz 11"))
	assert.False(t, isHexLine(""))
}

func TestFileTextLineResetsOffset(t *testing.T) {
	in := strings.Join([]string{
		"00 01 02 03 04 05 06 07 08 09 0a 0b 0c 0d 0e 0f",
		"10 11",
		"",
		"packet two",
		"aa bb",
	}, "\n")
	var out bytes.Buffer
	require.NoError(t, ProcessFile(context.Background(), "test", strings.NewReader(in), &out))
	assert.Equal(t,
		"000000 00 01 02 03 04 05 06 07  08 09 0a 0b 0c 0d 0e 0f\n"+
			"000010 10 11 \n"+
			"000000 aa bb \n",
		out.String())
}

func TestFilePartialLineDoesNotAdvanceOffset(t *testing.T) {
	in := "aa bb\ncc dd\n"
	var out bytes.Buffer
	require.NoError(t, ProcessFile(context.Background(), "test", strings.NewReader(in), &out))
	assert.Equal(t, "000000 aa bb \n000000 cc dd \n", out.String())
}

func TestSinglePacketJoinsLines(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, ProcessSingle(context.Background(), "test", strings.NewReader("aa bb\r\ncc dd"), &out))
	assert.Equal(t, "000000 aa bb cc dd \n", out.String())
}

func TestSinglePacketNeedsLeadingHex(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, ProcessSingle(context.Background(), "test", strings.NewReader("header\naa bb\n"), &out))
	assert.Empty(t, out.String())
}

func TestFormatterStateMachine(t *testing.T) {
	var out bytes.Buffer
	f := NewFormatter(context.Background(), "test", &out)
	assert.Equal(t, hexdumpStIdle, f.pFsm.PFsm.Current())

	require.NoError(t, f.WriteLine("00 01 02 03 04 05 06 07 08 09 0a 0b 0c 0d 0e 0f"))
	assert.Equal(t, hexdumpStPacket, f.pFsm.PFsm.Current())
	assert.Equal(t, uint32(16), f.Offset())

	require.NoError(t, f.WriteLine(""))
	assert.Equal(t, hexdumpStPacket, f.pFsm.PFsm.Current())

	require.NoError(t, f.WriteLine("-- next --"))
	assert.Equal(t, hexdumpStIdle, f.pFsm.PFsm.Current())
	assert.Equal(t, uint32(0), f.Offset())

	require.NoError(t, f.WriteLine("still text"))
	assert.Equal(t, hexdumpStIdle, f.pFsm.PFsm.Current())
}
