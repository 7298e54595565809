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

package devdb

import (
	"bytes"
	"context"
	"testing"

	"github.com/opencord/omci-dissector-go/internal/pkg/omcidec"
	"github.com/opencord/omci-dissector-go/internal/pkg/omcidef"
	"github.com/opencord/omci-dissector-go/internal/pkg/omcienc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, b *omcienc.Builder) *omcidec.Frame {
	t.Helper()
	frame, err := omcidec.DecodeFrame(context.Background(), b.Bytes(), 0, omcidec.Options{})
	require.NoError(t, err)
	return frame
}

func uploadNext(classID, instance, mask uint16) *omcienc.Builder {
	return omcienc.NewBuilder().Header(1, omcidef.MibUploadNext, false, true, omcidef.OnuDataClassID, 0).
		Uint16(0, classID).Uint16(2, instance).MaskedAttributes(4, 6, classID, mask)
}

func TestMibUploadRebuildsDb(t *testing.T) {
	ctx := context.Background()
	db := NewOnuDeviceDB(ctx, "capture")

	db.Apply(ctx, decode(t, omcienc.NewBuilder().Header(1, omcidef.MibReset, false, true, omcidef.OnuDataClassID, 0)))
	status, _ := db.Status()
	assert.Equal(t, NotStarted, status)

	db.Apply(ctx, decode(t, omcienc.NewBuilder().Header(2, omcidef.MibUpload, false, true, omcidef.OnuDataClassID, 0).Uint16(0, 3)))
	status, _ = db.Status()
	assert.Equal(t, InProgress, status)

	db.Apply(ctx, decode(t, uploadNext(omcidef.TContClassID, 0x8001, 0xe000)))
	db.Apply(ctx, decode(t, uploadNext(400, 1, 0x8000).Content(6, 0xaa)))
	db.Apply(ctx, decode(t, uploadNext(65280, 2, 0x8000).Content(6, 0xbb)))

	status, records := db.Status()
	assert.Equal(t, Completed, status)
	assert.Equal(t, 3, records)

	assert.Equal(t, AttributeValueMap{"Alloc-ID": "0101", "Deprecated": "02", "Policy": "03"},
		db.GetMe(omcidef.TContClassID, 0x8001))
	assert.Equal(t, 1, db.GetNumberOfInst(omcidef.TContClassID))
	assert.Equal(t, []uint16{omcidef.TContClassID}, db.GetSortedClassIDs())

	itu := db.UnknownMeAndAttribDb[CUnknownItuG988ManagedEntity][400][1]
	assert.Equal(t, "0x8000", itu.AttribMask)
	assert.Equal(t, "aa", itu.AttribBytes[:2])
	assert.Contains(t, db.UnknownMeAndAttribDb[CUnknownVendorSpecificManagedEntity], uint16(65280))
}

func TestAttributesBeyondSchema(t *testing.T) {
	ctx := context.Background()
	db := NewOnuDeviceDB(ctx, "capture")
	db.Apply(ctx, decode(t, uploadNext(omcidef.TContClassID, 0x8002, 0xf000)))

	assert.Contains(t, db.UnknownMeAndAttribDb[CUnknownAttributesManagedEntity][omcidef.TContClassID], uint16(0x8002))
	assert.Len(t, db.GetMe(omcidef.TContClassID, 0x8002), 3)
}

func TestConfigurationRequests(t *testing.T) {
	ctx := context.Background()
	db := NewOnuDeviceDB(ctx, "capture")
	db.Apply(ctx, decode(t, uploadNext(omcidef.TContClassID, 0x8001, 0xe000)))

	set := omcienc.NewBuilder().Header(3, omcidef.Set, true, false, omcidef.TContClassID, 0x8001).
		Mask(0, 0x8000).Uint16(2, 0x0400)
	db.Apply(ctx, decode(t, set))
	assert.Equal(t, "0400", db.GetMe(omcidef.TContClassID, 0x8001)["Alloc-ID"])
	assert.Equal(t, "03", db.GetMe(omcidef.TContClassID, 0x8001)["Policy"])

	// responses do not modify the db
	db.Apply(ctx, decode(t, omcienc.NewBuilder().Header(4, omcidef.Delete, false, true, omcidef.TContClassID, 0x8001)))
	assert.NotNil(t, db.GetMe(omcidef.TContClassID, 0x8001))

	db.Apply(ctx, decode(t, omcienc.NewBuilder().Header(5, omcidef.Delete, true, false, omcidef.TContClassID, 0x8001)))
	assert.Nil(t, db.GetMe(omcidef.TContClassID, 0x8001))
	assert.Empty(t, db.GetSortedClassIDs())
}

func TestOnuDataIsFiltered(t *testing.T) {
	ctx := context.Background()
	db := NewOnuDeviceDB(ctx, "capture")
	db.PutMe(ctx, omcidef.OnuDataClassID, 0, AttributeValueMap{"MIB data sync": "00"})
	assert.Nil(t, db.GetMe(omcidef.OnuDataClassID, 0))
}

func TestWriteTo(t *testing.T) {
	ctx := context.Background()
	db := NewOnuDeviceDB(ctx, "capture")
	db.Apply(ctx, decode(t, omcienc.NewBuilder().Header(2, omcidef.MibUpload, false, true, omcidef.OnuDataClassID, 0).Uint16(0, 2)))
	db.Apply(ctx, decode(t, uploadNext(omcidef.TContClassID, 0x8001, 0xe000)))
	db.Apply(ctx, decode(t, uploadNext(400, 1, 0x8000)))

	var buf bytes.Buffer
	_, err := db.WriteTo(&buf)
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "MIB of capture: upload completed, 2 records\n")
	assert.Contains(t, out, "262 T-CONT, instance 0x8001\n    Alloc-ID: 0101\n    Deprecated: 02\n    Policy: 03\n")
	assert.Contains(t, out, "UnknownItuG988ManagedEntity 400, instance 0x0001: mask 0x8000, ")
}
