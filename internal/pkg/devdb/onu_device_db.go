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
	"context"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/opencord/voltha-lib-go/v7/pkg/log"

	"github.com/opencord/omci-dissector-go/internal/pkg/omcidec"
	"github.com/opencord/omci-dissector-go/internal/pkg/omcidef"
)

// AttributeValueMap holds the hex encoded attribute values of one ME instance by attribute name
type AttributeValueMap map[string]string

// MeDbMap type holds the ME instances seen on the ONU.
type MeDbMap map[uint16]map[uint16]AttributeValueMap

// UnknownMeOrAttribName type to be used for unknown ME and attribute names
type UnknownMeOrAttribName string

// names for unknown ME and attribute identifiers
const (
	CUnknownItuG988ManagedEntity        = "UnknownItuG988ManagedEntity"
	CUnknownVendorSpecificManagedEntity = "UnknownVendorSpecificManagedEntity"
	CUnknownAttributesManagedEntity     = "UnknownAttributesManagedEntity"
)

// UnknownMeAndAttribDbMap type holds MEs and attributes without schema
type UnknownMeAndAttribDbMap map[UnknownMeOrAttribName]map[uint16]map[uint16]UnknownAttribs

// CStartUnknownMeAttribsInBaseLayerPayload defines start of unknown ME attribs after ClassID, InstanceID and AttribMask
const CStartUnknownMeAttribsInBaseLayerPayload = 6

// UnknownAttribs keeps the undecoded part of a MIB upload record
type UnknownAttribs struct {
	AttribMask  string `json:"AttributeMask" yaml:"attribute_mask"`
	AttribBytes string `json:"AttributeBytes" yaml:"attribute_bytes"`
}

// MIBUploadStatus represents the status of MIBUpload for a particular ONT.
type MIBUploadStatus int

// Values for Status of the ONT MIB Upload.
const (
	NotStarted MIBUploadStatus = iota // MIB upload has not started
	InProgress                        // MIB upload is in progress
	Failed                            // MIB upload has failed
	Completed                         // MIB upload is completed
)

func (s MIBUploadStatus) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Failed:
		return "failed"
	case Completed:
		return "completed"
	}
	return "not started"
}

// OnuDeviceDB structure holds the ME instances an ONU reported or was configured with
type OnuDeviceDB struct {
	deviceID             string
	MeDb                 MeDbMap
	UnknownMeAndAttribDb UnknownMeAndAttribDbMap
	MIBUploadStatus      MIBUploadStatus
	uploadExpected       int
	uploadReceived       int
	MeDbLock             sync.RWMutex
}

// NewOnuDeviceDB returns a new instance for the frames of one capture source
func NewOnuDeviceDB(ctx context.Context, aDeviceID string) *OnuDeviceDB {
	logger.Debugw(ctx, "Init OnuDeviceDB for:", log.Fields{"device-id": aDeviceID})
	return &OnuDeviceDB{
		deviceID:             aDeviceID,
		MeDb:                 make(MeDbMap),
		UnknownMeAndAttribDb: make(UnknownMeAndAttribDbMap),
		MIBUploadStatus:      NotStarted,
	}
}

// Apply updates the DB from one decoded frame. MIB reset, MIB upload and MIB upload next
// responses rebuild the MIB; create, set and delete requests modify it.
func (OnuDeviceDB *OnuDeviceDB) Apply(ctx context.Context, frame *omcidec.Frame) {
	hdr := frame.Header
	switch {
	case hdr.MessageType == omcidef.MibReset && hdr.AK:
		if len(frame.Content) > 0 && frame.Content[0] == 0 {
			OnuDeviceDB.reset(ctx)
		}
	case hdr.MessageType == omcidef.MibUpload && hdr.AK:
		if len(frame.Content) >= 2 {
			OnuDeviceDB.startUpload(ctx, int(binary.BigEndian.Uint16(frame.Content)))
		}
	case hdr.MessageType == omcidef.MibUploadNext && hdr.AK:
		OnuDeviceDB.putUploadRecord(ctx, frame)
	case hdr.MessageType == omcidef.Create && hdr.AR,
		hdr.MessageType == omcidef.Set && hdr.AR:
		OnuDeviceDB.PutMe(ctx, hdr.ClassID, hdr.Instance, attributeValues(frame.Attributes))
	case hdr.MessageType == omcidef.Delete && hdr.AR:
		OnuDeviceDB.DeleteMe(hdr.ClassID, hdr.Instance)
	}
}

func attributeValues(attributes []omcidec.DecodedAttribute) AttributeValueMap {
	values := make(AttributeValueMap, len(attributes))
	for _, a := range attributes {
		values[a.Name] = hex.EncodeToString(a.Raw)
	}
	return values
}

func (OnuDeviceDB *OnuDeviceDB) reset(ctx context.Context) {
	OnuDeviceDB.MeDbLock.Lock()
	defer OnuDeviceDB.MeDbLock.Unlock()
	logger.Debugw(ctx, "MIB reset - clearing db", log.Fields{"device-id": OnuDeviceDB.deviceID})
	OnuDeviceDB.MeDb = make(MeDbMap)
	OnuDeviceDB.UnknownMeAndAttribDb = make(UnknownMeAndAttribDbMap)
	OnuDeviceDB.MIBUploadStatus = NotStarted
	OnuDeviceDB.uploadExpected = 0
	OnuDeviceDB.uploadReceived = 0
}

func (OnuDeviceDB *OnuDeviceDB) startUpload(ctx context.Context, commands int) {
	OnuDeviceDB.MeDbLock.Lock()
	defer OnuDeviceDB.MeDbLock.Unlock()
	logger.Debugw(ctx, "MIB upload started", log.Fields{"device-id": OnuDeviceDB.deviceID, "commands": commands})
	OnuDeviceDB.uploadExpected = commands
	OnuDeviceDB.uploadReceived = 0
	if commands == 0 {
		OnuDeviceDB.MIBUploadStatus = Completed
		return
	}
	OnuDeviceDB.MIBUploadStatus = InProgress
}

func (OnuDeviceDB *OnuDeviceDB) putUploadRecord(ctx context.Context, frame *omcidec.Frame) {
	rec, err := omcidec.DecodeMibUploadNext(frame.Content)
	if err != nil {
		logger.Warnw(ctx, "MIB upload record not decodable", log.Fields{"device-id": OnuDeviceDB.deviceID, "error": err})
		OnuDeviceDB.setStatus(Failed)
		return
	}
	payload := []byte(frame.Content[CStartUnknownMeAttribsInBaseLayerPayload:])
	switch {
	case !rec.Class.Known && omcidef.IsVendorSpecificClass(rec.ClassID):
		OnuDeviceDB.PutUnknownMeOrAttrib(ctx, CUnknownVendorSpecificManagedEntity, rec.ClassID, rec.Instance, rec.Mask, payload)
	case !rec.Class.Known:
		OnuDeviceDB.PutUnknownMeOrAttrib(ctx, CUnknownItuG988ManagedEntity, rec.ClassID, rec.Instance, rec.Mask, payload)
	default:
		if omcidec.MaskBeyondSchema(rec.Class, rec.Mask) != 0 {
			OnuDeviceDB.PutUnknownMeOrAttrib(ctx, CUnknownAttributesManagedEntity, rec.ClassID, rec.Instance, rec.Mask, payload)
		}
		OnuDeviceDB.PutMe(ctx, rec.ClassID, rec.Instance, attributeValues(rec.Attributes))
	}

	OnuDeviceDB.MeDbLock.Lock()
	defer OnuDeviceDB.MeDbLock.Unlock()
	OnuDeviceDB.uploadReceived++
	if OnuDeviceDB.MIBUploadStatus == InProgress && OnuDeviceDB.uploadReceived >= OnuDeviceDB.uploadExpected {
		logger.Debugw(ctx, "MIB upload completed", log.Fields{"device-id": OnuDeviceDB.deviceID,
			"records": OnuDeviceDB.uploadReceived})
		OnuDeviceDB.MIBUploadStatus = Completed
	}
}

func (OnuDeviceDB *OnuDeviceDB) setStatus(status MIBUploadStatus) {
	OnuDeviceDB.MeDbLock.Lock()
	defer OnuDeviceDB.MeDbLock.Unlock()
	OnuDeviceDB.MIBUploadStatus = status
}

// Status returns the MIB upload state and the number of upload records seen
func (OnuDeviceDB *OnuDeviceDB) Status() (MIBUploadStatus, int) {
	OnuDeviceDB.MeDbLock.RLock()
	defer OnuDeviceDB.MeDbLock.RUnlock()
	return OnuDeviceDB.MIBUploadStatus, OnuDeviceDB.uploadReceived
}

// PutMe puts an ME instance into the DB, attributes of a known instance are merged
func (OnuDeviceDB *OnuDeviceDB) PutMe(ctx context.Context, meClassID uint16, meEntityID uint16, meAttributes AttributeValueMap) {
	//filter out the OnuData
	if meClassID == omcidef.OnuDataClassID {
		return
	}
	OnuDeviceDB.MeDbLock.Lock()
	defer OnuDeviceDB.MeDbLock.Unlock()
	meDb := OnuDeviceDB.MeDb
	if _, ok := meDb[meClassID]; !ok {
		logger.Debugw(ctx, "meClassID not found - add to db :", log.Fields{"device-id": OnuDeviceDB.deviceID, "class-id": meClassID})
		meDb[meClassID] = make(map[uint16]AttributeValueMap)
	}
	meAttribs, ok := meDb[meClassID][meEntityID]
	if !ok {
		meAttribs = make(AttributeValueMap, len(meAttributes))
		meDb[meClassID][meEntityID] = meAttribs
	}
	for k, v := range meAttributes {
		meAttribs[k] = v
	}
}

// GetMe returns an ME instance from the DB
func (OnuDeviceDB *OnuDeviceDB) GetMe(meClassID uint16, meEntityID uint16) AttributeValueMap {
	OnuDeviceDB.MeDbLock.RLock()
	defer OnuDeviceDB.MeDbLock.RUnlock()
	if meAttributes, present := OnuDeviceDB.MeDb[meClassID][meEntityID]; present {
		return meAttributes
	}
	return nil
}

// DeleteMe deletes an ME instance from the DB
func (OnuDeviceDB *OnuDeviceDB) DeleteMe(meClassID uint16, meEntityID uint16) {
	OnuDeviceDB.MeDbLock.Lock()
	defer OnuDeviceDB.MeDbLock.Unlock()
	delete(OnuDeviceDB.MeDb[meClassID], meEntityID)
	if len(OnuDeviceDB.MeDb[meClassID]) == 0 {
		delete(OnuDeviceDB.MeDb, meClassID)
	}
}

// GetSortedClassIDs returns the class ids present in the DB in ascending order
func (OnuDeviceDB *OnuDeviceDB) GetSortedClassIDs() []uint16 {
	OnuDeviceDB.MeDbLock.RLock()
	defer OnuDeviceDB.MeDbLock.RUnlock()
	classIDs := make([]uint16, 0, len(OnuDeviceDB.MeDb))
	for k := range OnuDeviceDB.MeDb {
		classIDs = append(classIDs, k)
	}
	sort.Slice(classIDs, func(i, j int) bool { return classIDs[i] < classIDs[j] })
	return classIDs
}

// GetSortedInstKeys returns a sorted list of all instances of an ME
func (OnuDeviceDB *OnuDeviceDB) GetSortedInstKeys(meClassID uint16) []uint16 {
	OnuDeviceDB.MeDbLock.RLock()
	defer OnuDeviceDB.MeDbLock.RUnlock()
	var meInstKeys []uint16
	for k := range OnuDeviceDB.MeDb[meClassID] {
		meInstKeys = append(meInstKeys, k)
	}
	sort.Slice(meInstKeys, func(i, j int) bool { return meInstKeys[i] < meInstKeys[j] })
	return meInstKeys
}

// GetNumberOfInst returns the number of instances of an ME
func (OnuDeviceDB *OnuDeviceDB) GetNumberOfInst(meClassID uint16) int {
	OnuDeviceDB.MeDbLock.RLock()
	defer OnuDeviceDB.MeDbLock.RUnlock()
	return len(OnuDeviceDB.MeDb[meClassID])
}

// PutUnknownMeOrAttrib puts an instance with unknown ME or attributes into the DB; the first report wins
func (OnuDeviceDB *OnuDeviceDB) PutUnknownMeOrAttrib(ctx context.Context, aMeName UnknownMeOrAttribName, aMeClassID uint16, aMeEntityID uint16,
	aMeAttributeMask uint16, aMePayload []byte) {

	logger.Debugw(ctx, "unknown ME or attributes", log.Fields{"device-id": OnuDeviceDB.deviceID, "kind": aMeName,
		"class-id": aMeClassID, "entity-id": aMeEntityID})
	attribs := UnknownAttribs{fmt.Sprintf("0x%04x", aMeAttributeMask), hex.EncodeToString(aMePayload)}

	OnuDeviceDB.MeDbLock.Lock()
	defer OnuDeviceDB.MeDbLock.Unlock()
	unknownMeDb := OnuDeviceDB.UnknownMeAndAttribDb
	if _, ok := unknownMeDb[aMeName]; !ok {
		unknownMeDb[aMeName] = make(map[uint16]map[uint16]UnknownAttribs)
	}
	if _, ok := unknownMeDb[aMeName][aMeClassID]; !ok {
		unknownMeDb[aMeName][aMeClassID] = make(map[uint16]UnknownAttribs)
	}
	if _, ok := unknownMeDb[aMeName][aMeClassID][aMeEntityID]; !ok {
		unknownMeDb[aMeName][aMeClassID][aMeEntityID] = attribs
	}
}

// WriteTo lists the DB content ordered by class and instance
func (OnuDeviceDB *OnuDeviceDB) WriteTo(w io.Writer) (int64, error) {
	var written int64
	write := func(format string, args ...interface{}) error {
		n, err := fmt.Fprintf(w, format, args...)
		written += int64(n)
		return err
	}
	status, records := OnuDeviceDB.Status()
	if err := write("MIB of %s: upload %s, %d records\n", OnuDeviceDB.deviceID, status, records); err != nil {
		return written, err
	}
	for _, classID := range OnuDeviceDB.GetSortedClassIDs() {
		meClass := omcidef.LookupClass(classID)
		for _, instance := range OnuDeviceDB.GetSortedInstKeys(classID) {
			if err := write("%d %s, instance 0x%04x\n", classID, meClass.Name, instance); err != nil {
				return written, err
			}
			attributes := OnuDeviceDB.GetMe(classID, instance)
			// schema order, not map order
			for _, def := range meClass.Attributes {
				if v, ok := attributes[def.Name]; ok {
					if err := write("    %s: %s\n", def.Name, v); err != nil {
						return written, err
					}
				}
			}
		}
	}

	OnuDeviceDB.MeDbLock.RLock()
	defer OnuDeviceDB.MeDbLock.RUnlock()
	for _, name := range []UnknownMeOrAttribName{CUnknownItuG988ManagedEntity, CUnknownVendorSpecificManagedEntity,
		CUnknownAttributesManagedEntity} {
		classes := OnuDeviceDB.UnknownMeAndAttribDb[name]
		classIDs := make([]uint16, 0, len(classes))
		for classID := range classes {
			classIDs = append(classIDs, classID)
		}
		sort.Slice(classIDs, func(i, j int) bool { return classIDs[i] < classIDs[j] })
		for _, classID := range classIDs {
			instances := make([]uint16, 0, len(classes[classID]))
			for instance := range classes[classID] {
				instances = append(instances, instance)
			}
			sort.Slice(instances, func(i, j int) bool { return instances[i] < instances[j] })
			for _, instance := range instances {
				a := classes[classID][instance]
				if err := write("%s %d, instance 0x%04x: mask %s, %s\n", name, classID, instance, a.AttribMask, a.AttribBytes); err != nil {
					return written, err
				}
			}
		}
	}
	return written, nil
}
