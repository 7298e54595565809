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

// Package version is used to inject build time information via -X variables
package version

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/opencord/voltha-lib-go/v7/pkg/log"
)

// Default build-time variable.
// These values can (should) be overridden via ldflags when built with
// `make`
var (
	version   = "unknown-version"
	goVersion = "unknown-goversion"
	vcsRef    = "unknown-vcsref"
	vcsDirty  = "unknown-vcsdirty"
	buildTime = "unknown-buildtime"
	goos      = "unknown-os"
	arch      = "unknown-arch"
)

const unknownVersion = "unknown-version"

// InfoType is a collection of build time environment variables
type InfoType struct {
	Version   string `json:"version" yaml:"version"`
	GoVersion string `json:"goversion" yaml:"goversion"`
	VcsRef    string `json:"vcsref" yaml:"vcsref"`
	VcsDirty  string `json:"vcsdirty" yaml:"vcsdirty"`
	BuildTime string `json:"buildtime" yaml:"buildtime"`
	Os        string `json:"os" yaml:"os"`
	Arch      string `json:"arch" yaml:"arch"`
}

// VersionInfo is an instance of build time environment variables populated at build time via -X arguments
var VersionInfo InfoType

var logger log.CLogger

func init() {
	VersionInfo = InfoType{
		Version:   version,
		VcsRef:    vcsRef,
		VcsDirty:  vcsDirty,
		GoVersion: goVersion,
		Os:        goos,
		Arch:      arch,
		BuildTime: buildTime,
	}
	// a plain go build leaves the toolchain fields unset
	if VersionInfo.GoVersion == "unknown-goversion" {
		VersionInfo.GoVersion = runtime.Version()
	}
	if VersionInfo.Os == "unknown-os" {
		VersionInfo.Os = runtime.GOOS
		VersionInfo.Arch = runtime.GOARCH
	}
	var err error
	logger, err = log.RegisterPackage(log.JSON, log.ErrorLevel, log.Fields{"pkg": "version"})
	if err != nil {
		panic(err)
	}
}

func (v InfoType) String(indent string) string {
	builder := strings.Builder{}

	builder.WriteString(fmt.Sprintf("%sVersion:      %s\n", indent, v.Version))
	builder.WriteString(fmt.Sprintf("%sGoVersion:    %s\n", indent, v.GoVersion))
	builder.WriteString(fmt.Sprintf("%sVCS Ref:      %s\n", indent, v.VcsRef))
	builder.WriteString(fmt.Sprintf("%sVCS Dirty:    %s\n", indent, v.VcsDirty))
	builder.WriteString(fmt.Sprintf("%sBuilt:        %s\n", indent, v.BuildTime))
	builder.WriteString(fmt.Sprintf("%sOS/Arch:      %s/%s\n", indent, v.Os, v.Arch))
	return builder.String()
}

// GetCodeVersion falls back to the VERSION file in the working directory when no version was linked in
func GetCodeVersion(ctx context.Context) string {
	return codeVersion(ctx, VersionInfo.Version, "VERSION")
}

func codeVersion(ctx context.Context, linked string, versionFile string) string {
	if linked != unknownVersion {
		return linked
	}
	content, err := os.ReadFile(versionFile)
	if err != nil {
		logger.Warnw(ctx, "VERSION-file-not-readable", log.Fields{"file": versionFile, "error": err})
		return linked
	}
	return strings.TrimSpace(string(content))
}
