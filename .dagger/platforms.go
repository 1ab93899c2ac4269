package main

import (
	"slices"
	"strings"
)

// Platform is a target of the released binaries.
type Platform struct {
	OS   string
	Arch string
	// ARM holds GOARM for 32 bit arm targets.
	ARM string
}

// Platforms lists the targets depan is released for.
var Platforms = []Platform{
	{OS: "linux", Arch: "386"},
	{OS: "linux", Arch: "amd64"},
	{OS: "linux", Arch: "arm", ARM: "6"},
	{OS: "linux", Arch: "arm", ARM: "7"},
	{OS: "linux", Arch: "arm64"},
	{OS: "linux", Arch: "ppc64le"},
	{OS: "linux", Arch: "riscv64"},
	{OS: "linux", Arch: "s390x"},
	{OS: "darwin", Arch: "amd64"},
	{OS: "darwin", Arch: "arm64"},
	{OS: "windows", Arch: "386"},
	{OS: "windows", Arch: "amd64"},
}

// String returns the docker style platform name, such as linux/arm/v7.
func (p Platform) String() string {
	if p.ARM != "" {
		return p.OS + "/" + p.Arch + "/v" + p.ARM
	}
	return p.OS + "/" + p.Arch
}

// BinaryName returns the released file name of the binary for this platform.
func (p Platform) BinaryName() string {
	name := "depan-" + p.OS + "-" + p.Arch
	if p.ARM != "" {
		name += "v" + p.ARM
	}
	if p.OS == "windows" {
		name += ".exe"
	}
	return name
}

// PlatformNames returns the names of the supported platforms, sorted.
func PlatformNames() []string {
	names := make([]string, 0, len(Platforms))
	for _, p := range Platforms {
		names = append(names, p.String())
	}
	slices.SortFunc(names, strings.Compare)
	return names
}
