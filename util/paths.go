// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"
)

// EnsureAbsolute - resolve a relative path against a base directory
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureDirectory - resolve a directory against a base and create it,
// owner access only, if it is missing
func EnsureDirectory(base string, directory string) (string, error) {
	directory = EnsureAbsolute(base, directory)
	if err := os.MkdirAll(directory, 0o700); nil != err {
		return "", err
	}
	return directory, nil
}

// IsPlainName - true for a bare file name with no directory part
func IsPlainName(name string) bool {
	switch name {
	case "", ".", "..":
		return false
	}
	return filepath.Base(name) == name && filepath.Dir(name) == "."
}
