// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/editiond/util"
)

func TestEnsureAbsolute(t *testing.T) {
	base := filepath.FromSlash("/var/lib/editiond")

	assert.Equal(t, filepath.Join(base, "data"), util.EnsureAbsolute(base, "data"), "relative path")
	assert.Equal(t, filepath.Join(base, "log"), util.EnsureAbsolute(base, "./x/../log"), "unclean path")

	absolute := filepath.FromSlash("/tmp/editiond.leveldb")
	assert.Equal(t, absolute, util.EnsureAbsolute(base, absolute), "absolute path changed")
}

func TestEnsureDirectory(t *testing.T) {
	base := t.TempDir()

	directory, err := util.EnsureDirectory(base, "data/log")
	assert.Nil(t, err, "create")
	assert.Equal(t, filepath.Join(base, "data", "log"), directory, "wrong directory")

	info, err := os.Stat(directory)
	assert.Nil(t, err, "directory missing")
	assert.True(t, info.IsDir(), "not a directory")

	again, err := util.EnsureDirectory(base, directory)
	assert.Nil(t, err, "existing directory")
	assert.Equal(t, directory, again, "existing directory moved")

	file := filepath.Join(base, "file")
	assert.Nil(t, os.WriteFile(file, []byte("x"), 0o600), "write file")
	_, err = util.EnsureDirectory(base, "file")
	assert.NotNil(t, err, "file accepted as directory")
}

func TestIsPlainName(t *testing.T) {
	assert.True(t, util.IsPlainName("editiond.leveldb"), "plain name")
	assert.True(t, util.IsPlainName("editiond.log"), "plain name")

	assert.False(t, util.IsPlainName(""), "empty name")
	assert.False(t, util.IsPlainName("data/editiond.leveldb"), "relative path")
	assert.False(t, util.IsPlainName(filepath.FromSlash("/tmp/editiond.log")), "absolute path")
	assert.False(t, util.IsPlainName("."), "dot")
	assert.False(t, util.IsPlainName(".."), "parent")
}
