// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/editiond/account"
	"github.com/bitmark-inc/editiond/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLevelDBDirectory = "data"
	defaultDatabase         = "editiond.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "editiond.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// DatabaseType - location of the LevelDB files
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// Configuration - contents of the configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Program       string               `gluamapper:"program" json:"program"`
	Database      DatabaseType         `gluamapper:"database" json:"database"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`

	// decoded from Program
	ProgramAddress account.Address `gluamapper:"-" json:"-"`
}

// Get - read decode and verify the configuration
//
// creates the database and log directories if they do not exist
func Get(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultDatabase,
		},
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	options.ProgramAddress, err = account.AddressFromBase58(options.Program)
	if nil != err {
		return nil, fmt.Errorf("program: %q error: %s", options.Program, err)
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path separator
	for _, f := range []string{options.Database.Name, options.Logging.File} {
		if !util.IsPlainName(f) {
			return nil, fmt.Errorf("files: %q is not plain name", f)
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		directory, err := util.EnsureDirectory(options.DataDirectory, *d)
		if nil != err {
			return nil, err
		}
		*d = directory
	}
	options.Database.Name = util.EnsureAbsolute(options.Database.Directory, options.Database.Name)

	return options, nil
}
