// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/soak"
)

// basic defaults (directories and files are relative to the
// directory containing the configuration file)
const (
	defaultWorkers    = 4
	defaultKeySpace   = 10000
	defaultOperations = 100000
	defaultCheckEvery = 1000

	defaultLogDirectory = "log"
	defaultLogFile      = "avl-soak.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// Configuration - the whole soak run
type Configuration struct {
	Workers  int                  `gluamapper:"workers" json:"workers"`
	Duration int                  `gluamapper:"duration" json:"duration"` // seconds, 0 => no limit
	Soak     soak.Configuration   `gluamapper:"soak" json:"soak"`
	Logging  logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string, variables map[string]string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		Workers: defaultWorkers,
		Soak: soak.Configuration{
			KeySpace:      defaultKeySpace,
			Operations:    defaultOperations,
			CheckEvery:    defaultCheckEvery,
			InsertPercent: soak.DefaultInsertPercent,
		},
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "info",
			},
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options, variables); err != nil {
		return nil, err
	}

	if options.Workers <= 0 {
		return nil, fault.ErrInvalidWorkers
	}
	if options.Soak.KeySpace <= 0 {
		return nil, fault.ErrInvalidKeySpace
	}
	if options.Soak.Rate < 0 {
		return nil, fault.ErrInvalidRate
	}
	if options.Duration < 0 || options.Soak.Operations < 0 {
		return nil, fault.ErrInvalidCount
	}

	// log directory relative to the configuration file, created
	// if necessary
	options.Logging.Directory = ensureAbsolute(dataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	return options, nil
}

// ensure the path is absolute
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
