/*
 * nixcst
 *
 * Copyright 2024 The nixcst Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package config holds the tunables spec.md leaves as implementation
freedom: nesting bounds, the postfix safeguard constant, the
classifier batch width, and the default log level. Nothing in this
package performs I/O - the core stays a pure function of bytes per
spec.md section 6.
*/
package config

import (
	"fmt"
	"strconv"

	"devt.de/krotik/common/errorutil"
)

/*
ProductVersion is the current version of nixcst.
*/
const ProductVersion = "1.0.0"

/*
Known configuration options.
*/
const (
	MaxNestingDepth          = "MaxNestingDepth"
	PostfixSafeguardConstant = "PostfixSafeguardConstant"
	VectorWidth              = "VectorWidth"
	LogLevel                 = "LogLevel"
)

/*
DefaultConfig is the default configuration.
*/
var DefaultConfig = map[string]interface{}{
	MaxNestingDepth:          512,
	PostfixSafeguardConstant: 4096,
	VectorWidth:              8,
	LogLevel:                 "error",
}

/*
Config is the actual configuration in use.
*/
var Config map[string]interface{}

/*
Initialise the config.
*/
func init() {
	data := make(map[string]interface{})
	for k, v := range DefaultConfig {
		data[k] = v
	}

	Config = data
}

// Helper functions
// ================

/*
Str reads a config value as a string value.
*/
func Str(key string) string {
	return fmt.Sprint(Config[key])
}

/*
Int reads a config value as an int value.
*/
func Int(key string) int {
	ret, err := strconv.ParseInt(fmt.Sprint(Config[key]), 10, 64)

	errorutil.AssertTrue(err == nil,
		fmt.Sprintf("Could not parse config key %v: %v", key, err))

	return int(ret)
}

/*
Bool reads a config value as a boolean value.
*/
func Bool(key string) bool {
	ret, err := strconv.ParseBool(fmt.Sprint(Config[key]))

	errorutil.AssertTrue(err == nil,
		fmt.Sprintf("Could not parse config key %v: %v", key, err))

	return ret
}
