/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package config

import "strings"

// Join joins key components with a dot, trimming dots and spaces around each of them
func Join(components ...string) string {
	var valid []string
	for _, c := range components {
		if trimmed := strings.Trim(c, " ."); trimmed != "" {
			valid = append(valid, trimmed)
		}
	}
	return strings.Join(valid, ".")
}
