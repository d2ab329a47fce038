/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package viperutil

import (
	"math"
	"os"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/hyperledger-labs/daml-ledger-go/pkg/utils/errors"
	"github.com/spf13/viper"
)

var byteSize = regexp.MustCompile(`^(?P<size>[0-9]+)\s*(?i)(?P<unit>(k|m|g))b?$`)

// customDecodeHook parses strings of the form "[alice, bob]" into string slices.
// Whitespace around the elements is removed.
func customDecodeHook(f reflect.Type, t reflect.Type, data any) (any, error) {
	if f.Kind() != reflect.String {
		return data, nil
	}

	raw := data.(string)
	l := len(raw)
	if l > 1 && raw[0] == '[' && raw[l-1] == ']' {
		slice := strings.Split(raw[1:l-1], ",")
		for i, v := range slice {
			slice[i] = strings.TrimSpace(v)
		}
		return slice, nil
	}

	return data, nil
}

// byteSizeDecodeHook parses sizes like "4 MB" into integers
func byteSizeDecodeHook(f reflect.Kind, t reflect.Kind, data any) (any, error) {
	if f != reflect.String || (t != reflect.Int && t != reflect.Uint32) {
		return data, nil
	}
	raw := data.(string)
	if !byteSize.MatchString(raw) {
		return data, nil
	}
	size, err := strconv.ParseUint(byteSize.ReplaceAllString(raw, "${size}"), 0, 64)
	if err != nil {
		return data, nil
	}
	switch strings.ToLower(byteSize.ReplaceAllString(raw, "${unit}")) {
	case "g":
		size = size << 10
		fallthrough
	case "m":
		size = size << 10
		fallthrough
	case "k":
		size = size << 10
	}
	if size > math.MaxUint32 || (t == reflect.Int && size > math.MaxInt32) {
		return size, errors.Errorf("value '%s' overflows %s", raw, t)
	}
	return size, nil
}

// stringFromFileDecodeHook reads a string from the file named by a map with a file key,
// so that secrets like access tokens stay out of the config file
func stringFromFileDecodeHook(f reflect.Kind, t reflect.Kind, data any) (any, error) {
	if t != reflect.String || f != reflect.Map {
		return data, nil
	}
	d, ok := data.(map[string]any)
	if !ok {
		return data, nil
	}
	fileName, ok := d["File"]
	if !ok {
		fileName, ok = d["file"]
	}
	switch {
	case ok && fileName != nil:
		raw, err := os.ReadFile(fileName.(string))
		if err != nil {
			return data, err
		}
		return strings.TrimSpace(string(raw)), nil
	case ok:
		return nil, errors.Errorf("value of File: was nil")
	}
	return data, nil
}

// EnhancedExactUnmarshal decodes the value under key into output, with durations, byte sizes,
// bracketed lists and file references
func EnhancedExactUnmarshal(v *viper.Viper, key string, output any) error {
	if reflect.TypeOf(output).Kind() != reflect.Ptr {
		return errors.Errorf("supplied output argument must be a pointer to a struct but is not pointer")
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           output,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			customDecodeHook,
			byteSizeDecodeHook,
			stringFromFileDecodeHook,
		),
	})
	if err != nil {
		return err
	}
	return decoder.Decode(v.Get(key))
}
