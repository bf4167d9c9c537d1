// Copyright (C) 2019 rameshvk. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package config loads switch options from a YAML file and the
// environment.
//
// Every key can be overridden by a SWEET_ prefixed environment
// variable, e.g. SWEET_ON_TEXT=YES or SWEET_DURATION=250ms.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/dotchain/sweet/sweet"
)

// EnvPrefix is the prefix of the environment variables
const EnvPrefix = "SWEET"

// Keys lists the supported configuration keys
var Keys = []string{
	"size",
	"width",
	"height",
	"font_size",
	"off_text",
	"on_text",
	"wrapper_class",
	"input_class",
	"duration",
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only applies to keys viper already knows about
	for _, key := range Keys {
		_ = v.BindEnv(key)
	}
	return v
}

// Load reads the options from path (if not empty) and the
// environment. Keys that are set nowhere stay zero so that the
// widget defaults apply.
func Load(path string) (sweet.Options, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return sweet.Options{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	return decode(v)
}

func decode(v *viper.Viper) (opts sweet.Options, err error) {
	// viper's getters swallow conversion errors
	for _, key := range []string{"width", "height", "font_size"} {
		if !v.IsSet(key) {
			continue
		}
		if _, err = cast.ToFloat64E(v.Get(key)); err != nil {
			return opts, fmt.Errorf("invalid %s: %w", key, err)
		}
	}
	if v.IsSet("duration") {
		if _, err = cast.ToDurationE(v.Get("duration")); err != nil {
			return opts, fmt.Errorf("invalid duration: %w", err)
		}
	}

	opts.Size = v.GetString("size")
	opts.Width = v.GetFloat64("width")
	opts.Height = v.GetFloat64("height")
	opts.FontSize = v.GetFloat64("font_size")
	opts.OffText = v.GetString("off_text")
	opts.OnText = v.GetString("on_text")
	opts.WrapperClass = v.GetString("wrapper_class")
	opts.InputClass = v.GetString("input_class")
	opts.Duration = v.GetDuration("duration")
	return opts, nil
}
