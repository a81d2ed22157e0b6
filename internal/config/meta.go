package config

import (
	"fmt"
	"reflect"
	"strings"
)

// Setting sources
const (
	SourceDefault  = "default"
	SourceOverride = "settings file or environment"
)

// SettingInfo describes one effective setting
type SettingInfo struct {
	EnvVar string `json:"env_var" yaml:"env_var"`
	Key    string `json:"key" yaml:"key"`
	Source string `json:"source" yaml:"source"`
	Value  string `json:"value" yaml:"value"`
}

// Describe uses reflection to list every setting with its effective value.
// This automatically stays in sync when new fields are added to Settings.
func Describe(s *Settings) []SettingInfo {
	v := reflect.ValueOf(*s)
	t := v.Type()

	infos := make([]SettingInfo, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		key := field.Tag.Get("koanf")
		if key == "" || !field.IsExported() {
			continue
		}

		source := SourceDefault
		if s.IsSet(key) {
			source = SourceOverride
		}

		infos = append(infos, SettingInfo{
			EnvVar: EnvPrefix + strings.ToUpper(key),
			Key:    key,
			Source: source,
			Value:  fmt.Sprint(v.Field(i).Interface()),
		})
	}
	return infos
}
