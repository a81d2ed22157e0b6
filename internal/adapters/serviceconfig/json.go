package serviceconfig

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/renato0307/versioninfo/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type jsonDocument struct {
	Custom   map[string]jsoniter.RawMessage `json:"custom"`
	Provider struct {
		Environment jsoniter.RawMessage `json:"environment"`
		Name        string              `json:"name"`
		Stage       string              `json:"stage"`
	} `json:"provider"`
	Service jsoniter.RawMessage `json:"service"`
}

type jsonPluginSection struct {
	Environment jsoniter.RawMessage `json:"environment"`
	Eval        *bool               `json:"eval"`
	MaxPasses   *int                `json:"maxPasses"`
	Timeout     string              `json:"timeout"`
	Verbose     *bool               `json:"verbose"`
}

func decodeJSON(data []byte) (*rawService, error) {
	var doc jsonDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	name, err := jsonServiceName(doc.Service)
	if err != nil {
		return nil, err
	}

	providerEnv, err := jsonObject(doc.Provider.Environment, "provider.environment")
	if err != nil {
		return nil, err
	}

	raw := &rawService{
		Name:          name,
		ProviderEnv:   providerEnv,
		ProviderName:  doc.Provider.Name,
		ProviderStage: doc.Provider.Stage,
	}

	message, ok := doc.Custom[domain.PluginName]
	if !ok || isJSONNull(message) {
		return raw, nil
	}

	var section jsonPluginSection
	if err := json.Unmarshal(message, &section); err != nil {
		return nil, fmt.Errorf("custom.%s: %w", domain.PluginName, err)
	}
	env, err := jsonObject(section.Environment, "environment")
	if err != nil {
		return nil, fmt.Errorf("custom.%s: %w", domain.PluginName, err)
	}

	raw.Plugin = &domain.RawPluginSection{
		Environment: env,
		Eval:        section.Eval,
		MaxPasses:   section.MaxPasses,
		Timeout:     section.Timeout,
		Verbose:     section.Verbose,
	}
	return raw, nil
}

func jsonServiceName(message jsoniter.RawMessage) (string, error) {
	if len(message) == 0 || isJSONNull(message) {
		return "", nil
	}
	var name string
	if err := json.Unmarshal(message, &name); err == nil {
		return name, nil
	}
	var svc struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(message, &svc); err != nil {
		return "", fmt.Errorf("service: %w", err)
	}
	return svc.Name, nil
}

// jsonObject streams an object so its keys keep the order of the file
func jsonObject(message jsoniter.RawMessage, field string) ([]domain.RawVariable, error) {
	if len(message) == 0 || isJSONNull(message) {
		return nil, nil
	}

	iter := jsoniter.ParseBytes(json, message)
	if iter.WhatIsNext() != jsoniter.ObjectValue {
		return nil, fmt.Errorf("%s must be an object", field)
	}

	var entries []domain.RawVariable
	iter.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
		entries = append(entries, domain.RawVariable{Name: key, Value: it.Read()})
		return it.Error == nil
	})
	if iter.Error != nil {
		return nil, fmt.Errorf("%s: %w", field, iter.Error)
	}
	return entries, nil
}

func isJSONNull(message jsoniter.RawMessage) bool {
	return string(message) == "null"
}
