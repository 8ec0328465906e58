package config

import (
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v2"
)

// DecodeHook returns the hook used to decode scenarios. It supports
// configuration solutions like spf13/viper that use mapstructure to
// unmarshal yaml files.
func DecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(), // parses uuids and variants
	)
}

// Unmarshals yaml into a generic map, then decodes it onto s with mapstructure.
func decodeYAML(data []byte, s *Scenario) error {
	// Temporary structure to unmarshal the yaml file
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}

	decoderConfig := &mapstructure.DecoderConfig{
		DecodeHook:  DecodeHook(),
		ErrorUnused: true, // reject misspelt keys
		Result:      s,
	}
	decoder, err := mapstructure.NewDecoder(decoderConfig)
	if err != nil {
		return err
	}
	return decoder.Decode(raw)
}
