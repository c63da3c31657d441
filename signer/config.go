package signer

const (
	// MethodLocal signs with a private key read from a keystore file
	MethodLocal = "local"
)

type SignerConfig struct {
	Method string                 `jsonschema:"enum=local" mapstructure:"Method"`
	Config map[string]interface{} `jsonschema:"omitempty" mapstructure:",remain"`
}
