package servers

import (
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var rawSpec []byte

// GetSwagger returns the OpenAPI document the handlers implement.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	swagger, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("error loading OpenAPI document: %w", err)
	}
	return swagger, nil
}

// RawSpec returns the embedded document as written.
func RawSpec() []byte {
	out := make([]byte, len(rawSpec))
	copy(out, rawSpec)
	return out
}
