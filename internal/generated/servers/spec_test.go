package servers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger_IsValid(t *testing.T) {
	swagger, err := GetSwagger()
	require.NoError(t, err)

	require.NoError(t, swagger.Validate(context.Background()))
	assert.Equal(t, "Storefront API", swagger.Info.Title)
}

func TestGetSwagger_DescribesEveryRoute(t *testing.T) {
	swagger, err := GetSwagger()
	require.NoError(t, err)

	for path, methods := range map[string][]string{
		"/orders":                              {"GET", "POST"},
		"/orders/{merchantPaymentId}":          {"GET"},
		"/payments/callback":                   {"GET"},
		"/me/address":                          {"GET", "PUT"},
		"/admin/orders":                        {"GET"},
		"/admin/shipments/{shipmentId}/status": {"PATCH"},
	} {
		item := swagger.Paths.Find(path)
		require.NotNil(t, item, path)
		for _, m := range methods {
			assert.NotNil(t, item.GetOperation(m), "%s %s", m, path)
		}
	}
}
