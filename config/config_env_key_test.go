package config

import (
	"testing"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shippedKeys loads config.yaml so env overrides are checked against the real key casing.
func shippedKeys(t *testing.T) map[string]any {
	t.Helper()

	k := koanf.New(".")
	require.NoError(t, k.Load(file.Provider("config.yaml"), yaml.Parser()))

	return k.Raw()
}

func TestCanonicalizeEnvKey_UsesShippedCamelCaseKeys(t *testing.T) {
	existing := shippedKeys(t)

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "STORE_DRIVER", want: "store.driver"},
		{envKey: "STORE_AUTOMIGRATE", want: "store.autoMigrate"},
		{envKey: "RATELIMIT_REQUESTSPERMINUTE", want: "rateLimit.requestsPerMinute"},
		{envKey: "RATELIMIT_IDLETTL", want: "rateLimit.idleTtl"},
		{envKey: "STORAGE_MAXIMAGESIZE", want: "storage.maxImageSize"},
		{envKey: "STORAGE_PUBLICBASEURL", want: "storage.publicBaseUrl"},
		{envKey: "QRCODE_BASEURL", want: "qrcode.baseUrl"},
		{envKey: "GOOGLEOAUTH_CLIENTID", want: "googleOAuth.clientId"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_LOCALENDPOINT", want: "pubsub.localEndpoint"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestCanonicalizeEnvKey_UnknownKeysStayLowerDotted(t *testing.T) {
	existing := shippedKeys(t)

	assert.Equal(t, "storage.cdn.host", canonicalizeEnvKey("STORAGE_CDN_HOST", existing))
	assert.Equal(t, "brand.default", canonicalizeEnvKey("BRAND__DEFAULT", existing))
}
