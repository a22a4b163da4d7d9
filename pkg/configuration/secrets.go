package configuration

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// Generated secret lengths, fixed per field.
const (
	OauthClientSecretLength      = 64
	DatabasePasswordLength       = 16
	SampledbPasswordLength       = 16
	CookieSecretLength           = 32
	EncryptKeyLength             = 64
	StateAuthenticationKeyLength = 32
	StateEncryptionKeyLength     = 32
)

const secretCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// SecretValues carries the seven credential fields that outlive a
// reconciliation pass. The reconciler persists them to the cluster after
// resolution and feeds them back in on the next pass, which is what makes
// resolution idempotent with respect to secrets.
type SecretValues struct {
	OpenShiftOauthClientSecret   string
	DatabasePassword             string
	SampledbPassword             string
	OauthCookieSecret            string
	SyndesisEncryptKey           string
	ClientStateAuthenticationKey string
	ClientStateEncryptionKey     string
}

// ApplyPersistedSecrets fills the secret fields that are still empty with
// values persisted by an earlier pass. A field already populated, whether by
// the template or an explicit override, is left untouched.
func (c *Config) ApplyPersistedSecrets(persisted SecretValues) {
	fillIfEmpty(&c.OpenShiftOauthClientSecret, persisted.OpenShiftOauthClientSecret)
	fillIfEmpty(&c.Syndesis.Components.Database.Password, persisted.DatabasePassword)
	fillIfEmpty(&c.Syndesis.Components.Database.SampledbPassword, persisted.SampledbPassword)
	fillIfEmpty(&c.Syndesis.Components.Oauth.CookieSecret, persisted.OauthCookieSecret)
	fillIfEmpty(&c.Syndesis.Components.Server.SyndesisEncryptKey, persisted.SyndesisEncryptKey)
	fillIfEmpty(&c.Syndesis.Components.Server.ClientStateAuthenticationKey, persisted.ClientStateAuthenticationKey)
	fillIfEmpty(&c.Syndesis.Components.Server.ClientStateEncryptionKey, persisted.ClientStateEncryptionKey)
}

// SecretValues extracts the current secret field values, ready to persist.
func (c *Config) SecretValues() SecretValues {
	return SecretValues{
		OpenShiftOauthClientSecret:   c.OpenShiftOauthClientSecret,
		DatabasePassword:             c.Syndesis.Components.Database.Password,
		SampledbPassword:             c.Syndesis.Components.Database.SampledbPassword,
		OauthCookieSecret:            c.Syndesis.Components.Oauth.CookieSecret,
		SyndesisEncryptKey:           c.Syndesis.Components.Server.SyndesisEncryptKey,
		ClientStateAuthenticationKey: c.Syndesis.Components.Server.ClientStateAuthenticationKey,
		ClientStateEncryptionKey:     c.Syndesis.Components.Server.ClientStateEncryptionKey,
	}
}

// GeneratePasswords materializes every secret field that is still empty
// after the overlay stages. Fields already populated are never regenerated,
// so running this twice over the same Config is a no-op the second time.
//
// random is the entropy source; production passes crypto/rand. Failure to
// read randomness panics: continuing with predictable secrets is worse than
// halting the operator.
func (c *Config) GeneratePasswords(random io.Reader) {
	if random == nil {
		random = rand.Reader
	}

	generateIfEmpty(random, &c.OpenShiftOauthClientSecret, OauthClientSecretLength)
	generateIfEmpty(random, &c.Syndesis.Components.Database.Password, DatabasePasswordLength)
	generateIfEmpty(random, &c.Syndesis.Components.Database.SampledbPassword, SampledbPasswordLength)
	generateIfEmpty(random, &c.Syndesis.Components.Oauth.CookieSecret, CookieSecretLength)
	generateIfEmpty(random, &c.Syndesis.Components.Server.SyndesisEncryptKey, EncryptKeyLength)
	generateIfEmpty(random, &c.Syndesis.Components.Server.ClientStateAuthenticationKey, StateAuthenticationKeyLength)
	generateIfEmpty(random, &c.Syndesis.Components.Server.ClientStateEncryptionKey, StateEncryptionKeyLength)
}

func generateIfEmpty(random io.Reader, field *string, length int) {
	if *field == "" {
		*field = randomString(random, length)
	}
}

func fillIfEmpty(field *string, value string) {
	if *field == "" {
		*field = value
	}
}

// randomString draws length characters uniformly from the alphanumeric
// charset. rand.Int rejects and redraws rather than folding, so no character
// is more likely than another.
func randomString(random io.Reader, length int) string {
	max := big.NewInt(int64(len(secretCharset)))

	buf := make([]byte, length)
	for i := range buf {
		n, err := rand.Int(random, max)
		if err != nil {
			panic(fmt.Sprintf("randomness source exhausted: %v", err))
		}
		buf[i] = secretCharset[n.Int64()]
	}
	return string(buf)
}
