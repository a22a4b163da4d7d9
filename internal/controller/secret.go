package controller

import (
	"fmt"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	ctrl "sigs.k8s.io/controller-runtime"

	syndesisv1alpha1 "github.com/syndesisio/syndesis-operator/api/v1alpha1"
	"github.com/syndesisio/syndesis-operator/pkg/configuration"
	"github.com/syndesisio/syndesis-operator/pkg/util/metadata"
)

// GlobalConfigSecretName is the Secret holding the materialized credential
// values across reconciliation passes.
const GlobalConfigSecretName = "syndesis-global-config"

// Data keys in the global configuration Secret.
const (
	SecretKeyOauthClientSecret  = "OPENSHIFT_OAUTH_CLIENT_SECRET"
	SecretKeyDatabasePassword   = "POSTGRESQL_PASSWORD"
	SecretKeySampledbPassword   = "POSTGRESQL_SAMPLEDB_PASSWORD"
	SecretKeyCookieSecret       = "OAUTH_COOKIE_SECRET"
	SecretKeyEncryptKey         = "SYNDESIS_ENCRYPT_KEY"
	SecretKeyStateAuthKey       = "CLIENT_STATE_AUTHENTICATION_KEY"
	SecretKeyStateEncryptionKey = "CLIENT_STATE_ENCRYPTION_KEY"
)

// BuildGlobalConfigSecret creates the Secret carrying the seven credential
// values materialized by resolution. The Syndesis CR owns the Secret, so
// deleting the installation deletes the credentials with it.
func BuildGlobalConfigSecret(
	syndesis *syndesisv1alpha1.Syndesis,
	values configuration.SecretValues,
	scheme *runtime.Scheme,
) (*corev1.Secret, error) {
	labels := metadata.BuildStandardLabels(syndesis.Name, metadata.ComponentInfrastructure)
	labels = metadata.AddInstanceLabel(labels, syndesis.Name)
	labels = metadata.AddTypeLabel(labels, metadata.TypeInfrastructure)

	secret := &corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{
			Name:      GlobalConfigSecretName,
			Namespace: syndesis.Namespace,
			Labels:    labels,
		},
		Data: map[string][]byte{
			SecretKeyOauthClientSecret:  []byte(values.OpenShiftOauthClientSecret),
			SecretKeyDatabasePassword:   []byte(values.DatabasePassword),
			SecretKeySampledbPassword:   []byte(values.SampledbPassword),
			SecretKeyCookieSecret:       []byte(values.OauthCookieSecret),
			SecretKeyEncryptKey:         []byte(values.SyndesisEncryptKey),
			SecretKeyStateAuthKey:       []byte(values.ClientStateAuthenticationKey),
			SecretKeyStateEncryptionKey: []byte(values.ClientStateEncryptionKey),
		},
	}

	if err := ctrl.SetControllerReference(syndesis, secret, scheme); err != nil {
		return nil, fmt.Errorf("failed to set controller reference: %w", err)
	}

	return secret, nil
}

// SecretValuesFrom decodes the persisted credential values out of the global
// configuration Secret. A nil Secret or missing keys yield empty fields,
// which resolution treats as "generate fresh".
func SecretValuesFrom(secret *corev1.Secret) configuration.SecretValues {
	if secret == nil {
		return configuration.SecretValues{}
	}
	return configuration.SecretValues{
		OpenShiftOauthClientSecret:   string(secret.Data[SecretKeyOauthClientSecret]),
		DatabasePassword:             string(secret.Data[SecretKeyDatabasePassword]),
		SampledbPassword:             string(secret.Data[SecretKeySampledbPassword]),
		OauthCookieSecret:            string(secret.Data[SecretKeyCookieSecret]),
		SyndesisEncryptKey:           string(secret.Data[SecretKeyEncryptKey]),
		ClientStateAuthenticationKey: string(secret.Data[SecretKeyStateAuthKey]),
		ClientStateEncryptionKey:     string(secret.Data[SecretKeyStateEncryptionKey]),
	}
}
