package controller

import (
	"context"
	"fmt"
	"time"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/runtime"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller"
	"sigs.k8s.io/controller-runtime/pkg/log"

	syndesisv1alpha1 "github.com/syndesisio/syndesis-operator/api/v1alpha1"
	"github.com/syndesisio/syndesis-operator/pkg/configuration"
	"github.com/syndesisio/syndesis-operator/pkg/monitoring"
	"github.com/syndesisio/syndesis-operator/pkg/util/status"
)

// routeRequeueInterval is how long to wait before retrying when the
// installation's route has not been admitted yet.
const routeRequeueInterval = 10 * time.Second

// SyndesisReconciler reconciles a Syndesis object.
type SyndesisReconciler struct {
	client.Client
	Scheme   *runtime.Scheme
	Resolver *configuration.Resolver
}

// NewSyndesisReconciler wires a reconciler with a resolver reading the route
// host from the cluster.
func NewSyndesisReconciler(
	c client.Client,
	scheme *runtime.Scheme,
	templatePath string,
	env configuration.Environment,
) *SyndesisReconciler {
	resolver := configuration.NewResolver(templatePath, env, instrumentedRouteResolver{
		inner: &configuration.ClusterRouteResolver{Client: c},
	})
	return &SyndesisReconciler{
		Client:   c,
		Scheme:   scheme,
		Resolver: resolver,
	}
}

// +kubebuilder:rbac:groups=syndesis.io,resources=syndeses,verbs=get;list;watch;create;update;patch;delete
// +kubebuilder:rbac:groups=syndesis.io,resources=syndeses/status,verbs=get;update;patch
// +kubebuilder:rbac:groups="",resources=secrets,verbs=get;list;watch;create;update;patch
// +kubebuilder:rbac:groups=route.openshift.io,resources=routes,verbs=get;list;watch

// Reconcile resolves the installation's configuration and persists the
// materialized credentials so later passes reuse them.
func (r *SyndesisReconciler) Reconcile(
	ctx context.Context,
	req ctrl.Request,
) (ctrl.Result, error) {
	logger := log.FromContext(ctx)

	// Fetch the Syndesis instance
	syndesis := &syndesisv1alpha1.Syndesis{}
	if err := r.Get(ctx, req.NamespacedName, syndesis); err != nil {
		if apierrors.IsNotFound(err) {
			logger.Info("Syndesis resource not found, ignoring")
			return ctrl.Result{}, nil
		}
		logger.Error(err, "Failed to get Syndesis")
		return ctrl.Result{}, err
	}

	ctx, span := monitoring.StartReconcileSpan(
		ctx,
		"Syndesis.Reconcile",
		syndesis.Name,
		syndesis.Namespace,
		"Syndesis",
	)
	defer span.End()

	persisted, err := r.readPersistedSecrets(ctx, syndesis)
	if err != nil {
		logger.Error(err, "Failed to read persisted secrets")
		monitoring.RecordSpanError(span, err)
		return ctrl.Result{}, err
	}

	start := time.Now()
	config, resolveErr := r.Resolver.Resolve(ctx, syndesis, persisted)
	monitoring.RecordResolution(resolveErr, time.Since(start))

	if resolveErr != nil {
		if configuration.IsRouteNotFound(resolveErr) {
			// Not an error: the route simply has not been admitted yet.
			logger.Info("Route not available yet, requeueing", "route", configuration.RouteName)
			phase := status.ComputePhase(syndesis.Status.Phase, resolveErr, true)
			if err := r.updateStatus(ctx, syndesis, phase, "RoutePending",
				"waiting for the installation route to be admitted"); err != nil {
				return ctrl.Result{}, err
			}
			return ctrl.Result{RequeueAfter: routeRequeueInterval}, nil
		}

		logger.Error(resolveErr, "Failed to resolve configuration")
		monitoring.RecordSpanError(span, resolveErr)
		phase := status.ComputePhase(syndesis.Status.Phase, resolveErr, false)
		if err := r.updateStatus(ctx, syndesis, phase, "ResolutionFailed", resolveErr.Error()); err != nil {
			return ctrl.Result{}, err
		}
		return ctrl.Result{}, resolveErr
	}

	recordGeneratedSecrets(persisted, config.SecretValues())

	if err := r.persistSecrets(ctx, syndesis, config.SecretValues()); err != nil {
		logger.Error(err, "Failed to persist secrets")
		monitoring.RecordSpanError(span, err)
		return ctrl.Result{}, err
	}

	phase := status.ComputePhase(syndesis.Status.Phase, nil, false)
	if err := r.updateStatus(ctx, syndesis, phase, "", "configuration resolved"); err != nil {
		return ctrl.Result{}, err
	}

	return ctrl.Result{}, nil
}

// readPersistedSecrets loads the credential values materialized by an earlier
// pass. On a first installation the Secret does not exist yet and the zero
// value is returned.
func (r *SyndesisReconciler) readPersistedSecrets(
	ctx context.Context,
	syndesis *syndesisv1alpha1.Syndesis,
) (configuration.SecretValues, error) {
	secret := &corev1.Secret{}
	err := r.Get(
		ctx,
		client.ObjectKey{Namespace: syndesis.Namespace, Name: GlobalConfigSecretName},
		secret,
	)
	if err != nil {
		if apierrors.IsNotFound(err) {
			return configuration.SecretValues{}, nil
		}
		return configuration.SecretValues{}, fmt.Errorf("failed to get global config secret: %w", err)
	}
	return SecretValuesFrom(secret), nil
}

// persistSecrets creates or updates the global configuration Secret.
func (r *SyndesisReconciler) persistSecrets(
	ctx context.Context,
	syndesis *syndesisv1alpha1.Syndesis,
	values configuration.SecretValues,
) error {
	ctx, span := monitoring.StartChildSpan(ctx, "PersistSecrets")
	defer span.End()

	desired, err := BuildGlobalConfigSecret(syndesis, values, r.Scheme)
	if err != nil {
		return fmt.Errorf("failed to build global config secret: %w", err)
	}

	existing := &corev1.Secret{}
	err = r.Get(
		ctx,
		client.ObjectKey{Namespace: syndesis.Namespace, Name: desired.Name},
		existing,
	)
	if err != nil {
		if apierrors.IsNotFound(err) {
			if err := r.Create(ctx, desired); err != nil {
				return fmt.Errorf("failed to create global config secret: %w", err)
			}
			return nil
		}
		return fmt.Errorf("failed to get global config secret: %w", err)
	}

	existing.Data = desired.Data
	existing.Labels = desired.Labels
	if err := r.Update(ctx, existing); err != nil {
		return fmt.Errorf("failed to update global config secret: %w", err)
	}

	return nil
}

// updateStatus moves the installation to the given phase, skipping the write
// when nothing changed.
func (r *SyndesisReconciler) updateStatus(
	ctx context.Context,
	syndesis *syndesisv1alpha1.Syndesis,
	phase syndesisv1alpha1.SyndesisPhase,
	reason, description string,
) error {
	if !status.Transition(&syndesis.Status, phase, reason, description) {
		return nil
	}
	if err := r.Status().Update(ctx, syndesis); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}
	monitoring.SetInstallationInfo(syndesis.Name, syndesis.Namespace, string(phase))
	return nil
}

// recordGeneratedSecrets counts credential fields that did not survive from a
// previous pass and were therefore freshly generated during this one.
func recordGeneratedSecrets(persisted, resolved configuration.SecretValues) {
	fields := []struct {
		key    string
		before string
		after  string
	}{
		{SecretKeyOauthClientSecret, persisted.OpenShiftOauthClientSecret, resolved.OpenShiftOauthClientSecret},
		{SecretKeyDatabasePassword, persisted.DatabasePassword, resolved.DatabasePassword},
		{SecretKeySampledbPassword, persisted.SampledbPassword, resolved.SampledbPassword},
		{SecretKeyCookieSecret, persisted.OauthCookieSecret, resolved.OauthCookieSecret},
		{SecretKeyEncryptKey, persisted.SyndesisEncryptKey, resolved.SyndesisEncryptKey},
		{SecretKeyStateAuthKey, persisted.ClientStateAuthenticationKey, resolved.ClientStateAuthenticationKey},
		{SecretKeyStateEncryptionKey, persisted.ClientStateEncryptionKey, resolved.ClientStateEncryptionKey},
	}
	for _, f := range fields {
		if f.before == "" && f.after != "" {
			monitoring.RecordGeneratedSecret(f.key)
		}
	}
}

// instrumentedRouteResolver records the outcome of every route host lookup.
type instrumentedRouteResolver struct {
	inner configuration.RouteHostResolver
}

func (i instrumentedRouteResolver) ResolveRouteHost(
	ctx context.Context,
	namespace, name string,
) (string, error) {
	host, err := i.inner.ResolveRouteHost(ctx, namespace, name)
	monitoring.RecordRouteLookup(err)
	return host, err
}

// SetupWithManager sets up the controller with the Manager.
func (r *SyndesisReconciler) SetupWithManager(mgr ctrl.Manager, opts ...controller.Options) error {
	controllerOpts := controller.Options{}
	if len(opts) > 0 {
		controllerOpts = opts[0]
	}

	return ctrl.NewControllerManagedBy(mgr).
		For(&syndesisv1alpha1.Syndesis{}).
		Owns(&corev1.Secret{}).
		WithOptions(controllerOpts).
		Complete(r)
}
