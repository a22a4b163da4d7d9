package configuration

import (
	"context"
	"fmt"

	routev1 "github.com/openshift/api/route/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"

	syndesisv1alpha1 "github.com/syndesisio/syndesis-operator/api/v1alpha1"
)

// RouteName is the name of the installation's public-facing route, matching
// the front-end service it exposes.
const RouteName = "syndesis"

// RouteHostResolver resolves the externally reachable host of a named route.
// It abstracts the single outbound cluster query of the pipeline so the
// route stage can run against a fake in tests.
type RouteHostResolver interface {
	ResolveRouteHost(ctx context.Context, namespace, name string) (string, error)
}

// ClusterRouteResolver resolves route hosts from the live cluster.
type ClusterRouteResolver struct {
	Client client.Client
}

// ResolveRouteHost looks up the route.openshift.io Route and returns its
// advertised host. A missing route, or a route without a host yet, yields a
// *RouteNotFoundError; any other lookup failure propagates as-is.
func (r *ClusterRouteResolver) ResolveRouteHost(
	ctx context.Context,
	namespace, name string,
) (string, error) {
	route := &routev1.Route{}
	err := r.Client.Get(ctx, types.NamespacedName{Namespace: namespace, Name: name}, route)
	if err != nil {
		if apierrors.IsNotFound(err) {
			return "", &RouteNotFoundError{Namespace: namespace, Name: name}
		}
		return "", fmt.Errorf("failed to get route %s/%s: %w", namespace, name, err)
	}

	if route.Spec.Host == "" {
		return "", &RouteNotFoundError{Namespace: namespace, Name: name}
	}
	return route.Spec.Host, nil
}

// SetRoute determines the installation's externally reachable hostname. A
// hostname already set by an earlier stage (environment or custom resource)
// takes priority and short-circuits the cluster lookup entirely; otherwise
// the host advertised by the installation's route is adopted.
//
// A *RouteNotFoundError is expected early in an installation's lifecycle,
// before the route has been rendered; the caller retries on a later pass.
func (c *Config) SetRoute(
	ctx context.Context,
	routes RouteHostResolver,
	syndesis *syndesisv1alpha1.Syndesis,
) error {
	if c.RouteHostname != "" {
		return nil
	}

	host, err := routes.ResolveRouteHost(ctx, syndesis.Namespace, RouteName)
	if err != nil {
		return err
	}

	c.RouteHostname = host
	return nil
}
