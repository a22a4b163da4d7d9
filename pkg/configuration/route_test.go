package configuration

import (
	"testing"

	routev1 "github.com/openshift/api/route/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	syndesisv1alpha1 "github.com/syndesisio/syndesis-operator/api/v1alpha1"
)

func routeScheme(t *testing.T) *runtime.Scheme {
	t.Helper()
	s := runtime.NewScheme()
	utilruntime.Must(routev1.Install(s))
	return s
}

func TestClusterRouteResolver_ResolveRouteHost(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		objects      []client.Object
		wantHost     string
		wantNotFound bool
	}{
		"Route Exists: Host Is Adopted": {
			objects: []client.Object{
				&routev1.Route{
					ObjectMeta: metav1.ObjectMeta{Name: RouteName, Namespace: "syndesis"},
					Spec:       routev1.RouteSpec{Host: "syndesis.apps.example.com"},
				},
			},
			wantHost: "syndesis.apps.example.com",
		},
		"No Route Yet": {
			objects:      nil,
			wantNotFound: true,
		},
		"Route Without A Host Yet": {
			objects: []client.Object{
				&routev1.Route{
					ObjectMeta: metav1.ObjectMeta{Name: RouteName, Namespace: "syndesis"},
				},
			},
			wantNotFound: true,
		},
		"Route In Another Namespace Does Not Match": {
			objects: []client.Object{
				&routev1.Route{
					ObjectMeta: metav1.ObjectMeta{Name: RouteName, Namespace: "other"},
					Spec:       routev1.RouteSpec{Host: "other.apps.example.com"},
				},
			},
			wantNotFound: true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			c := fake.NewClientBuilder().
				WithScheme(routeScheme(t)).
				WithObjects(tc.objects...).
				Build()
			resolver := &ClusterRouteResolver{Client: c}

			host, err := resolver.ResolveRouteHost(t.Context(), "syndesis", RouteName)

			if tc.wantNotFound {
				if !IsRouteNotFound(err) {
					t.Fatalf("ResolveRouteHost() error = %v, want *RouteNotFoundError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveRouteHost() error = %v", err)
			}
			if host != tc.wantHost {
				t.Errorf("ResolveRouteHost() = %q, want %q", host, tc.wantHost)
			}
		})
	}
}

func TestConfig_SetRoute(t *testing.T) {
	t.Parallel()

	syndesis := &syndesisv1alpha1.Syndesis{
		ObjectMeta: metav1.ObjectMeta{Name: "app", Namespace: "syndesis"},
	}

	t.Run("Preset Hostname Short-Circuits The Lookup", func(t *testing.T) {
		t.Parallel()

		routes := &fixedHostResolver{host: "cluster.example.com"}
		config := &Config{RouteHostname: "foo.example.com"}

		if err := config.SetRoute(t.Context(), routes, syndesis); err != nil {
			t.Fatalf("SetRoute() error = %v", err)
		}
		if got, want := config.RouteHostname, "foo.example.com"; got != want {
			t.Errorf("RouteHostname = %q, want %q", got, want)
		}
		if routes.calls != 0 {
			t.Errorf("cluster lookup ran %d times, want 0", routes.calls)
		}
	})

	t.Run("Empty Hostname Adopts The Route Host", func(t *testing.T) {
		t.Parallel()

		c := fake.NewClientBuilder().
			WithScheme(routeScheme(t)).
			WithObjects(&routev1.Route{
				ObjectMeta: metav1.ObjectMeta{Name: RouteName, Namespace: "syndesis"},
				Spec:       routev1.RouteSpec{Host: "syndesis.apps.example.com"},
			}).
			Build()

		config := &Config{}
		err := config.SetRoute(t.Context(), &ClusterRouteResolver{Client: c}, syndesis)
		if err != nil {
			t.Fatalf("SetRoute() error = %v", err)
		}
		if got, want := config.RouteHostname, "syndesis.apps.example.com"; got != want {
			t.Errorf("RouteHostname = %q, want %q", got, want)
		}
	})

	t.Run("Missing Route Surfaces As Transient", func(t *testing.T) {
		t.Parallel()

		c := fake.NewClientBuilder().WithScheme(routeScheme(t)).Build()

		config := &Config{}
		err := config.SetRoute(t.Context(), &ClusterRouteResolver{Client: c}, syndesis)
		if !IsRouteNotFound(err) {
			t.Fatalf("SetRoute() error = %v, want *RouteNotFoundError", err)
		}
	})
}
