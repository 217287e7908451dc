package service

import (
	"context"
	"testing"

	"github.com/qiniu/pulseboard/internal/dashboard/model"
	"github.com/qiniu/pulseboard/internal/dashboard/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRoute(t *testing.T) {
	tests := []struct {
		path   string
		want   Route
		active string
	}{
		{"/", Route{View: ViewDashboard, ProjectID: "1", ProjectCode: "ecommerce"}, "ecommerce"},
		{"/payment", Route{View: ViewDashboard, ProjectID: "2", ProjectCode: "payment"}, "payment"},
		{"/payment/alerts", Route{View: ViewAlerts, ProjectID: "2", ProjectCode: "payment"}, "payment"},
		{"/user-center/detail/support-chatbot/", Route{View: ViewDetail, ProjectID: "3", ProjectCode: "user-center", MonitorID: "support-chatbot"}, "user-center"},
		{"/settings", Route{View: ViewSettings}, "ecommerce"},
		{"/nope/detail/order-flow", Route{View: ViewDetail, ProjectID: "1", ProjectCode: "ecommerce", MonitorID: "order-flow", Redirect: "/ecommerce/detail/order-flow"}, "ecommerce"},
		{"/nope", Route{View: ViewDashboard, ProjectID: "1", ProjectCode: "ecommerce", Redirect: "/ecommerce"}, "ecommerce"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			svc, _ := newService()
			got, err := svc.ResolveRoute(context.Background(), tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.active, svc.State().ActiveProject().Code)
		})
	}
}

func TestResolveRoute_RootFollowsActiveProject(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()
	_, err := svc.ResolveRoute(ctx, "/user-center/alerts")
	require.NoError(t, err)

	got, err := svc.ResolveRoute(ctx, "/")
	require.NoError(t, err)
	assert.Equal(t, "user-center", got.ProjectCode)
}

func TestResolveRoute_Unknown(t *testing.T) {
	svc, _ := newService()
	for _, p := range []string{"/payment/metrics", "/payment/detail", "/payment/alerts/x"} {
		_, err := svc.ResolveRoute(context.Background(), p)
		assert.ErrorIs(t, err, model.ErrNotFound, p)
	}
	assert.Equal(t, store.ActiveProject{ID: "1", Code: "ecommerce"}, svc.State().ActiveProject())
}
