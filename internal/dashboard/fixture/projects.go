package fixture

import "github.com/qiniu/pulseboard/internal/dashboard/model"

func projects() []model.Project {
	return []model.Project{
		{ID: "1", Code: "ecommerce", Name: "E-Commerce", Description: "Storefront, checkout and order pipeline", Status: model.ProjectStatusError},
		{ID: "2", Code: "payment", Name: "Payment", Description: "Payment gateway and settlement", Status: model.ProjectStatusOK},
		{ID: "3", Code: "user-center", Name: "User Center", Description: "Accounts, sessions and support", Status: model.ProjectStatusWarning},
	}
}
