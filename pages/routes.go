package pages

import (
	"github.com/HeyGarrison/cakeelizabethdotcom/router"
	"github.com/HeyGarrison/cakeelizabethdotcom/runtime"
)

// Page paths.
const (
	PathHome               = "/"
	PathAboutUs            = "/about-us"
	PathContact            = "/contact"
	PathCakePricingFlavors = "/cake-pricing-flavors"
)

// Routes returns the site's route table.
func Routes(deps Deps) *router.Table {
	t := router.NewTable(
		router.Route{Path: PathHome, Factory: func(map[string]string) runtime.Component {
			return &HomePage{Deps: deps}
		}},
		router.Route{Path: PathAboutUs, Factory: func(map[string]string) runtime.Component {
			return &AboutUsPage{Deps: deps}
		}},
		router.Route{Path: PathContact, Factory: func(map[string]string) runtime.Component {
			return &ContactPage{Deps: deps}
		}},
		router.Route{Path: PathCakePricingFlavors, Factory: func(map[string]string) runtime.Component {
			return &CakePricingFlavorsPage{Deps: deps}
		}},
	)
	t.HandleNotFound(func(map[string]string) runtime.Component {
		return &NotFoundPage{Deps: deps}
	})
	return t
}
