// Package branch holds the static registry of regional portal deployments.
// Activation only flips the client configuration to the branch's base URL;
// reachability is not checked, so selection costs no network round trip.
package branch

import (
	"fmt"

	"traineeportal/pkg/portal"
)

type (
	Branch struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		IntlName string `json:"intl_name"`
		BaseURL  string `json:"base_url"`
		Theme    string `json:"theme"`
	}
)

// registry is the closed set of deployed branches. Order is the display order.
var registry = []Branch{
	{
		ID:       "cairo",
		Name:     "القاهرة",
		IntlName: "Cairo",
		BaseURL:  "https://api-cairo.traineeportal.app",
		Theme:    "#0d47a1",
	},
	{
		ID:       "alexandria",
		Name:     "الإسكندرية",
		IntlName: "Alexandria",
		BaseURL:  "https://api-alex.traineeportal.app",
		Theme:    "#00695c",
	},
	{
		ID:       "mansoura",
		Name:     "المنصورة",
		IntlName: "Mansoura",
		BaseURL:  "https://api-mansoura.traineeportal.app",
		Theme:    "#4e342e",
	},
	{
		ID:       "assiut",
		Name:     "أسيوط",
		IntlName: "Assiut",
		BaseURL:  "https://api-assiut.traineeportal.app",
		Theme:    "#880e4f",
	},
}

// All returns every known branch. Pure, no I/O.
func All() []Branch {
	out := make([]Branch, len(registry))
	copy(out, registry)
	return out
}

// One looks up a branch by id. The id set is closed, so an unknown id is a
// configuration mistake, reported in the portal error shape.
func One(id string) (Branch, error) {
	for _, b := range registry {
		if b.ID == id {
			return b, nil
		}
	}
	return Branch{}, &portal.Error{
		Kind:    portal.KindConfig,
		Message: fmt.Sprintf("unknown branch %q", id),
	}
}

// Activate points cfg at the branch's base URL. Activating the same branch
// twice is a no-op. Requests already in flight keep their previous URL.
func Activate(cfg *portal.Config, id string) error {
	b, err := One(id)
	if err != nil {
		return err
	}
	cfg.SetBaseURL(b.BaseURL)
	return nil
}
