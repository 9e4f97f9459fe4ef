// Package domain contains the core idea catalog entities and the pure
// derivations over them (classification, slugs, expert details).
package domain

import "github.com/web3privacy/ideas-server/internal/util"

// IdeaType identifies one of the three idea flavors. It is used both for the
// origin collection an idea was loaded from and for the inferred display
// variant from Classify. The two are deliberately distinct concepts: an idea
// loaded from the community file can still classify as expert.
type IdeaType string

// The three idea types.
const (
	TypeCommunity    IdeaType = "community"
	TypeExpert       IdeaType = "expert"
	TypeOrganization IdeaType = "organization"
)

// Valid reports whether t is one of the known idea types.
func (t IdeaType) Valid() bool {
	switch t {
	case TypeCommunity, TypeExpert, TypeOrganization:
		return true
	}
	return false
}

// DisplayName returns the human-readable label for the type.
func (t IdeaType) DisplayName() string {
	switch t {
	case TypeCommunity:
		return "Community Idea"
	case TypeExpert:
		return "Expert Idea"
	case TypeOrganization:
		return "Organization Idea"
	default:
		return "Idea"
	}
}

// Idea is a single privacy-project suggestion record. The JSON field names
// match the collection data files; optional fields stay empty when the source
// record omits them.
type Idea struct {
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name"`
	Description string   `json:"description"` // markdown-capable free text
	Categories  []string `json:"categories,omitempty"`
	GitHub      string   `json:"github,omitempty"`
	Website     string   `json:"website,omitempty"`
	Event       string   `json:"event,omitempty"`
	Author      *Author  `json:"author,omitempty"`

	// Organization-flavored fields.
	Organization     string   `json:"organization,omitempty"`
	OrganizationLogo string   `json:"organizationLogo,omitempty"`
	OrganizationName string   `json:"organizationName,omitempty"`
	Features         []string `json:"features,omitempty"`

	Featured bool `json:"featured,omitempty"`
}

// Classify returns the inferred display variant of the idea.
//
// Rules, first match wins:
//  1. Any organization field present → organization
//  2. Author present → expert
//  3. Otherwise → community
//
// Classification never consults which collection the idea was loaded from;
// pool partitioning by origin is a separate operation on the catalog.
func (i Idea) Classify() IdeaType {
	if i.OrganizationName != "" || i.OrganizationLogo != "" || i.Features != nil {
		return TypeOrganization
	}
	if i.Author != nil {
		return TypeExpert
	}
	return TypeCommunity
}

// NameSlug returns the slug derived from the idea name.
func (i Idea) NameSlug() string {
	return util.Slugify(i.Name)
}

// OrgSlug returns the slug of the organization name, or "" when the idea
// carries no organization name. It is the {slug} of the /orgs/{slug} route.
func (i Idea) OrgSlug() string {
	if i.OrganizationName == "" {
		return ""
	}
	return util.Slugify(i.OrganizationName)
}

// HasAnyCategory reports whether the idea's categories intersect the given
// tag set. An empty tag set matches nothing here; pool filtering treats the
// empty selection as "no filter" before calling this.
func (i Idea) HasAnyCategory(tags []string) bool {
	for _, tag := range tags {
		for _, cat := range i.Categories {
			if cat == tag {
				return true
			}
		}
	}
	return false
}

// OrganizationDetails is the header data of an organization landing page,
// lifted from the first idea that names the organization.
type OrganizationDetails struct {
	Name    string `json:"name"`
	Logo    string `json:"logo,omitempty"`
	GitHub  string `json:"github,omitempty"`
	Website string `json:"website,omitempty"`
}
