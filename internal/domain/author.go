package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// AuthorKind discriminates the two encodings of an idea author.
type AuthorKind string

const (
	// AuthorKindHandle is the plain-string form: a handle or profile URL.
	AuthorKindHandle AuthorKind = "handle"
	// AuthorKindProfile is the structured form with name and optional
	// organization and avatar.
	AuthorKindProfile AuthorKind = "profile"
)

// Author is the polymorphic author field of an idea. The data files encode it
// either as a bare string or as an object; Author keeps both behind an
// explicit discriminator instead of duck-typed field probing.
type Author struct {
	Kind AuthorKind `json:"kind"`

	// Value is the raw string of the handle form.
	Value string `json:"value,omitempty"`

	// Profile form fields.
	Name         string `json:"name,omitempty"`
	Organization string `json:"organization,omitempty"`
	Avatar       string `json:"avatar,omitempty"`
}

// authorProfile mirrors the object encoding in the data files.
type authorProfile struct {
	Name         string `json:"name"`
	Organization string `json:"organization,omitempty"`
	Avatar       string `json:"avatar,omitempty"`
}

// UnmarshalJSON accepts both the plain-string and the object encoding.
func (a *Author) UnmarshalJSON(data []byte) error {
	var handle string
	if err := json.Unmarshal(data, &handle); err == nil {
		*a = Author{Kind: AuthorKindHandle, Value: handle}
		return nil
	}

	var profile authorProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return fmt.Errorf("author is neither a string nor an object: %w", err)
	}
	*a = Author{
		Kind:         AuthorKindProfile,
		Name:         profile.Name,
		Organization: profile.Organization,
		Avatar:       profile.Avatar,
	}
	return nil
}

// MarshalJSON writes the author back in its source encoding, so re-serialized
// ideas stay byte-compatible with the data files.
func (a Author) MarshalJSON() ([]byte, error) {
	if a.Kind == AuthorKindHandle {
		return json.Marshal(a.Value)
	}
	return json.Marshal(authorProfile{
		Name:         a.Name,
		Organization: a.Organization,
		Avatar:       a.Avatar,
	})
}

// raw returns the string the author identity is derived from: the handle
// value for the string form, the name for the profile form.
func (a Author) raw() string {
	if a.Kind == AuthorKindHandle {
		return a.Value
	}
	return a.Name
}

// ExpertDetails is the display identity derived from an author.
type ExpertDetails struct {
	Name         string `json:"name"`
	Organization string `json:"organization,omitempty"`
	Avatar       string `json:"avatar,omitempty"`
	DisplayName  string `json:"displayName"`
	TwitterURL   string `json:"twitterUrl,omitempty"`
}

// ExpertDetails derives the expert display identity of the idea. Returns
// false when the idea has no author.
//
// Twitter/X profile URLs turn into an "@handle" display name with an
// unavatar.io avatar; anything else is displayed verbatim.
func (i Idea) ExpertDetails() (ExpertDetails, bool) {
	if i.Author == nil {
		return ExpertDetails{}, false
	}

	raw := i.Author.raw()
	details := ExpertDetails{
		Name:        raw,
		DisplayName: raw,
		Avatar:      i.Author.Avatar,
	}

	details.Organization = i.Author.Organization
	if details.Organization == "" {
		details.Organization = i.Organization
	}

	if handle, ok := twitterHandle(raw); ok {
		details.DisplayName = "@" + handle
		details.Avatar = "https://unavatar.io/twitter/" + handle
		details.TwitterURL = raw
	}

	return details, true
}

// twitterHandle extracts the handle from a twitter.com or x.com profile URL.
func twitterHandle(raw string) (string, bool) {
	if !strings.Contains(raw, "twitter.com/") && !strings.Contains(raw, "x.com/") {
		return "", false
	}
	parts := strings.Split(strings.TrimRight(raw, "/"), "/")
	handle := parts[len(parts)-1]
	if handle == "" {
		return "", false
	}
	return handle, true
}
