package models

// SimpleProfile is the brief user-profile shape returned by search and
// the profile queries.
type SimpleProfile struct {
	ID                 string              `json:"id"`
	Name               string              `json:"name,omitempty"`
	Description        string              `json:"description,omitempty"`
	Image              *Image              `json:"image,omitempty"`
	CollectionItemData *CollectionItemData `json:"collection_item_data,omitempty"`
}

// FollowersCount returns the profile's follower count, zero when the
// metadata was not requested.
func (p *SimpleProfile) FollowersCount() int {
	if p.CollectionItemData == nil {
		return 0
	}
	return p.CollectionItemData.LikesCount
}

// Profile is the account profile returned by the tiny API.
type Profile struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name,omitempty"`
	Username     string        `json:"username,omitempty"`
	Email        string        `json:"email,omitempty"`
	Token        string        `json:"token,omitempty"`
	IsAnonymous  bool          `json:"is_anonymous,omitempty"`
	IsRegistered bool          `json:"is_registered,omitempty"`
	Subscription *Subscription `json:"subscription,omitempty"`
}

// Subscription describes the account's active plan, if any.
type Subscription struct {
	ID         int64  `json:"id,omitempty"`
	Name       string `json:"name,omitempty"`
	Expiration int64  `json:"expiration,omitempty"`
	IsTrial    bool   `json:"is_trial,omitempty"`
}

// IsAuthorized reports whether the profile belongs to a registered,
// non-anonymous account.
func (p *Profile) IsAuthorized() bool {
	return !p.IsAnonymous && p.IsRegistered
}
