package models

// Recipe represents a single recipe posted by a user.
//
// Recipes are immutable after creation: the owner can delete one but
// there is no edit flow. (Owner, Name) is unique per owner, enforced by
// the storage layer.
type Recipe struct {
	// ID is the unique identifier for the recipe (UUID format).
	ID string `json:"id"`

	// Owner is the username of the user who posted the recipe.
	Owner string `json:"owner"`

	// Name is the recipe title, unique per owner.
	Name string `json:"name"`

	// Description is a short free-text summary.
	Description string `json:"description"`

	// PrepTime is the preparation time as entered by the user,
	// e.g. "45 minutes".
	PrepTime string `json:"prep_time"`

	// Steps holds the preparation instructions.
	Steps string `json:"steps"`

	// ImagePath is the blob reference of the attached image, empty when
	// no image was uploaded.
	ImagePath string `json:"image_path,omitempty"`

	// CreatedAt is the Unix timestamp when the recipe was posted.
	CreatedAt int64 `json:"created_at"`
}
