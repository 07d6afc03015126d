package models

// Folder is a node of a user's folder tree. The root folder of a user is the
// single folder with a nil ParentID; every other folder points at a parent
// owned by the same user.
type Folder struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	ParentID *string `json:"parent_id"`
	OwnerID  string  `json:"owner_id"`
}

func (f Folder) Key() string { return f.ID }
