package models

import "time"

// Project is the core owned resource. Every read and write is scoped by
// OwnerID matching the authenticated caller.
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	OwnerID     string    `json:"ownerId"`
	FolderID    *string   `json:"folderId"`
	TeamID      *string   `json:"teamId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProjectSummary is the list/create shape: base fields plus lightweight
// video summaries and a folder reference.
type ProjectSummary struct {
	Project
	Videos []VideoSummary `json:"videos"`
	Folder *FolderRef     `json:"folder"`
}

// ProjectDetail is the get-one shape with full nested relations.
type ProjectDetail struct {
	Project
	Videos []Video `json:"videos"`
	Folder *Folder `json:"folder"`
	Team   *Team   `json:"team,omitempty"`
}

// Video belongs to exactly one project.
type Video struct {
	ID           string    `json:"id"`
	ProjectID    string    `json:"projectId"`
	Title        string    `json:"title"`
	ThumbnailURL *string   `json:"thumbnailUrl"`
	Status       string    `json:"status"` // processing | ready | failed
	CreatedAt    time.Time `json:"createdAt"`
}

// VideoSummary is the lightweight shape nested under project listings.
type VideoSummary struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	ThumbnailURL *string `json:"thumbnailUrl"`
	Status       string  `json:"status"`
}

type Folder struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OwnerID   string    `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
}

// FolderRef is the id+name reference nested under project listings.
type FolderRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Team struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Members []TeamMember `json:"members"`
}

type TeamMember struct {
	Role string  `json:"role"`
	User UserRef `json:"user"`
}

// UserRef is the public slice of a user embedded in team listings.
type UserRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
